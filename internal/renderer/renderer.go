package renderer

import (
	"context"
	"errors"
)

// ErrRenderFailure marks navigation or rendering faults so callers can tell
// them apart from client errors.
var ErrRenderFailure = errors.New("page render failed")

// Renderer returns the fully rendered DOM snapshot of a URL. A renderer is
// scoped to one pipeline invocation and must be closed on every exit path.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
	Close() error
}

// Factory hands out a fresh renderer per pipeline invocation.
type Factory interface {
	New(ctx context.Context) (Renderer, error)
}
