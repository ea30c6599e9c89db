package storage

import (
	"context"
	"errors"

	"amazon-review-sentiment/internal/aggregate"
)

// ErrNotFound is returned for keys with no stored artifact.
var ErrNotFound = errors.New("artifact not found")

// ObjectStore is durable key→blob storage.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// Artifact is the full aggregate report plus every collected review, stored
// as one blob under a content-derived key. Written once per successful
// scrape, never mutated.
type Artifact struct {
	aggregate.Report
	Reviews []string `json:"productReviews"`
}
