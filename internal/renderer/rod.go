package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodFactory launches a headless Chrome instance per renderer.
type RodFactory struct {
	chromePath  string
	headless    bool
	pageTimeout time.Duration
}

func NewRodFactory(headless bool, chromePath string, pageTimeout time.Duration) *RodFactory {
	return &RodFactory{
		chromePath:  chromePath,
		headless:    headless,
		pageTimeout: pageTimeout,
	}
}

func (f *RodFactory) New(ctx context.Context) (Renderer, error) {
	l := launcher.New().Headless(f.headless)
	if f.chromePath != "" {
		l = l.Bin(f.chromePath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: launch browser: %v", ErrRenderFailure, err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("%w: connect browser: %v", ErrRenderFailure, err)
	}

	return &rodRenderer{
		browser:     browser,
		launcher:    l,
		pageTimeout: f.pageTimeout,
	}, nil
}

type rodRenderer struct {
	browser     *rod.Browser
	launcher    *launcher.Launcher
	pageTimeout time.Duration
}

// Render navigates to url, waits for the load event and returns the DOM
// snapshot HTML.
func (r *rodRenderer) Render(ctx context.Context, url string) (string, error) {
	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("%w: open page: %v", ErrRenderFailure, err)
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx).Timeout(r.pageTimeout)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("%w: navigate %s: %v", ErrRenderFailure, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("%w: wait load %s: %v", ErrRenderFailure, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("%w: snapshot %s: %v", ErrRenderFailure, url, err)
	}
	return html, nil
}

func (r *rodRenderer) Close() error {
	err := r.browser.Close()
	r.launcher.Cleanup()
	return err
}
