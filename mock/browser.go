package mock

import (
	"context"
	"time"

	"github.com/jayaanth/tweetvoice"
)

// Compile-time interface verification.
var (
	_ tweetvoice.Browser  = (*Browser)(nil)
	_ tweetvoice.Renderer = (*Renderer)(nil)
)

// Browser is a mock implementation of tweetvoice.Browser.
type Browser struct {
	OpenFn  func(ctx context.Context) (tweetvoice.Renderer, error)
	CloseFn func() error
}

func (b *Browser) Open(ctx context.Context) (tweetvoice.Renderer, error) {
	return b.OpenFn(ctx)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

// Renderer is a mock implementation of tweetvoice.Renderer.
type Renderer struct {
	NavigateFn       func(ctx context.Context, url string) error
	WaitForElementFn func(ctx context.Context, pattern tweetvoice.Pattern, timeout time.Duration) (tweetvoice.Element, error)
	QueryAllFn       func(ctx context.Context, pattern tweetvoice.Pattern, scope tweetvoice.Element) ([]tweetvoice.Element, error)
	ReadTextFn       func(ctx context.Context, el tweetvoice.Element) (string, error)
	ScrollToBottomFn func(ctx context.Context) error
	ScrollExtentFn   func(ctx context.Context) (int, error)
	TitleFn          func(ctx context.Context) (string, error)
	CloseFn          func() error
}

func (r *Renderer) Navigate(ctx context.Context, url string) error {
	return r.NavigateFn(ctx, url)
}

func (r *Renderer) WaitForElement(ctx context.Context, pattern tweetvoice.Pattern, timeout time.Duration) (tweetvoice.Element, error) {
	return r.WaitForElementFn(ctx, pattern, timeout)
}

func (r *Renderer) QueryAll(ctx context.Context, pattern tweetvoice.Pattern, scope tweetvoice.Element) ([]tweetvoice.Element, error) {
	return r.QueryAllFn(ctx, pattern, scope)
}

func (r *Renderer) ReadText(ctx context.Context, el tweetvoice.Element) (string, error) {
	return r.ReadTextFn(ctx, el)
}

func (r *Renderer) ScrollToBottom(ctx context.Context) error {
	return r.ScrollToBottomFn(ctx)
}

func (r *Renderer) ScrollExtent(ctx context.Context) (int, error) {
	return r.ScrollExtentFn(ctx)
}

func (r *Renderer) Title(ctx context.Context) (string, error) {
	return r.TitleFn(ctx)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}
