package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jayaanth/tweetvoice"
)

// Compile-time interface verification.
var (
	_ tweetvoice.Browser  = (*LoggingBrowser)(nil)
	_ tweetvoice.Renderer = (*LoggingRenderer)(nil)
)

// LoggingBrowser wraps a Browser so every session it opens is logged at
// debug level.
type LoggingBrowser struct {
	next   tweetvoice.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next tweetvoice.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open delegates to the wrapped browser and wraps the session.
func (b *LoggingBrowser) Open(ctx context.Context) (r tweetvoice.Renderer, err error) {
	defer func(begin time.Time) {
		b.logger.Debug("session open",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	r, err = b.next.Open(ctx)
	if err != nil {
		return nil, err
	}
	return &LoggingRenderer{next: r, logger: b.logger, opened: time.Now()}, nil
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	err := b.next.Close()
	b.logger.Debug("browser close", "err", err)
	return err
}

// LoggingRenderer logs page loads, readiness waits, settle scrolls and
// session lifetime. Queries and text reads are not logged.
type LoggingRenderer struct {
	next    tweetvoice.Renderer
	logger  *slog.Logger
	opened  time.Time
	scrolls int
}

// Navigate delegates and logs the page load.
func (r *LoggingRenderer) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		r.logger.Debug("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Navigate(ctx, url)
}

// WaitForElement delegates and logs the wait.
func (r *LoggingRenderer) WaitForElement(ctx context.Context, pattern tweetvoice.Pattern, timeout time.Duration) (el tweetvoice.Element, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("wait for element",
			"selector", pattern.Selector,
			"timeout", timeout,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.WaitForElement(ctx, pattern, timeout)
}

func (r *LoggingRenderer) QueryAll(ctx context.Context, pattern tweetvoice.Pattern, scope tweetvoice.Element) ([]tweetvoice.Element, error) {
	return r.next.QueryAll(ctx, pattern, scope)
}

func (r *LoggingRenderer) ReadText(ctx context.Context, el tweetvoice.Element) (string, error) {
	return r.next.ReadText(ctx, el)
}

// ScrollToBottom delegates and counts scrolls for the close log line.
func (r *LoggingRenderer) ScrollToBottom(ctx context.Context) error {
	r.scrolls++
	return r.next.ScrollToBottom(ctx)
}

// ScrollExtent delegates and logs the extent read.
func (r *LoggingRenderer) ScrollExtent(ctx context.Context) (int, error) {
	extent, err := r.next.ScrollExtent(ctx)
	r.logger.Debug("scroll extent", "extent", extent, "err", err)
	return extent, err
}

func (r *LoggingRenderer) Title(ctx context.Context) (string, error) {
	return r.next.Title(ctx)
}

// Close delegates and logs how long the session was open.
func (r *LoggingRenderer) Close() error {
	err := r.next.Close()
	r.logger.Debug("session close",
		"scrolls", r.scrolls,
		"lifetime", time.Since(r.opened),
		"err", err,
	)
	return err
}
