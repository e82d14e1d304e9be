// Package slog decorates tweetvoice services with structured logging.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jayaanth/tweetvoice"
)

// Ensure LoggingExtractor implements tweetvoice.Extractor.
var _ tweetvoice.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   tweetvoice.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next tweetvoice.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, variant tweetvoice.Variant, url string) (res *tweetvoice.Result, err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("extract",
				"url", url,
				"variant", variant,
				"code", tweetvoice.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("extract",
			"url", url,
			"variant", variant,
			"chars", len(res.Body),
			"structured", res.Structured,
			"settle", res.Settle,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(ctx, variant, url)
}
