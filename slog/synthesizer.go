package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jayaanth/tweetvoice"
)

// Ensure LoggingSynthesizer implements tweetvoice.Synthesizer.
var _ tweetvoice.Synthesizer = (*LoggingSynthesizer)(nil)

// LoggingSynthesizer wraps a Synthesizer with logging.
type LoggingSynthesizer struct {
	next   tweetvoice.Synthesizer
	logger *slog.Logger
}

// NewLoggingSynthesizer creates a new LoggingSynthesizer.
func NewLoggingSynthesizer(next tweetvoice.Synthesizer, logger *slog.Logger) *LoggingSynthesizer {
	return &LoggingSynthesizer{next: next, logger: logger}
}

// Synthesize delegates to the wrapped synthesizer and logs the operation.
func (s *LoggingSynthesizer) Synthesize(ctx context.Context, text, language string) (path string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("synthesize",
			"chars", len(text),
			"language", language,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Synthesize(ctx, text, language)
}
