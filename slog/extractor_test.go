package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/mock"
	tvslog "github.com/jayaanth/tweetvoice/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs result with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want := &tweetvoice.Result{
			Variant:    tweetvoice.LongForm,
			Body:       "Paragraph one.",
			Structured: true,
			Settle:     tweetvoice.Settled,
		}
		inner := &mock.Extractor{
			ExtractFn: func(context.Context, tweetvoice.Variant, string) (*tweetvoice.Result, error) {
				return want, nil
			},
		}

		ex := tvslog.NewLoggingExtractor(inner, logger)
		res, err := ex.Extract(context.Background(), tweetvoice.LongForm, "https://x.com/i/article/1")

		require.NoError(t, err)
		assert.Same(t, want, res)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "url=https://x.com/i/article/1")
		assert.Contains(t, output, "variant=long")
		assert.Contains(t, output, "chars=14")
		assert.Contains(t, output, "settle=settled")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(context.Context, tweetvoice.Variant, string) (*tweetvoice.Result, error) {
				return nil, tweetvoice.Errorf(tweetvoice.ENOCONTENT, "no content")
			},
		}

		ex := tvslog.NewLoggingExtractor(inner, logger)
		_, err := ex.Extract(context.Background(), tweetvoice.ShortForm, "https://x.com/a/status/1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=no_content_found")
		assert.Contains(t, output, "variant=short")
	})
}
