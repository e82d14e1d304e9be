package mock

import (
	"context"

	"github.com/jayaanth/tweetvoice"
)

var _ tweetvoice.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tweetvoice.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, variant tweetvoice.Variant, url string) (*tweetvoice.Result, error)
}

func (e *Extractor) Extract(ctx context.Context, variant tweetvoice.Variant, url string) (*tweetvoice.Result, error) {
	return e.ExtractFn(ctx, variant, url)
}
