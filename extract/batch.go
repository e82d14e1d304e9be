package extract

import (
	"context"

	"github.com/jayaanth/tweetvoice"
	"golang.org/x/sync/errgroup"
)

// Request names one page to extract.
type Request struct {
	Variant tweetvoice.Variant
	URL     string
}

// Outcome is the result of one Request. Exactly one of Result and Err is set.
type Outcome struct {
	Request
	Result *tweetvoice.Result
	Err    error
}

// ExtractAll runs independent extractions with at most concurrency in flight.
// Each extraction opens its own session; a failure does not stop the others.
// Outcomes are returned in request order.
func ExtractAll(ctx context.Context, ex tweetvoice.Extractor, reqs []Request, concurrency int) []Outcome {
	if concurrency <= 0 {
		concurrency = 1
	}

	outcomes := make([]Outcome, len(reqs))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			res, err := ex.Extract(ctx, req.Variant, req.URL)
			outcomes[i] = Outcome{Request: req, Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}
