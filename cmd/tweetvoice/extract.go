package main

import (
	"fmt"

	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/extract"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	variant, err := tweetvoice.ParseVariant(c.Mode)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetvoice.ErrorMessage(err))
		return err
	}

	reqs := make([]extract.Request, len(c.URLs))
	for i, u := range c.URLs {
		reqs[i] = extract.Request{Variant: variant, URL: u}
	}

	var failed, printed int
	for _, out := range extract.ExtractAll(deps.Ctx, deps.Extractor, reqs, c.Concurrency) {
		if out.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", out.URL, tweetvoice.ErrorMessage(out.Err))
			continue
		}
		if printed > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printResult(deps, out.Result)
		printed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d extractions failed", failed, len(reqs))
	}
	return nil
}

func printResult(deps *Dependencies, res *tweetvoice.Result) {
	if res.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", res.Title)
	}
	fmt.Fprintln(deps.Stdout, res.Body)
}
