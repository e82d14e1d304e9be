package main

import (
	"fmt"

	"github.com/jayaanth/tweetvoice"
)

// Run executes the speak command.
func (c *SpeakCmd) Run(deps *Dependencies) error {
	variant, err := tweetvoice.ParseVariant(c.Mode)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetvoice.ErrorMessage(err))
		return err
	}

	res, err := deps.Extractor.Extract(deps.Ctx, variant, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetvoice.ErrorMessage(err))
		return err
	}

	path, err := tweetvoice.Speak(deps.Ctx, deps.Synthesizer, res.Body, c.Lang)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tweetvoice.ErrorMessage(err))
		return err
	}

	if res.Title != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", res.Title)
	}
	fmt.Fprintln(deps.Stdout, path)
	return nil
}
