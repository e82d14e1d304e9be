package tweetvoice

import "context"

// SettleOutcome reports how scroll-completion detection ended.
type SettleOutcome int

// SettleOutcome constants.
const (
	// SettleSkipped means the variant does not scroll.
	SettleSkipped SettleOutcome = iota

	// Settled means two consecutive extent reads were equal.
	Settled

	// TimedOut means the round or time cap was hit first.
	// It is not an error; extraction continues with what has loaded.
	TimedOut
)

func (o SettleOutcome) String() string {
	switch o {
	case Settled:
		return "settled"
	case TimedOut:
		return "timed_out"
	default:
		return "skipped"
	}
}

// Result holds the text extracted from one page.
type Result struct {
	URL     string
	Variant Variant

	// Title is the page title with the site suffix removed. May be empty.
	Title string

	// Body is the assembled text. Never blank on success.
	Body string

	// Structured is false when the body came from the flat fallback pattern.
	Structured bool

	// Settle is the scroll-completion outcome.
	Settle SettleOutcome
}

// Extractor extracts readable text from a rendered page.
type Extractor interface {
	// Extract returns the title and body for the URL.
	// Failures are *Error values coded ENAVTIMEOUT, ENOCONTENT, EEMPTY or EUPSTREAM.
	Extract(ctx context.Context, variant Variant, url string) (*Result, error)
}
