package extract

import (
	"context"

	"github.com/jayaanth/tweetvoice"
)

// Located holds the elements a Locate call found. Exactly one of
// Containers or Fragments is populated, or neither when nothing matched.
type Located struct {
	// Pattern is the pattern whose matches were returned.
	Pattern tweetvoice.Pattern

	// Containers are grouped matches from a structural pattern.
	Containers []tweetvoice.Element

	// Fragments are flat matches from the fallback content-signal pattern.
	Fragments []tweetvoice.Element
}

// Structured reports whether the matches came from a structural pattern.
func (l *Located) Structured() bool {
	return len(l.Containers) > 0
}

// Empty reports whether nothing matched.
func (l *Located) Empty() bool {
	return len(l.Containers) == 0 && len(l.Fragments) == 0
}

// Locate tries patterns strictly in order and returns every match of the
// first pattern with a non-empty result. Matches are never merged across
// patterns and later patterns are not queried once one matches.
//
// If no structural pattern matches, the fallback pattern's matches are
// returned as flat fragments since no reliable grouping exists.
func Locate(ctx context.Context, r tweetvoice.Renderer, patterns []tweetvoice.Pattern, fallback tweetvoice.Pattern) (*Located, error) {
	return LocateWithin(ctx, r, patterns, fallback, tweetvoice.Pattern{})
}

// LocateWithin is Locate with the fallback query restricted to descendants
// of the first element matching scope. The scope is only queried when the
// fallback is needed; if it matches nothing, nothing is located.
func LocateWithin(ctx context.Context, r tweetvoice.Renderer, patterns []tweetvoice.Pattern, fallback, scope tweetvoice.Pattern) (*Located, error) {
	for _, p := range patterns {
		els, err := r.QueryAll(ctx, p, nil)
		if err != nil {
			return nil, err
		}
		if len(els) > 0 {
			return &Located{Pattern: p, Containers: els}, nil
		}
	}

	if fallback.Selector == "" {
		return &Located{}, nil
	}

	var root tweetvoice.Element
	if scope.Selector != "" {
		roots, err := r.QueryAll(ctx, scope, nil)
		if err != nil {
			return nil, err
		}
		if len(roots) == 0 {
			return &Located{}, nil
		}
		root = roots[0]
	}

	els, err := r.QueryAll(ctx, fallback, root)
	if err != nil {
		return nil, err
	}
	return &Located{Pattern: fallback, Fragments: els}, nil
}
