package extract_test

import (
	"context"
	"sync"
	"time"

	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/mock"
)

// fakePage is an in-memory document whose elements are string IDs.
type fakePage struct {
	mu sync.Mutex

	// matches maps a selector to document-scope matches.
	matches map[string][]tweetvoice.Element

	// children maps "scopeID|selector" to scoped matches.
	children map[string][]tweetvoice.Element

	// text maps an element ID to its text.
	text map[string]string

	// extents is consumed one value per ScrollExtent call; the last repeats.
	extents []int

	title    string
	titleErr error

	queried []string
	scrolls int
	closed  int
}

func (p *fakePage) renderer() *mock.Renderer {
	return &mock.Renderer{
		NavigateFn: func(context.Context, string) error { return nil },
		WaitForElementFn: func(_ context.Context, pattern tweetvoice.Pattern, _ time.Duration) (tweetvoice.Element, error) {
			return pattern.Selector, nil
		},
		QueryAllFn: func(_ context.Context, pattern tweetvoice.Pattern, scope tweetvoice.Element) ([]tweetvoice.Element, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			if scope == nil {
				p.queried = append(p.queried, pattern.Selector)
				return p.matches[pattern.Selector], nil
			}
			return p.children[scope.(string)+"|"+pattern.Selector], nil
		},
		ReadTextFn: func(_ context.Context, el tweetvoice.Element) (string, error) {
			return p.text[el.(string)], nil
		},
		ScrollToBottomFn: func(context.Context) error {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.scrolls++
			return nil
		},
		ScrollExtentFn: func(context.Context) (int, error) {
			p.mu.Lock()
			defer p.mu.Unlock()
			if len(p.extents) == 0 {
				return 1000, nil
			}
			v := p.extents[0]
			if len(p.extents) > 1 {
				p.extents = p.extents[1:]
			}
			return v, nil
		},
		TitleFn: func(context.Context) (string, error) {
			return p.title, p.titleErr
		},
		CloseFn: func() error {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.closed++
			return nil
		},
	}
}

func (p *fakePage) browser() *mock.Browser {
	return &mock.Browser{
		OpenFn: func(context.Context) (tweetvoice.Renderer, error) {
			return p.renderer(), nil
		},
		CloseFn: func() error { return nil },
	}
}

func noSleep(context.Context, time.Duration) error { return nil }

func elements(ids ...string) []tweetvoice.Element {
	els := make([]tweetvoice.Element, len(ids))
	for i, id := range ids {
		els[i] = id
	}
	return els
}
