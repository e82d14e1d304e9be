package tweetvoice

import (
	"context"
	"time"
)

// Pattern is a declarative structural rule identifying elements, expressed
// as a CSS selector. Patterns are defined up front, never derived at runtime.
type Pattern struct {
	// Name labels the pattern in logs.
	Name string

	// Selector is the CSS selector used to query the document.
	Selector string
}

// Element is an opaque handle to a node in a rendered document.
// Handles are owned by the Renderer that returned them and are only
// valid until that Renderer is closed.
type Element any

// Renderer is a live, queryable document tree for one page.
// A Renderer is used by a single extraction at a time.
type Renderer interface {
	// Navigate loads the URL.
	Navigate(ctx context.Context, url string) error

	// WaitForElement blocks until an element matching the pattern exists.
	// Returns ETIMEOUT if none appears within timeout.
	WaitForElement(ctx context.Context, pattern Pattern, timeout time.Duration) (Element, error)

	// QueryAll returns every element matching the pattern in document order.
	// A nil scope queries the whole document; otherwise only descendants
	// of scope are matched.
	QueryAll(ctx context.Context, pattern Pattern, scope Element) ([]Element, error)

	// ReadText returns the rendered text of an element.
	ReadText(ctx context.Context, el Element) (string, error)

	// ScrollToBottom scrolls the viewport to the end of the document.
	ScrollToBottom(ctx context.Context) error

	// ScrollExtent returns the current scrollable height of the document.
	ScrollExtent(ctx context.Context) (int, error)

	// Title returns the page title metadata.
	Title(ctx context.Context) (string, error)

	// Close releases the session. Must be called on every exit path.
	Close() error
}

// Browser opens Renderer sessions. Each session is independent so that
// extractions never share document state.
type Browser interface {
	// Open acquires a new session. The caller must Close it.
	Open(ctx context.Context) (Renderer, error)

	// Close releases browser resources.
	Close() error
}
