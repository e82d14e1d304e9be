// Package goquery implements tweetvoice.Browser over static HTML snapshots.
// It lets saved pages go through the same extraction pipeline as a live
// browser, without scrolling or script execution.
package goquery

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jayaanth/tweetvoice"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ tweetvoice.Browser  = (*Browser)(nil)
	_ tweetvoice.Renderer = (*Session)(nil)
)

// Loader returns the HTML for a URL.
type Loader func(ctx context.Context, url string) (string, error)

// FileLoader returns a Loader that serves the file at path for any URL.
func FileLoader(path string) Loader {
	return func(ctx context.Context, _ string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// StaticLoader returns a Loader that serves pages keyed by URL.
func StaticLoader(pages map[string]string) Loader {
	return func(_ context.Context, url string) (string, error) {
		page, ok := pages[url]
		if !ok {
			return "", tweetvoice.Errorf(tweetvoice.EINVALID, "no snapshot for %s", url)
		}
		return page, nil
	}
}

// Browser opens snapshot sessions.
type Browser struct {
	load Loader
}

// NewBrowser creates a Browser that loads HTML with load.
func NewBrowser(load Loader) *Browser {
	return &Browser{load: load}
}

// Open returns a new Session.
func (b *Browser) Open(ctx context.Context) (tweetvoice.Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Session{load: b.load}, nil
}

// Close is a no-op.
func (b *Browser) Close() error {
	return nil
}

// Session is a Renderer over one parsed HTML document.
// Elements are *goquery.Selection values holding a single node.
type Session struct {
	load    Loader
	doc     *goquery.Document
	scrolls int
	closed  bool
}

// Navigate loads and parses the HTML for url.
func (s *Session) Navigate(ctx context.Context, url string) error {
	if err := s.check(); err != nil {
		return err
	}
	raw, err := s.load(ctx, url)
	if err != nil {
		return err
	}
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return tweetvoice.Errorf(tweetvoice.EINVALID, "failed to parse HTML: %v", err)
	}
	s.doc = goquery.NewDocumentFromNode(root)
	return nil
}

// WaitForElement returns the first match. A snapshot never changes, so a
// missing element times out immediately.
func (s *Session) WaitForElement(_ context.Context, pattern tweetvoice.Pattern, timeout time.Duration) (tweetvoice.Element, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	sel := s.doc.Find(pattern.Selector).First()
	if sel.Length() == 0 {
		return nil, tweetvoice.Errorf(tweetvoice.ETIMEOUT, "%s did not appear within %s", pattern.Selector, timeout)
	}
	return sel, nil
}

// QueryAll returns matches in document order.
func (s *Session) QueryAll(_ context.Context, pattern tweetvoice.Pattern, scope tweetvoice.Element) ([]tweetvoice.Element, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var sel *goquery.Selection
	if scope == nil {
		sel = s.doc.Find(pattern.Selector)
	} else {
		parent, ok := scope.(*goquery.Selection)
		if !ok {
			return nil, tweetvoice.Errorf(tweetvoice.EINVALID, "foreign element handle %T", scope)
		}
		sel = parent.Find(pattern.Selector)
	}

	els := make([]tweetvoice.Element, 0, sel.Length())
	sel.Each(func(_ int, el *goquery.Selection) {
		els = append(els, el)
	})
	return els, nil
}

// ReadText returns the element's text content.
func (s *Session) ReadText(_ context.Context, el tweetvoice.Element) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	sel, ok := el.(*goquery.Selection)
	if !ok {
		return "", tweetvoice.Errorf(tweetvoice.EINVALID, "foreign element handle %T", el)
	}
	return sel.Text(), nil
}

// ScrollToBottom records the scroll; a snapshot has nothing to lazy-load.
func (s *Session) ScrollToBottom(context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	s.scrolls++
	return nil
}

// ScrollExtent returns the node count, which is constant for a snapshot.
func (s *Session) ScrollExtent(context.Context) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	return len(s.doc.Find("*").Nodes), nil
}

// Title returns the text of the document's <title>.
func (s *Session) Title(context.Context) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	return s.doc.Find("title").First().Text(), nil
}

// Scrolls returns how many times ScrollToBottom was called.
func (s *Session) Scrolls() int {
	return s.scrolls
}

// Close releases the document. Close is safe to call multiple times.
func (s *Session) Close() error {
	s.closed = true
	s.doc = nil
	return nil
}

func (s *Session) check() error {
	if s.closed {
		return tweetvoice.Errorf(tweetvoice.EINVALID, "session closed")
	}
	return nil
}

func (s *Session) ready() error {
	if err := s.check(); err != nil {
		return err
	}
	if s.doc == nil {
		return tweetvoice.Errorf(tweetvoice.EINVALID, "no document loaded")
	}
	return nil
}
