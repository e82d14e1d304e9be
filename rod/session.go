package rod

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/jayaanth/tweetvoice"
)

// Ensure Session implements tweetvoice.Renderer at compile time.
var _ tweetvoice.Renderer = (*Session)(nil)

// Scripts evaluated in the page.
const (
	scrollToBottomJS = `() => window.scrollTo(0, document.body.scrollHeight)`
	scrollExtentJS   = `() => document.body ? document.body.scrollHeight : 0`
	titleJS          = `() => document.title`
)

// Session is a Renderer backed by one Chrome tab.
// Elements are *rod.Element values.
type Session struct {
	page    *rod.Page
	release func()
	once    sync.Once
	err     error
}

// Navigate loads url in the tab and waits for the load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// WaitForElement polls until an element matches or timeout expires.
func (s *Session) WaitForElement(ctx context.Context, pattern tweetvoice.Pattern, timeout time.Duration) (tweetvoice.Element, error) {
	page := s.page.Context(ctx).Timeout(timeout)
	el, err := page.Element(pattern.Selector)
	page.CancelTimeout()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return nil, &tweetvoice.Error{
				Code:    tweetvoice.ETIMEOUT,
				Message: pattern.Selector + " did not appear within " + timeout.String(),
				Err:     err,
			}
		}
		return nil, err
	}
	return el.Context(ctx), nil
}

// QueryAll returns matches without waiting.
func (s *Session) QueryAll(ctx context.Context, pattern tweetvoice.Pattern, scope tweetvoice.Element) ([]tweetvoice.Element, error) {
	var (
		els rod.Elements
		err error
	)
	if scope == nil {
		els, err = s.page.Context(ctx).Elements(pattern.Selector)
	} else {
		parent, ok := scope.(*rod.Element)
		if !ok {
			return nil, tweetvoice.Errorf(tweetvoice.EINVALID, "foreign element handle %T", scope)
		}
		els, err = parent.Context(ctx).Elements(pattern.Selector)
	}
	if err != nil {
		return nil, err
	}

	out := make([]tweetvoice.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out, nil
}

// ReadText returns the element's rendered text.
func (s *Session) ReadText(ctx context.Context, el tweetvoice.Element) (string, error) {
	e, ok := el.(*rod.Element)
	if !ok {
		return "", tweetvoice.Errorf(tweetvoice.EINVALID, "foreign element handle %T", el)
	}
	return e.Context(ctx).Text()
}

// ScrollToBottom scrolls the window to the end of the document.
func (s *Session) ScrollToBottom(ctx context.Context) error {
	_, err := s.page.Context(ctx).Eval(scrollToBottomJS)
	return err
}

// ScrollExtent returns document.body.scrollHeight.
func (s *Session) ScrollExtent(ctx context.Context) (int, error) {
	res, err := s.page.Context(ctx).Eval(scrollExtentJS)
	if err != nil {
		return 0, err
	}
	return res.Value.Int(), nil
}

// Title returns document.title.
func (s *Session) Title(ctx context.Context) (string, error) {
	res, err := s.page.Context(ctx).Eval(titleJS)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Close closes the tab. Close is safe to call multiple times.
func (s *Session) Close() error {
	s.once.Do(func() {
		s.err = s.page.Close()
		if s.release != nil {
			s.release()
		}
	})
	return s.err
}
