// Package extract implements the content extraction engine: scroll
// completion, pattern-priority content location, text assembly and the
// pipeline that composes them.
package extract

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jayaanth/tweetvoice"
)

// Ensure Extractor implements tweetvoice.Extractor at compile time.
var _ tweetvoice.Extractor = (*Extractor)(nil)

// Extractor runs the extraction pipeline against sessions opened from a
// Browser. Each Extract call uses its own session, so Extractor is safe for
// concurrent use when the Browser is.
type Extractor struct {
	browser  tweetvoice.Browser
	settler  *Settler
	profiles map[tweetvoice.Variant]Profile
	sleep    SleepFunc
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSettler replaces the default scroll-completion settler.
func WithSettler(s *Settler) Option {
	return func(e *Extractor) {
		e.settler = s
	}
}

// WithProfile replaces the profile for p.Variant.
func WithProfile(p Profile) Option {
	return func(e *Extractor) {
		e.profiles[p.Variant] = p
	}
}

// WithSleep replaces the function used for the fixed render delay.
func WithSleep(fn SleepFunc) Option {
	return func(e *Extractor) {
		e.sleep = fn
	}
}

// WithLogger sets the logger used for stage-level debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor with the long-form and short-form
// profiles registered.
func NewExtractor(browser tweetvoice.Browser, opts ...Option) *Extractor {
	e := &Extractor{
		browser: browser,
		settler: NewSettler(),
		profiles: map[tweetvoice.Variant]Profile{
			tweetvoice.LongForm:  LongFormProfile(),
			tweetvoice.ShortForm: ShortFormProfile(),
		},
		sleep:  Sleep,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract navigates to url and returns its title and body.
// The session is closed on every exit path.
func (e *Extractor) Extract(ctx context.Context, variant tweetvoice.Variant, url string) (*tweetvoice.Result, error) {
	profile, ok := e.profiles[variant]
	if !ok {
		return nil, &tweetvoice.Error{Code: tweetvoice.EINVALID, Message: "unknown variant", Variant: variant}
	}
	if strings.TrimSpace(url) == "" {
		return nil, &tweetvoice.Error{Code: tweetvoice.EINVALID, Message: "url required", Variant: variant}
	}

	r, err := e.browser.Open(ctx)
	if err != nil {
		return nil, fail(tweetvoice.EUPSTREAM, tweetvoice.StageNavigate, variant, "opening session", err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			e.logger.Warn("closing session", "url", url, "err", cerr)
		}
	}()

	x := &extraction{Extractor: e, r: r, profile: profile, url: url}
	return x.run(ctx)
}

// extraction holds the state of a single Extract call.
type extraction struct {
	*Extractor
	r       tweetvoice.Renderer
	profile Profile
	url     string
}

func (x *extraction) run(ctx context.Context) (*tweetvoice.Result, error) {
	variant := x.profile.Variant
	result := &tweetvoice.Result{URL: x.url, Variant: variant}

	// Init -> PageLoaded
	if err := x.load(ctx); err != nil {
		return nil, err
	}

	// PageLoaded -> ContentSettled
	if x.profile.Scroll {
		outcome, err := x.settler.Settle(ctx, x.r)
		if err != nil {
			return nil, fail(tweetvoice.EUPSTREAM, tweetvoice.StageSettle, variant, "scrolling", err)
		}
		result.Settle = outcome
		x.logger.Debug("settle", "url", x.url, "outcome", outcome.String())
	}

	// -> Located
	loc, err := LocateWithin(ctx, x.r, x.profile.Containers, x.profile.Fallback, x.profile.FallbackScope)
	if err != nil {
		return nil, fail(tweetvoice.EUPSTREAM, tweetvoice.StageLocate, variant, "querying content", err)
	}
	if loc.Empty() {
		return nil, fail(tweetvoice.ENOCONTENT, tweetvoice.StageLocate, variant, "no content pattern matched", nil)
	}
	if n := x.profile.MaxContainers; n > 0 && len(loc.Containers) > n {
		loc.Containers = loc.Containers[:n]
	}
	x.logger.Debug("locate",
		"url", x.url,
		"pattern", loc.Pattern.Name,
		"structured", loc.Structured(),
		"containers", len(loc.Containers),
		"fragments", len(loc.Fragments),
	)

	// Located -> Assembled
	body, err := Assemble(ctx, x.r, loc, x.profile.Fragments)
	if err != nil {
		return nil, fail(tweetvoice.EUPSTREAM, tweetvoice.StageAssemble, variant, "reading text", err)
	}
	if body == "" {
		return nil, fail(tweetvoice.EEMPTY, tweetvoice.StageAssemble, variant, "matched content is blank", nil)
	}
	result.Body = body
	result.Structured = loc.Structured()

	// Assembled -> Done
	result.Title = x.title(ctx)
	return result, nil
}

// load navigates within the navigation timeout and waits for the readiness
// pattern, then gives the page a fixed delay to finish rendering.
func (x *extraction) load(ctx context.Context) error {
	variant := x.profile.Variant

	navTimeout := x.profile.NavigateTimeout
	if navTimeout <= 0 {
		navTimeout = DefaultNavigateTimeout
	}
	navCtx, cancel := context.WithTimeout(ctx, navTimeout)
	err := x.r.Navigate(navCtx, x.url)
	expired := navCtx.Err() != nil && ctx.Err() == nil
	cancel()
	if err != nil {
		if expired || (errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil) {
			return fail(tweetvoice.ENAVTIMEOUT, tweetvoice.StageNavigate, variant, "navigation timed out", err)
		}
		return fail(tweetvoice.EUPSTREAM, tweetvoice.StageNavigate, variant, "navigating", err)
	}

	timeout := x.profile.ReadyTimeout
	if timeout <= 0 {
		timeout = DefaultReadyTimeout
	}
	if _, err := x.r.WaitForElement(ctx, x.profile.Ready, timeout); err != nil {
		if tweetvoice.ErrorCode(err) == tweetvoice.ETIMEOUT {
			return fail(tweetvoice.ENAVTIMEOUT, tweetvoice.StageNavigate, variant, "page never became ready", err)
		}
		return fail(tweetvoice.EUPSTREAM, tweetvoice.StageNavigate, variant, "waiting for page", err)
	}

	if err := x.sleep(ctx, x.profile.RenderDelay); err != nil {
		return fail(tweetvoice.EUPSTREAM, tweetvoice.StageNavigate, variant, "waiting for render", err)
	}
	return nil
}

// title reads the page title once. A failed read yields an empty title.
func (x *extraction) title(ctx context.Context) string {
	raw, err := x.r.Title(ctx)
	if err != nil {
		x.logger.Debug("title", "url", x.url, "err", err)
		return ""
	}
	return CleanTitle(raw, x.profile.TitleSuffix)
}

// fail builds a terminal extraction error.
func fail(code string, stage tweetvoice.Stage, variant tweetvoice.Variant, msg string, cause error) *tweetvoice.Error {
	if cause != nil {
		msg = msg + ": " + cause.Error()
	}
	return &tweetvoice.Error{
		Code:    code,
		Message: msg,
		Stage:   stage,
		Variant: variant,
		Err:     cause,
	}
}
