// Package rod implements tweetvoice.Browser with Chrome automation via go-rod.
package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/jayaanth/tweetvoice"
)

// Ensure Browser implements tweetvoice.Browser at compile time.
var _ tweetvoice.Browser = (*Browser)(nil)

// Browser defaults.
const (
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
)

// Browser launches Chrome and opens one tab per session. Chrome accumulates
// memory over time, so with WithMaxSessions the process is recycled once
// that many sessions have been opened and none is still in flight.
//
// Browser is safe for concurrent use.
type Browser struct {
	chrome *chrome

	headless    bool
	noSandbox   bool
	bin         string
	userDataDir string
	width       int
	height      int
	maxSessions int64

	opened int64
	active int64
	mu     sync.Mutex
	closed atomic.Bool
}

// Option configures a Browser.
type Option func(*Browser)

// WithHeadless toggles headless mode. Defaults to true.
func WithHeadless(headless bool) Option {
	return func(b *Browser) {
		b.headless = headless
	}
}

// WithNoSandbox disables the Chrome sandbox, required in most containers.
// Defaults to true.
func WithNoSandbox(noSandbox bool) Option {
	return func(b *Browser) {
		b.noSandbox = noSandbox
	}
}

// WithBin sets the Chrome or Chromium binary. By default rod finds or
// downloads one.
func WithBin(path string) Option {
	return func(b *Browser) {
		b.bin = path
	}
}

// WithUserDataDir launches Chrome with an existing profile directory so
// that a logged-in session can be reused.
func WithUserDataDir(dir string) Option {
	return func(b *Browser) {
		b.userDataDir = dir
	}
}

// WithWindowSize sets the window and viewport size.
func WithWindowSize(width, height int) Option {
	return func(b *Browser) {
		b.width = width
		b.height = height
	}
}

// WithMaxSessions recycles Chrome after n sessions. Zero never recycles.
func WithMaxSessions(n int64) Option {
	return func(b *Browser) {
		b.maxSessions = n
	}
}

// NewBrowser launches Chrome. Close must be called when the Browser is no
// longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{
		headless:  true,
		noSandbox: true,
		width:     DefaultWindowWidth,
		height:    DefaultWindowHeight,
	}
	for _, opt := range opts {
		opt(b)
	}

	c, err := b.launch()
	if err != nil {
		return nil, err
	}
	b.chrome = c
	return b, nil
}

// Open creates a new tab sized to the configured window.
func (b *Browser) Open(ctx context.Context) (tweetvoice.Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.closed.Load() {
		return nil, tweetvoice.Errorf(tweetvoice.EINVALID, "browser closed")
	}

	b.mu.Lock()
	if b.chrome != nil && b.maxSessions > 0 && b.opened >= b.maxSessions && b.active == 0 {
		b.replaceChrome()
	}
	c := b.chrome
	if c == nil {
		b.mu.Unlock()
		return nil, tweetvoice.Errorf(tweetvoice.EINVALID, "browser closed")
	}
	b.opened++
	b.active++
	b.mu.Unlock()

	page, err := c.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		b.release()
		return nil, fmt.Errorf("opening tab: %w", err)
	}

	if err := page.Context(ctx).SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             b.width,
		Height:            b.height,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = page.Close()
		b.release()
		return nil, fmt.Errorf("sizing viewport: %w", err)
	}

	return &Session{page: page, release: b.release}, nil
}

// release marks a session as finished.
func (b *Browser) release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active--
}

// Close shuts Chrome down. Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	c := b.chrome
	b.chrome = nil
	b.mu.Unlock()

	return c.shutdown()
}

// chrome is one running Chrome process and its CDP connection.
type chrome struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// shutdown closes the connection and kills the process tree.
// A nil chrome is a no-op.
func (c *chrome) shutdown() error {
	if c == nil {
		return nil
	}
	err := c.browser.Close()
	c.launcher.Kill()
	return err
}

// launch starts Chrome with the configured flags and connects to it.
func (b *Browser) launch() (*chrome, error) {
	l := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("disable-extensions").
		Set("disable-background-networking").
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("window-size", fmt.Sprintf("%d,%d", b.width, b.height)).
		NoSandbox(b.noSandbox).
		Leakless(true).
		Headless(b.headless)

	if b.bin != "" {
		l = l.Bin(b.bin)
	}
	if b.userDataDir != "" {
		l = l.UserDataDir(b.userDataDir).Set("profile-directory", "Default")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching chrome: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to chrome: %w", err)
	}

	return &chrome{browser: browser, launcher: l}, nil
}

// replaceChrome swaps in a fresh Chrome and resets the session count.
// When the new process fails to start the current one stays in use.
// Callers hold mu and have no sessions in flight.
func (b *Browser) replaceChrome() {
	next, err := b.launch()
	if err != nil {
		return
	}
	_ = b.chrome.shutdown()
	b.chrome = next
	b.opened = 0
}

// LauncherPID returns the PID of the running Chrome launcher, or zero after
// Close. Tests use it to check that processes are reaped.
func (b *Browser) LauncherPID() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.chrome == nil {
		return 0
	}
	return b.chrome.launcher.PID()
}
