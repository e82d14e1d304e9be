package extract

import (
	"context"
	"time"

	"github.com/jayaanth/tweetvoice"
)

// Settler defaults.
const (
	DefaultSettleInterval  = 1200 * time.Millisecond
	DefaultSettleMaxRounds = 40
	DefaultSettleMaxWait   = 60 * time.Second
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Settler scrolls a page until lazily rendered content stops appearing.
type Settler struct {
	// Interval is the wait between a scroll and the next extent read.
	Interval time.Duration

	// MaxRounds caps scroll iterations. Zero means DefaultSettleMaxRounds.
	MaxRounds int

	// MaxWait caps total settle time. Zero disables the time cap.
	MaxWait time.Duration

	// Sleep and Now are replaced in tests.
	Sleep SleepFunc
	Now   func() time.Time
}

// NewSettler returns a Settler with default interval and caps.
func NewSettler() *Settler {
	return &Settler{
		Interval:  DefaultSettleInterval,
		MaxRounds: DefaultSettleMaxRounds,
		MaxWait:   DefaultSettleMaxWait,
	}
}

// Settle scrolls to the bottom and re-reads the scroll extent until two
// consecutive reads are equal. Infinite feeds never stabilize, so hitting
// either cap returns TimedOut rather than an error. Renderer faults are
// returned as errors.
func (s *Settler) Settle(ctx context.Context, r tweetvoice.Renderer) (tweetvoice.SettleOutcome, error) {
	sleep := s.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}
	maxRounds := s.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultSettleMaxRounds
	}

	var deadline time.Time
	if s.MaxWait > 0 {
		deadline = now().Add(s.MaxWait)
	}

	last, err := r.ScrollExtent(ctx)
	if err != nil {
		return tweetvoice.SettleSkipped, err
	}

	for round := 0; round < maxRounds; round++ {
		if err := r.ScrollToBottom(ctx); err != nil {
			return tweetvoice.SettleSkipped, err
		}
		if err := sleep(ctx, s.Interval); err != nil {
			return tweetvoice.SettleSkipped, err
		}

		extent, err := r.ScrollExtent(ctx)
		if err != nil {
			return tweetvoice.SettleSkipped, err
		}
		if extent == last {
			return tweetvoice.Settled, nil
		}
		last = extent

		if !deadline.IsZero() && !now().Before(deadline) {
			return tweetvoice.TimedOut, nil
		}
	}

	return tweetvoice.TimedOut, nil
}

// Sleep waits for d, returning early with the context error if ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
