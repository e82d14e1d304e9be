package extract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jayaanth/tweetvoice"
	"github.com/jayaanth/tweetvoice/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettler() *extract.Settler {
	s := extract.NewSettler()
	s.Sleep = noSleep
	return s
}

func TestSettler_ZeroGrowthSettlesImmediately(t *testing.T) {
	t.Parallel()

	// Given: a page whose extent never changes
	page := &fakePage{extents: []int{1200}}

	// When: settling
	outcome, err := newTestSettler().Settle(context.Background(), page.renderer())

	// Then: one scroll is enough to observe two equal reads
	require.NoError(t, err)
	assert.Equal(t, tweetvoice.Settled, outcome)
	assert.Equal(t, 1, page.scrolls)
}

func TestSettler_StopsWhenGrowthStops(t *testing.T) {
	t.Parallel()

	page := &fakePage{extents: []int{1000, 2000, 3000, 3000}}

	outcome, err := newTestSettler().Settle(context.Background(), page.renderer())

	require.NoError(t, err)
	assert.Equal(t, tweetvoice.Settled, outcome)
	assert.Equal(t, 3, page.scrolls)
}

func TestSettler_InfiniteFeedTimesOutAtRoundCap(t *testing.T) {
	t.Parallel()

	page := &fakePage{}
	r := page.renderer()
	extent := 0
	r.ScrollExtentFn = func(context.Context) (int, error) {
		extent += 500
		return extent, nil
	}

	s := newTestSettler()
	s.MaxRounds = 5
	s.MaxWait = 0

	outcome, err := s.Settle(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, tweetvoice.TimedOut, outcome)
	assert.Equal(t, 5, page.scrolls)
}

func TestSettler_TimesOutAtWaitCap(t *testing.T) {
	t.Parallel()

	page := &fakePage{}
	r := page.renderer()
	extent := 0
	r.ScrollExtentFn = func(context.Context) (int, error) {
		extent += 500
		return extent, nil
	}

	// Each sleep advances a fake clock by the interval.
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := extract.NewSettler()
	s.Interval = time.Second
	s.MaxWait = 3 * time.Second
	s.Now = func() time.Time { return now }
	s.Sleep = func(_ context.Context, d time.Duration) error {
		now = now.Add(d)
		return nil
	}

	outcome, err := s.Settle(context.Background(), r)

	require.NoError(t, err)
	assert.Equal(t, tweetvoice.TimedOut, outcome)
	assert.Equal(t, 3, page.scrolls)
}

func TestSettler_PropagatesRendererError(t *testing.T) {
	t.Parallel()

	page := &fakePage{}
	r := page.renderer()
	r.ScrollToBottomFn = func(context.Context) error {
		return errors.New("session crashed")
	}

	_, err := newTestSettler().Settle(context.Background(), r)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "session crashed")
}

func TestSettler_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	page := &fakePage{extents: []int{1000}}
	s := extract.NewSettler()
	s.Interval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Settle(ctx, page.renderer())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSleep(t *testing.T) {
	t.Parallel()

	t.Run("returns after duration", func(t *testing.T) {
		t.Parallel()

		err := extract.Sleep(context.Background(), time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := extract.Sleep(ctx, time.Hour)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
