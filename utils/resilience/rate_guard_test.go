package resilience

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-pipeline/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestGuard() (*RateGuard, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewRateGuard(DefaultRateGuardConfig(), clock.Now), clock
}

func TestRateGuard_TripsAfterThreshold(t *testing.T) {
	guard, _ := newTestGuard()

	for i := 0; i < 4; i++ {
		guard.RecordFailure("headlines")
		require.NoError(t, guard.Attempt("headlines"), "failure %d should not trip", i+1)
	}

	guard.RecordFailure("headlines")
	err := guard.Attempt("headlines")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCircuitOpen)

	var open *domain.CircuitOpenError
	require.True(t, errors.As(err, &open))
	assert.Equal(t, "headlines", open.SourceID)
	assert.Equal(t, 10*time.Minute, open.RetryAfter)

	// other sources are unaffected
	assert.NoError(t, guard.Attempt("cryptopanic"))
}

func TestRateGuard_ResetsAfterCooldown(t *testing.T) {
	guard, clock := newTestGuard()

	for i := 0; i < 5; i++ {
		guard.RecordFailure("headlines")
	}

	clock.Advance(9 * time.Minute)
	err := guard.Attempt("headlines")
	var open *domain.CircuitOpenError
	require.True(t, errors.As(err, &open))
	assert.Equal(t, time.Minute, open.RetryAfter)

	clock.Advance(time.Minute)
	require.NoError(t, guard.Attempt("headlines"))

	state := guard.Snapshot("headlines")
	assert.Equal(t, 0, state.ConsecutiveFailures)
	assert.Nil(t, state.TrippedAt)
}

func TestRateGuard_RecordSuccessResetsCounter(t *testing.T) {
	guard, _ := newTestGuard()

	guard.RecordFailure("crawler")
	guard.RecordFailure("crawler")
	assert.Equal(t, 2, guard.Snapshot("crawler").ConsecutiveFailures)

	guard.RecordSuccess("crawler")
	assert.Equal(t, 0, guard.Snapshot("crawler").ConsecutiveFailures)
}

func TestRateGuard_IsRateLimited(t *testing.T) {
	guard, clock := newTestGuard()
	assert.False(t, guard.IsRateLimited("cryptocompare"))

	guard.RecordRateLimited("cryptocompare")
	assert.True(t, guard.IsRateLimited("cryptocompare"))
	assert.NotNil(t, guard.Snapshot("cryptocompare").RateLimitedUntil)

	clock.Advance(11 * time.Minute)
	assert.False(t, guard.IsRateLimited("cryptocompare"))

	for i := 0; i < 5; i++ {
		guard.RecordFailure("cryptocompare")
	}
	assert.True(t, guard.IsRateLimited("cryptocompare"))
}

func TestRateGuard_ConcurrentRecords(t *testing.T) {
	guard, _ := newTestGuard()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guard.RecordFailure("extraction")
			_ = guard.Attempt("extraction")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, guard.Snapshot("extraction").ConsecutiveFailures)
	assert.Error(t, guard.Attempt("extraction"))
}
