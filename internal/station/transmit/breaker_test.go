package transmit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests advance the breaker's view of time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1000000, 0)} }

func newTestBreaker(clock *fakeClock) *CircuitBreaker {
	cb := NewCircuitBreaker(DefaultFailureThreshold, DefaultInitialBackoff, DefaultMaxBackoff)
	cb.now = clock.now
	return cb
}

func TestBreaker_StaysClosedBelowThreshold(t *testing.T) {
	cb := newTestBreaker(newFakeClock())

	cb.Failure()
	cb.Failure()

	assert.True(t, cb.Allow())
	assert.False(t, cb.Open())
}

func TestBreaker_OpensAtThreshold(t *testing.T) {
	cb := newTestBreaker(newFakeClock())

	for i := 0; i < 3; i++ {
		assert.True(t, cb.Allow())
		cb.Failure()
	}

	assert.False(t, cb.Allow())
	assert.True(t, cb.Open())
}

func TestBreaker_SuccessResetsStreak(t *testing.T) {
	cb := newTestBreaker(newFakeClock())

	cb.Failure()
	cb.Failure()
	cb.Success()
	cb.Failure()
	cb.Failure()

	assert.True(t, cb.Allow())
}

func TestBreaker_ProbeAfterBackoffExpiry(t *testing.T) {
	clock := newFakeClock()
	cb := newTestBreaker(clock)

	for i := 0; i < 3; i++ {
		cb.Failure()
	}
	assert.False(t, cb.Allow())

	clock.advance(DefaultInitialBackoff)
	assert.True(t, cb.Allow(), "first call after expiry is the probe")
}

func TestBreaker_FailedProbeDoublesBackoff(t *testing.T) {
	clock := newFakeClock()
	cb := newTestBreaker(clock)

	for i := 0; i < 3; i++ {
		cb.Failure()
	}

	// probe fails: the window doubles to 10 s
	clock.advance(DefaultInitialBackoff)
	assert.True(t, cb.Allow())
	cb.Failure()

	clock.advance(DefaultInitialBackoff)
	assert.False(t, cb.Allow(), "5 s is no longer enough")
	clock.advance(DefaultInitialBackoff)
	assert.True(t, cb.Allow(), "10 s total elapses the doubled window")
}

func TestBreaker_SuccessfulProbeResetsBackoff(t *testing.T) {
	clock := newFakeClock()
	cb := newTestBreaker(clock)

	for i := 0; i < 3; i++ {
		cb.Failure()
	}
	clock.advance(DefaultInitialBackoff)
	assert.True(t, cb.Allow())
	cb.Failure() // backoff now 10 s

	clock.advance(2 * DefaultInitialBackoff)
	assert.True(t, cb.Allow())
	cb.Success()

	// a fresh trip starts over at the initial window
	for i := 0; i < 3; i++ {
		cb.Failure()
	}
	clock.advance(DefaultInitialBackoff)
	assert.True(t, cb.Allow())
}

func TestBreaker_BackoffIsCapped(t *testing.T) {
	clock := newFakeClock()
	cb := newTestBreaker(clock)

	for i := 0; i < 3; i++ {
		cb.Failure()
	}

	// fail every probe until the cap is passed several times over
	for i := 0; i < 10; i++ {
		clock.advance(DefaultMaxBackoff)
		assert.True(t, cb.Allow())
		cb.Failure()
	}

	clock.advance(DefaultMaxBackoff)
	assert.True(t, cb.Allow(), "the window never exceeds the cap")
}
