package transmit

import (
	"sync"
	"time"
)

// Circuit breaker defaults: trip after 3 consecutive transport failures,
// probe again after 5 s, doubling up to 5 min.
const (
	DefaultFailureThreshold = 3
	DefaultInitialBackoff   = 5 * time.Second
	DefaultMaxBackoff       = 300 * time.Second
)

// CircuitBreaker is the transmitter's failure gate. While closed, calls go
// to the wire; after a streak of transport failures it opens and calls
// fail fast until the backoff window elapses. The first call after expiry
// is the probe: success closes the breaker and resets the backoff, another
// failure re-opens it with the backoff doubled.
type CircuitBreaker struct {
	mu sync.Mutex

	threshold      int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	consecutiveFailures int
	open                bool
	openedAt            time.Time
	backoff             time.Duration

	now func() time.Time
}

func NewCircuitBreaker(threshold int, initialBackoff, maxBackoff time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		threshold:      threshold,
		initialBackoff: initialBackoff,
		maxBackoff:     maxBackoff,
		backoff:        initialBackoff,
		now:            time.Now,
	}
}

// Allow reports whether a call may go to the wire. When the backoff window
// of an open breaker has elapsed, the breaker closes and the call proceeds
// as the probe.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !cb.open {
		return true
	}

	if cb.now().Sub(cb.openedAt) >= cb.backoff {
		cb.open = false
		return true
	}

	return false
}

// Success resets the failure streak and the backoff.
func (cb *CircuitBreaker) Success() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.consecutiveFailures = 0
	cb.open = false
	cb.backoff = cb.initialBackoff
}

// Failure records a transport failure; reaching the threshold opens the
// breaker. A failure while the breaker was resting re-opens it immediately
// with the backoff doubled (capped).
func (cb *CircuitBreaker) Failure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.consecutiveFailures++
	if cb.consecutiveFailures < cb.threshold {
		return
	}

	if cb.consecutiveFailures > cb.threshold {
		// any failure beyond the tripping one is a failed probe
		cb.backoff = min(2*cb.backoff, cb.maxBackoff)
	}
	cb.open = true
	cb.openedAt = cb.now()
}

// Open reports whether the breaker currently fails fast.
func (cb *CircuitBreaker) Open() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if !cb.open {
		return false
	}
	return cb.now().Sub(cb.openedAt) < cb.backoff
}
