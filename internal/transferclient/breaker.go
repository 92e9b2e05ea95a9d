package transferclient

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("transfer API unavailable, circuit open")

type BreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

type breakerState int

const (
	stateClosed breakerState = iota
	stateOpen
	stateHalfOpen
)

// breaker stops the client from hammering an API that keeps failing.
// Transport errors and every 5xx response count as failures, structured or
// not; 4xx rejections count as successes.
type breaker struct {
	mu                sync.Mutex
	config            BreakerConfig
	state             breakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func newBreaker(config BreakerConfig) *breaker {
	return &breaker{
		config: config,
		state:  stateClosed,
		now:    time.Now,
	}
}

// allow reports whether a call may go out. An open breaker lets a probe
// through once the reset timeout has passed.
func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == stateOpen && b.now().Sub(b.lastFailureTime) > b.config.ResetTimeout {
		b.state = stateHalfOpen
		b.halfOpenSuccesses = 0
	}

	return b.state != stateOpen
}

func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.config.HalfOpenMaxSucc {
			b.state = stateClosed
			b.failures = 0
			b.halfOpenSuccesses = 0
		}
	case stateClosed:
		b.failures = 0
	}
}

func (b *breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastFailureTime = b.now()

	switch b.state {
	case stateHalfOpen:
		b.state = stateOpen
		b.halfOpenSuccesses = 0
	case stateClosed:
		b.failures++
		if b.failures >= b.config.MaxFailures {
			b.state = stateOpen
			b.halfOpenSuccesses = 0
		}
	}
}

func (b *breaker) currentState() breakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
