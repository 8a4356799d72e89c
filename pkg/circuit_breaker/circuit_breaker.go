package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type State uint8

const (
	Closed State = iota + 1
	Open
	HalfOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	State() State
}

type Config struct {
	// Window is how many recent calls are tracked.
	Window int
	// Timeout is how long the breaker stays open before letting a trial call through.
	Timeout time.Duration
	// FailureRatio opens the breaker once reached within the window.
	FailureRatio float64
	// RecoveryCalls is how many consecutive half-open successes close it again.
	RecoveryCalls int
}

type circuitBreaker struct {
	mu  sync.Mutex
	cfg Config
	now func() time.Time

	state    State
	openedAt time.Time
	results  []bool // true = failed
	pos      int
	success  int
}

func New(cfg Config) CircuitBreaker {
	if cfg.Window <= 0 {
		cfg.Window = 10
	}
	if cfg.FailureRatio <= 0 {
		cfg.FailureRatio = 0.5
	}
	if cfg.RecoveryCalls <= 0 {
		cfg.RecoveryCalls = 1
	}
	return &circuitBreaker{
		cfg:     cfg,
		now:     time.Now,
		state:   Closed,
		results: make([]bool, cfg.Window),
	}
}

func (cb *circuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == Open {
		if cb.now().Sub(cb.openedAt) <= cb.cfg.Timeout {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = HalfOpen
		cb.success = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.results[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % len(cb.results)

	if cb.state == HalfOpen {
		if err != nil {
			cb.trip()
			return err
		}
		cb.success++
		if cb.success >= cb.cfg.RecoveryCalls {
			cb.reset()
		}
		return nil
	}

	fails := 0
	for _, failed := range cb.results {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(len(cb.results)) >= cb.cfg.FailureRatio {
		cb.trip()
	}
	return err
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.success = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.results {
		cb.results[i] = false
	}
	cb.success = 0
	cb.pos = 0
	cb.state = Closed
}
