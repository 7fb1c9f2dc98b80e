// Package circuitbreaker guards MongoDB-backed reads so a struggling
// database degrades the service to its built-in defaults instead of stalling
// every request.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrCircuitOpen is returned when the circuit is open and calls are rejected
// without being attempted.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker state.
type State int

const (
	// StateClosed passes calls through and counts failures.
	StateClosed State = iota
	// StateOpen rejects calls until the retry deadline passes.
	StateOpen
	// StateHalfOpen lets probe calls through; enough successes close the
	// circuit again, any failure reopens it.
	StateHalfOpen
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker tuning.
type Config struct {
	// FailureThreshold is the consecutive-failure count that opens the circuit.
	FailureThreshold int
	// SuccessThreshold is the probe-success count that closes it again.
	SuccessThreshold int
	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration
	// Name labels the breaker in logs and health output.
	Name string
	// Logger receives state transition events; defaults to a no-op sink.
	Logger zerolog.Logger
}

// DefaultConfig returns a sensible starting configuration.
func DefaultConfig(name string) Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             name,
		Logger:           zerolog.Nop(),
	}
}

// CircuitBreaker implements the circuit breaker pattern around a callable.
type CircuitBreaker struct {
	cfg Config

	mu            sync.Mutex
	state         State
	failures      int
	probeSuccess  int
	retryDeadline time.Time
}

// New creates a circuit breaker. Zero thresholds fall back to the defaults.
func New(cfg Config) *CircuitBreaker {
	defaults := DefaultConfig(cfg.Name)
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = defaults.SuccessThreshold
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	return &CircuitBreaker{cfg: cfg, state: StateClosed}
}

// Execute runs fn under the breaker. It returns ErrCircuitOpen without
// calling fn when the circuit is open, otherwise fn's error.
func (cb *CircuitBreaker) Execute(_ context.Context, fn func() error) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	cb.record(err == nil)
	return err
}

// allow decides whether a call may proceed, moving open circuits to
// half-open once the retry deadline has passed.
func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if time.Now().Before(cb.retryDeadline) {
		return false
	}

	cb.state = StateHalfOpen
	cb.probeSuccess = 0
	cb.cfg.Logger.Info().Str("circuit_breaker", cb.cfg.Name).Msg("circuit breaker probing")
	return true
}

// record applies a call outcome to the state machine.
func (cb *CircuitBreaker) record(success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if success {
		switch cb.state {
		case StateHalfOpen:
			cb.probeSuccess++
			if cb.probeSuccess >= cb.cfg.SuccessThreshold {
				cb.state = StateClosed
				cb.failures = 0
				cb.cfg.Logger.Info().Str("circuit_breaker", cb.cfg.Name).Msg("circuit breaker closed")
			}
		case StateClosed:
			cb.failures = 0
		}
		return
	}

	switch cb.state {
	case StateHalfOpen:
		cb.trip()
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.FailureThreshold {
			cb.trip()
		}
	}
}

// trip opens the circuit; callers hold the lock.
func (cb *CircuitBreaker) trip() {
	cb.state = StateOpen
	cb.retryDeadline = time.Now().Add(cb.cfg.Timeout)
	cb.cfg.Logger.Warn().
		Str("circuit_breaker", cb.cfg.Name).
		Int("failures", cb.failures).
		Msg("circuit breaker opened")
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Healthy reports whether the breaker is closed.
func (cb *CircuitBreaker) Healthy() bool {
	return cb.State() == StateClosed
}
