// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/boxpack-service/internal/circuitbreaker"
)

// BoxSetsRepositoryWithCircuitBreaker wraps BoxSetsRepository with circuit
// breaker protection so catalog reads degrade to the built-in defaults when
// Mongo is struggling.
type BoxSetsRepositoryWithCircuitBreaker struct {
	repo           *BoxSetsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewBoxSetsRepositoryWithCircuitBreaker creates a protected repository wrapper.
func NewBoxSetsRepositoryWithCircuitBreaker(repo *BoxSetsRepository, cb *circuitbreaker.CircuitBreaker) *BoxSetsRepositoryWithCircuitBreaker {
	return &BoxSetsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active catalog. When the circuit is open it returns
// (nil, nil) so callers fall back to the default catalog.
func (r *BoxSetsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*BoxSetConfig, error) {
	var result *BoxSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil, nil
	}
	return result, err
}

// Create stores a new catalog version with circuit breaker protection.
func (r *BoxSetsRepositoryWithCircuitBreaker) Create(ctx context.Context, boxes []BoxEntry, createdBy string) (*BoxSetConfig, error) {
	var result *BoxSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, boxes, createdBy)
		return cbErr
	})
	return result, err
}

// List returns catalog versions with circuit breaker protection.
func (r *BoxSetsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]BoxSetConfig, error) {
	var result []BoxSetConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// CircuitBreaker exposes the underlying breaker for health monitoring.
func (r *BoxSetsRepositoryWithCircuitBreaker) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
