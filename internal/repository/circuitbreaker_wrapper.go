package repository

import (
	"context"
	"errors"

	"github.com/guttosm/sourcing-lens/internal/circuitbreaker"
	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsStoreFailure reports whether err means the store itself is unhealthy.
// A missing document is a normal answer and must not trip the breaker.
func IsStoreFailure(err error) bool {
	return err != nil && !errors.Is(err, ErrNotFound)
}

// RunsRepositoryWithCircuitBreaker wraps a runs repository with circuit breaker protection.
// An open circuit surfaces circuitbreaker.ErrCircuitOpen to the caller.
type RunsRepositoryWithCircuitBreaker struct {
	repo           RunsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRunsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRunsRepositoryWithCircuitBreaker(repo RunsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RunsRepositoryWithCircuitBreaker {
	return &RunsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create saves a run with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) Create(ctx context.Context, run *model.Run) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, run)
	})
}

// ListByUser lists runs with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) ListByUser(ctx context.Context, userID string, limit int) ([]model.Run, error) {
	var result []model.Run
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListByUser(ctx, userID, limit)
		return cbErr
	})
	return result, err
}

// GetByID fetches a run with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*model.Run, error) {
	var result *model.Run
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, userID, id)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RunsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
