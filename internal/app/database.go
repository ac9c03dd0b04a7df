// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/sourcing-lens/config"
	"github.com/guttosm/sourcing-lens/internal/circuitbreaker"
	"github.com/guttosm/sourcing-lens/internal/repository"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	RunsRepo       repository.RunsRepositoryInterface
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and wraps the runs repository in a
// circuit breaker. Returns nil if the database is disabled or the connection
// fails; the service then runs without saved runs.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without saved runs")
		return nil
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	cb := newCircuitBreaker("mongodb-runs", cfg.Breaker(), repository.IsStoreFailure)

	return &DatabaseComponents{
		DB:             db,
		RunsRepo:       repository.NewRunsRepositoryWithCircuitBreaker(repository.NewRunsRepository(db), cb),
		CircuitBreaker: cb,
	}
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
