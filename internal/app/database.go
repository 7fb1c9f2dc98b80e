// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/boxpack-service/config"
	"github.com/guttosm/boxpack-service/internal/circuitbreaker"
	"github.com/guttosm/boxpack-service/internal/logger"
	"github.com/guttosm/boxpack-service/internal/repository"
	"github.com/guttosm/boxpack-service/internal/service"
)

// DatabaseComponents holds MongoDB-backed components.
type DatabaseComponents struct {
	BoxSetsRepo          repository.BoxSetsRepositoryInterface
	BoxSetsCircuitBreaker *circuitbreaker.CircuitBreaker
	UserRepo             repository.UserRepositoryInterface
	TokenRepo            repository.TokenRepositoryInterface
	AuthService          service.AuthService
	DB                   *repository.MongoDB
}

// InitializeDatabase connects to MongoDB and builds the repositories and the
// auth service. Returns nil when the database is disabled or unreachable; the
// service then runs with the built-in box catalog and without JWT auth.
func InitializeDatabase(cfg config.DatabaseConfig, authCfg config.AuthConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	boxSetsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-box-sets",
		Logger:           logger.Logger(),
	})

	boxSetsRepo := repository.NewBoxSetsRepository(db)
	boxSetsRepoWithCB := repository.NewBoxSetsRepositoryWithCircuitBreaker(boxSetsRepo, boxSetsCB)

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	var authService service.AuthService
	if authCfg.Enabled {
		authService = service.NewAuthService(userRepo, tokenRepo, authCfg)
	}

	return &DatabaseComponents{
		BoxSetsRepo:           boxSetsRepoWithCB,
		BoxSetsCircuitBreaker: boxSetsCB,
		UserRepo:              userRepo,
		TokenRepo:             tokenRepo,
		AuthService:           authService,
		DB:                    db,
	}
}
