// Package testutil provides shared helpers for integration tests that need
// real backing services via testcontainers.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/guttosm/boxpack-service/internal/repository"
)

// MongoContainer bundles a running MongoDB container with a connected client.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	DB        *repository.MongoDB
	URI       string
}

// StartMongoContainer launches a MongoDB container and connects to it. The
// caller must invoke Terminate when done.
func StartMongoContainer(ctx context.Context, databaseName string) (*MongoContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, fmt.Errorf("failed to start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	cfg := repository.DefaultMongoConfig()
	cfg.ConnectTimeout = 30 * time.Second

	db, err := repository.NewMongoDBWithConfig(uri, databaseName, cfg)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("failed to connect to mongodb container: %w", err)
	}

	return &MongoContainer{
		Container: container,
		DB:        db,
		URI:       uri,
	}, nil
}

// Terminate closes the client connection and stops the container.
func (m *MongoContainer) Terminate(ctx context.Context) error {
	if m.DB != nil {
		_ = m.DB.Close(ctx)
	}
	return testcontainers.TerminateContainer(m.Container)
}
