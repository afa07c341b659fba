//go:build integration

// Package testdb starts a disposable PostgreSQL container for integration tests.
package testdb

import (
	"context"
	"fmt"
	"time"

	"ncnews/database"
	"ncnews/database/seed"
	"ncnews/internal/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DB is a running container plus an open pool against it.
type DB struct {
	Gorm      *gorm.DB
	URL       string
	container *postgres.PostgresContainer
}

// Start launches postgres:alpine and opens a pool with the default limits.
func Start(ctx context.Context) (*DB, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("nc_news_test"),
		postgres.WithUsername("nc_news"),
		postgres.WithPassword("nc_news"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}

	cfg := &config.Config{
		GoEnv:             "test",
		DatabaseURL:       connStr,
		DBMaxOpenConns:    5,
		DBMaxIdleConns:    2,
		DBConnMaxLifetime: 5 * time.Minute,
	}
	db, err := database.Open(ctx, cfg, zap.NewNop())
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}
	return &DB{Gorm: db, URL: connStr, container: pgContainer}, nil
}

// Reseed restores the development fixtures.
func (d *DB) Reseed(ctx context.Context) error {
	data, err := seed.Development()
	if err != nil {
		return err
	}
	return seed.Run(ctx, d.Gorm, d.URL, data, zap.NewNop())
}

func (d *DB) Close(ctx context.Context) error {
	_ = database.Close(d.Gorm)
	return d.container.Terminate(ctx)
}
