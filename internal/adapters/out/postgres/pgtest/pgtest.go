// Package pgtest starts a throwaway PostgreSQL container with the service schema for
// integration suites.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	postgres_adapter "shop/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every table created by the migration, in truncation order.
var Tables = []string{"notifications", "orders", "users"}

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs a postgres:15-alpine container and migrates the schema into it.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	database := &Database{Container: container}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		_ = database.Terminate(ctx)
		return nil, err
	}
	database.DB = db

	if err := postgres_adapter.Migrate(db); err != nil {
		_ = database.Terminate(ctx)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return database, nil
}

// Truncate empties every service table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE " + strings.Join(Tables, ", ")).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
