package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/target/jobtracker-api/config"
	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/data"
	"github.com/target/jobtracker-api/internal/data/database"
)

// Store bundles the session factory with the resources that back it.
type Store struct {
	Sessions core.ApplicationStoreFactory
	// DB is nil for the memory store.
	DB      *sql.DB
	Dialect database.Dialect
	Driver  config.StoreDriver
}

// Close releases the underlying database handle, if any.
func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// DatabaseConfig contains configuration for store connections.
type DatabaseConfig struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// ConnectStore opens the record store selected by STORE_DRIVER.
func ConnectStore(ctx context.Context, cfg DatabaseConfig) (*Store, error) {
	if cfg.Config == nil {
		return nil, errors.New("store config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	driver := cfg.Config.Store.Driver
	switch driver {
	case config.StoreDriverMemory:
		logger.WarnContext(ctx, "using in-memory store; data is lost on exit")
		return &Store{Sessions: data.NewMemoryApplicationStore(), Driver: driver}, nil

	case config.StoreDriverSQLite:
		db, err := data.OpenSQLite(ctx, cfg.Config.SQLite)
		if err != nil {
			return nil, fmt.Errorf("connect sqlite: %w", err)
		}
		logger.InfoContext(ctx, "database connected", "driver", driver, "path", cfg.Config.SQLite.Path)
		return newSQLStore(db, database.SQLite, driver)

	case config.StoreDriverPostgres:
		db, err := data.OpenPostgres(ctx, cfg.Config.Postgres)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.InfoContext(ctx, "database connected",
			"driver", driver,
			"host", cfg.Config.Postgres.Host,
			"port", cfg.Config.Postgres.Port,
			"database", cfg.Config.Postgres.Name,
		)
		return newSQLStore(db, database.Postgres, driver)

	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

func newSQLStore(db *sql.DB, dialect database.Dialect, driver config.StoreDriver) (*Store, error) {
	factory, err := data.NewApplicationStore(db, dialect)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close database connection: %w", closeErr))
		}
		return nil, err
	}
	return &Store{Sessions: factory, DB: db, Dialect: dialect, Driver: driver}, nil
}

// RunMigrations applies pending schema migrations for SQL-backed stores.
func RunMigrations(ctx context.Context, store *Store, logger *slog.Logger) error {
	if store == nil || store.DB == nil {
		return nil
	}
	if logger != nil {
		logger.InfoContext(ctx, "running database migrations", "dialect", store.Dialect)
	}
	if err := data.RunMigrations(ctx, store.DB, store.Dialect); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	if logger != nil {
		logger.InfoContext(ctx, "database migrations completed")
	}
	return nil
}
