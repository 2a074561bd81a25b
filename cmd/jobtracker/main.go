package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/target/jobtracker-api/config"
	"github.com/target/jobtracker-api/internal/bootstrap"
	"github.com/target/jobtracker-api/internal/devseed"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	bootstrap.ApplyLogLevel(&cfg)

	logStartupInfo(ctx, logger, &cfg)

	store, err := bootstrap.ConnectStore(ctx, bootstrap.DatabaseConfig{Config: &cfg, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close database failed", "error", cerr)
		}
	}()

	if cfg.RunMigrationsOnStart() {
		if err = bootstrap.RunMigrations(ctx, store, logger); err != nil {
			return err
		}
	} else {
		logger.InfoContext(ctx, "skipping database migrations on startup", "driver", cfg.Store.Driver)
	}

	services := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config: &cfg,
		Store:  store,
		Logger: logger,
	})

	// The memory store starts empty every run; give dev sessions something to look at.
	if cfg.IsDev && cfg.Store.Driver == config.StoreDriverMemory {
		if _, err = devseed.Run(ctx, devseed.Services{
			Applications: services.Applications,
			Sessions:     services.Sessions,
		}, logger, devseed.Options{}); err != nil {
			return err
		}
	}

	server := bootstrap.NewHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})

	return bootstrap.RunWithSignals(ctx, bootstrap.ServeConfig{
		Server:          server,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		Logger:          logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	attrs := []any{
		"store_driver", cfg.Store.Driver,
		"http_addr", cfg.HTTP.Addr,
		"dev", cfg.IsDev,
		"metrics_enabled", cfg.Observability.Metrics.IsEnabled(),
	}
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		attrs = append(attrs,
			"db_host", cfg.Postgres.Host,
			"db_port", cfg.Postgres.Port,
			"db_name", cfg.Postgres.Name)
	case config.StoreDriverSQLite:
		attrs = append(attrs, "sqlite_path", cfg.SQLite.Path)
	case config.StoreDriverMemory:
	}
	logger.InfoContext(ctx, "starting jobtracker service", attrs...)
}
