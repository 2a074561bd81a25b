package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/target/jobtracker-api/config"
	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/observability/metrics"
	"github.com/target/jobtracker-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Applications *service.ApplicationService
	Sessions     core.ApplicationStoreFactory
	// Metrics is nil when metrics are disabled.
	Metrics *metrics.Registry
	// DB backs readiness checks; nil for the memory store.
	DB *sql.DB
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Store  *Store
	Logger *slog.Logger
}

// NewServices wires the application service to the store and observability stack.
func NewServices(deps *ServiceDeps) ServiceContainer {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var reg *metrics.Registry
	if deps.Config != nil && deps.Config.Observability.Metrics.IsEnabled() {
		reg = metrics.New(deps.Config.Observability.Metrics.Namespace)
	}

	opts := service.ApplicationServiceOptions{Logger: logger}
	if reg != nil {
		opts.Metrics = reg
	}

	var sessions core.ApplicationStoreFactory
	var db *sql.DB
	if deps.Store != nil {
		sessions = deps.Store.Sessions
		db = deps.Store.DB
	}

	return ServiceContainer{
		Applications: service.NewApplicationService(opts),
		Sessions:     sessions,
		Metrics:      reg,
		DB:           db,
	}
}
