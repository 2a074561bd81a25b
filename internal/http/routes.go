package httpx

import (
	"log/slog"
	"net/http"

	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/observability/metrics"
	"github.com/target/jobtracker-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Applications *service.ApplicationService
	Sessions     core.ApplicationStoreFactory
	// Optional: readiness probe for /healthz; nil always reports ok.
	Health HealthChecker
	// Optional: metrics registry; when nil neither instrumentation nor the scrape endpoint is mounted.
	Metrics     *metrics.Registry
	MetricsPath string
	// Configuration
	MaxBodyBytes int64
	Logger       *slog.Logger
}

// NewRouter creates and configures a new HTTP router with the standard middleware chain.
func NewRouter(services RouterServices) http.Handler {
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	registerApplicationRoutes(mux, &ApplicationHandlers{
		Svc:      services.Applications,
		Sessions: services.Sessions,
		Logger:   logger,
	})
	health := &healthHandler{checker: services.Health, logger: logger}
	mux.Handle("GET /healthz", health)
	mux.Handle("HEAD /healthz", health)

	var instrument func(http.Handler) http.Handler = func(next http.Handler) http.Handler { return next }
	if services.Metrics != nil {
		path := services.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, services.Metrics.Handler())
		instrument = services.Metrics.InstrumentHandler
	}

	return Chain(mux,
		RequestID(),
		Recover(logger),
		Logging(logger),
		instrument,
		MaxBody(services.MaxBodyBytes),
	)
}

func registerApplicationRoutes(mux *http.ServeMux, h *ApplicationHandlers) {
	mux.HandleFunc("GET /applications", h.List)
	mux.HandleFunc("GET /applications/{id}", h.Get)
	mux.HandleFunc("POST /applications", h.Create)
	mux.HandleFunc("PUT /applications", h.Update)
	mux.HandleFunc("DELETE /applications/{id}", h.Delete)
}
