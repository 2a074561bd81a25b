package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthResponse       = `{"status":"ok"}`
	unhealthyResponse    = `{"status":"unavailable"}`
	defaultHealthTimeout = 2 * time.Second
)

// HealthChecker reports whether the backing store can serve requests.
// *sql.DB satisfies it.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

type healthHandler struct {
	checker HealthChecker
	timeout time.Duration
	logger  *slog.Logger
}

// ServeHTTP answers liveness/readiness probes. Without a checker it always reports ok.
func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, healthResponse
	if h.checker != nil {
		timeout := h.timeout
		if timeout <= 0 {
			timeout = defaultHealthTimeout
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()
		if err := h.checker.PingContext(ctx); err != nil {
			if h.logger != nil {
				h.logger.WarnContext(r.Context(), "health check failed", "error", err)
			}
			status, body = http.StatusServiceUnavailable, unhealthyResponse
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}
