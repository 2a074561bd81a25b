package config

import (
	"log/slog"
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Store.Driver != StoreDriverSQLite {
		t.Errorf("expected default store driver sqlite, got %q", cfg.Store.Driver)
	}
	if cfg.SQLite.Path != "jobtracker.sqlite" {
		t.Errorf("expected default sqlite path, got %q", cfg.SQLite.Path)
	}
	if cfg.Postgres.Host != "localhost" || cfg.Postgres.Port != 5432 || cfg.Postgres.Name != "jobtracker" {
		t.Errorf("unexpected postgres defaults: %#v", cfg.Postgres)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %v", cfg.HTTP.ShutdownTimeout)
	}
	if !cfg.Observability.Metrics.IsEnabled() {
		t.Error("expected metrics to be enabled by default")
	}
	if cfg.Observability.Metrics.Namespace != "jobtracker" {
		t.Errorf("unexpected namespace %q", cfg.Observability.Metrics.Namespace)
	}
	if !cfg.RunMigrationsOnStart() {
		t.Error("expected sqlite migrations to run on start by default")
	}
}

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_RUN_MIGRATIONS_ON_START", "false")
	t.Setenv("SQLITE_PATH", "/tmp/apps.db")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("OBSERVABILITY_METRICS_NAMESPACE", "job-tracker")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Store.Driver != StoreDriverPostgres {
		t.Fatalf("expected postgres driver, got %q", cfg.Store.Driver)
	}
	if cfg.Postgres.Host != "db.internal" || cfg.Postgres.Port != 6543 {
		t.Fatalf("unexpected postgres config: %#v", cfg.Postgres)
	}
	if cfg.RunMigrationsOnStart() {
		t.Fatal("expected migrations disabled for postgres")
	}
	if cfg.SQLite.Path != "/tmp/apps.db" {
		t.Fatalf("unexpected sqlite path %q", cfg.SQLite.Path)
	}
	if cfg.HTTP.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %q", cfg.HTTP.Addr)
	}
	if cfg.Observability.SlogLevel() != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.Observability.SlogLevel())
	}
	if cfg.Observability.Metrics.Namespace != "job_tracker" {
		t.Fatalf("expected sanitized namespace, got %q", cfg.Observability.Metrics.Namespace)
	}
}

func TestStoreDriver_UnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected StoreDriver
		wantErr  bool
	}{
		{input: "postgres", expected: StoreDriverPostgres},
		{input: "postgresql", expected: StoreDriverPostgres},
		{input: " SQLite ", expected: StoreDriverSQLite},
		{input: "memory", expected: StoreDriverMemory},
		{input: "mysql", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d StoreDriver
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, d)
			}
		})
	}
}

func TestAppConfig_InvalidStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "oracle")

	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected parse error for unknown store driver")
	}
}

func TestAppConfig_MemoryStoreSkipsMigrations(t *testing.T) {
	cfg := AppConfig{Store: StoreConfig{Driver: StoreDriverMemory}}
	cfg.Postgres.RunMigrationsOnStart = true
	cfg.SQLite.RunMigrationsOnStart = true

	if cfg.RunMigrationsOnStart() {
		t.Fatal("memory store should never run migrations")
	}
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	cfg := HTTPConfig{ShutdownTimeout: -1, MaxBodyBytes: 0}
	cfg.Sanitize()

	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected shutdown timeout fallback, got %v", cfg.ShutdownTimeout)
	}
	if cfg.ReadHeaderTimeout != 10*time.Second {
		t.Fatalf("expected read header timeout fallback, got %v", cfg.ReadHeaderTimeout)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected body cap fallback, got %d", cfg.MaxBodyBytes)
	}
}

func TestObservabilityConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityConfig{
		LogLevel: "verbose",
		Metrics: ObservabilityMetricsConfig{
			Enabled:   true,
			Namespace: "  ",
			Path:      "metrics",
		},
	}

	cfg.Sanitize()

	if cfg.LogLevel != "info" {
		t.Fatalf("expected unknown level to fall back to info, got %q", cfg.LogLevel)
	}
	if cfg.Metrics.Namespace != "jobtracker" {
		t.Fatalf("expected namespace default, got %q", cfg.Metrics.Namespace)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("expected path default, got %q", cfg.Metrics.Path)
	}
}

func TestSQLiteConfig_Sanitize(t *testing.T) {
	cfg := SQLiteConfig{Path: "  ", BusyTimeoutMS: -5}
	cfg.Sanitize()

	if cfg.Path != "jobtracker.sqlite" {
		t.Fatalf("expected default path, got %q", cfg.Path)
	}
	if cfg.BusyTimeoutMS != 0 {
		t.Fatalf("expected busy timeout clamped to 0, got %d", cfg.BusyTimeoutMS)
	}
}
