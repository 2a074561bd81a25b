package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Postgres and SQLite configuration
//   - store.go: Store driver selection
//   - http.go: HTTP server configuration
//   - observability.go: Logging and metrics configuration
type AppConfig struct {
	// IsDev controls development mode behavior.
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Store selects the backing record store.
	Store StoreConfig

	// Database configuration
	Postgres DBConfig     `envPrefix:"DB_"`
	SQLite   SQLiteConfig `envPrefix:"SQLITE_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.SQLite.Sanitize()
	c.Observability.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// RunMigrationsOnStart reports whether the configured store wants schema
// migrations applied during startup. The memory store never does.
func (c *AppConfig) RunMigrationsOnStart() bool {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		return c.Postgres.RunMigrationsOnStart
	case StoreDriverSQLite:
		return c.SQLite.RunMigrationsOnStart
	default:
		return false
	}
}
