package config

import "strings"

// DBConfig contains PostgreSQL database configuration.
type DBConfig struct {
	Host     string `env:"HOST"                    envDefault:"localhost"`
	Port     int    `env:"PORT"                    envDefault:"5432"`
	User     string `env:"USER"                    envDefault:"jobtracker"`
	Password string `env:"PASSWORD"                envDefault:"jobtracker"`
	Name     string `env:"NAME"                    envDefault:"jobtracker"`
	SSLMode  string `env:"SSL_MODE"                envDefault:"disable"` // Use 'disable' for local dev, 'require' for production
	// RunMigrationsOnStart controls whether the application automatically applies migrations during startup.
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

const defaultSQLitePath = "jobtracker.sqlite"

// SQLiteConfig contains SQLite database configuration.
type SQLiteConfig struct {
	// Path is the database file. ":memory:" is accepted for throwaway runs.
	Path string `env:"PATH" envDefault:"jobtracker.sqlite"`
	// BusyTimeoutMS is applied through PRAGMA busy_timeout on every connection.
	BusyTimeoutMS        int  `env:"BUSY_TIMEOUT_MS"         envDefault:"5000"`
	RunMigrationsOnStart bool `env:"RUN_MIGRATIONS_ON_START" envDefault:"true"`
}

// Sanitize applies guardrails to SQLite configuration values.
func (s *SQLiteConfig) Sanitize() {
	s.Path = strings.TrimSpace(s.Path)
	if s.Path == "" {
		s.Path = defaultSQLitePath
	}
	if s.BusyTimeoutMS < 0 {
		s.BusyTimeoutMS = 0
	}
}
