package config

import (
	"fmt"
	"strings"
)

// StoreDriver names the backing record store.
type StoreDriver string

const (
	// StoreDriverPostgres stores applications in PostgreSQL through pgx.
	StoreDriverPostgres StoreDriver = "postgres"
	// StoreDriverSQLite stores applications in a local SQLite file.
	StoreDriverSQLite StoreDriver = "sqlite"
	// StoreDriverMemory keeps applications in process memory (dev and tests only).
	StoreDriverMemory StoreDriver = "memory"
)

// ValidStoreDrivers returns all valid store driver names.
func ValidStoreDrivers() []StoreDriver {
	return []StoreDriver{StoreDriverPostgres, StoreDriverSQLite, StoreDriverMemory}
}

// UnmarshalText implements encoding.TextUnmarshaler for StoreDriver.
func (d *StoreDriver) UnmarshalText(text []byte) error {
	v := StoreDriver(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverMemory:
		*d = v
		return nil
	case "postgresql", "pg":
		*d = StoreDriverPostgres
		return nil
	default:
		return fmt.Errorf("invalid StoreDriver: %q (valid options: postgres, sqlite, memory)", string(text))
	}
}

// StoreConfig selects the record store used by the HTTP server and admin CLI.
type StoreConfig struct {
	Driver StoreDriver `env:"STORE_DRIVER" envDefault:"sqlite"`
}
