// Package database holds SQL dialect details shared by the stores and migrations.
package database

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect identifies the SQL flavour spoken by a *sql.DB.
type Dialect string

const (
	// Postgres is PostgreSQL reached through the pgx stdlib driver.
	Postgres Dialect = "postgres"
	// SQLite is SQLite reached through modernc.org/sqlite.
	SQLite Dialect = "sqlite"
)

// ParseDialect maps a store driver name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(name))); d {
	case Postgres, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", name)
	}
}

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "pgx"
	case SQLite:
		return "sqlite"
	default:
		return ""
	}
}

// Rebind rewrites '?' placeholders into the dialect's bind syntax.
// Queries are written with '?' and only Postgres needs numbered parameters.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
