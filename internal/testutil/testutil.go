package testutil

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Import pgx driver for database/sql compatibility in tests.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Import the pure Go SQLite driver for file-backed test databases.
	_ "modernc.org/sqlite"

	"github.com/target/jobtracker-api/internal/data/database"
	"github.com/target/jobtracker-api/internal/migrate"
)

// TestDBConfig holds connection settings for the Postgres test database.
type TestDBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DefaultTestDBConfig reads TEST_DB_* variables. The port defaults to 55432 so a
// developer's regular Postgres on 5432 is never touched; CI sets TEST_DB_PORT.
func DefaultTestDBConfig() TestDBConfig {
	return TestDBConfig{
		Host:     getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:     getEnvOrDefault("TEST_DB_PORT", "55432"),
		User:     getEnvOrDefault("TEST_DB_USER", "jobtracker"),
		Password: getEnvOrDefault("TEST_DB_PASSWORD", "jobtracker"),
		DBName:   getEnvOrDefault("TEST_DB_NAME", "jobtracker"),
		SSLMode:  getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
	}
}

// DSN renders the config as a pgx URL. searchPath is optional.
func (c TestDBConfig) DSN(searchPath string) string {
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	if searchPath != "" {
		q.Set("search_path", searchPath)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: q.Encode(),
	}
	return u.String()
}

// TestingTB is the subset of testing.TB the helpers need.
type TestingTB interface {
	Helper()
	Skip(args ...any)
	Fatal(args ...any)
	Fatalf(format string, args ...any)
	Logf(format string, args ...any)
	Cleanup(func())
}

// SetupSQLiteDB opens a migrated SQLite database in a per-test temporary directory.
func SetupSQLiteDB(t interface {
	TestingTB
	TempDir() string
},
) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jobtracker-test.sqlite")
	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		t.Fatal("open sqlite database:", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { closeAndLog(t, "sqlite DB", db) })

	migrateOrFail(t, db, database.SQLite)
	return db
}

// WithAutoDB runs fn against a migrated Postgres database, or skips when none is
// reachable (fails instead when TEST_REQUIRE_DB is set). With TEST_DB_EPHEMERAL the
// test gets its own schema that is dropped afterwards; otherwise the shared database
// is emptied before and after fn.
func WithAutoDB(t TestingTB, fn func(*sql.DB)) {
	t.Helper()
	cfg := DefaultTestDBConfig()
	admin := openPostgres(t, cfg.DSN(""))

	if !envBool("TEST_DB_EPHEMERAL") {
		migrateOrFail(t, admin, database.Postgres)
		truncate(t, admin)
		t.Cleanup(func() { truncate(t, admin) })
		fn(admin)
		return
	}

	schema := schemaName()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := admin.ExecContext(ctx, "CREATE SCHEMA "+schema); err != nil {
		t.Fatalf("create schema %s: %v", schema, err)
	}
	t.Cleanup(func() {
		cctx, ccancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer ccancel()
		if _, err := admin.ExecContext(cctx, "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("warning: drop schema %s: %v", schema, err)
		}
	})
	t.Logf("using ephemeral schema %s", schema)

	// Registered after the admin cleanup so it closes first.
	db := openPostgres(t, cfg.DSN(schema))
	migrateOrFail(t, db, database.Postgres)
	fn(db)
}

func openPostgres(t TestingTB, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatal("open postgres:", err)
	}
	t.Cleanup(func() { closeAndLog(t, "postgres DB", db) })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		if requireDB() {
			t.Fatal("test database not available:", err)
		}
		t.Skip("test database not available:", err)
	}
	return db
}

func migrateOrFail(t TestingTB, db *sql.DB, dialect database.Dialect) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrate.Run(ctx, db, dialect); err != nil {
		t.Fatalf("run %s migrations: %v", dialect, err)
	}
}

func truncate(t TestingTB, db *sql.DB) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, "TRUNCATE applications RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate applications: %v", err)
	}
}

func schemaName() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("t_%d", time.Now().UnixNano())
	}
	return "t_" + hex.EncodeToString(b)
}

func closeAndLog(t TestingTB, name string, closer interface{ Close() error }) {
	if err := closer.Close(); err != nil {
		t.Logf("warning: failed to close %s: %v", name, err)
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envBool parses common truthy values from env vars.
func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

func requireDB() bool { return envBool("TEST_REQUIRE_DB") || envBool("TEST_REQUIRE_INFRA") }

// TestTime returns a fixed time for testing.
func TestTime() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}
