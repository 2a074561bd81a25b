package errors

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts field name from unique violation detail: "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

const (
	msgConflict    = "This value already exists. Please choose a different one."
	msgRequired    = "This field is required."
	msgMissing     = "Required field is missing. Please check your input."
	msgInvalid     = "This field has an invalid value."
	msgInvalidData = "Invalid data. Please check your input."
	msgDatabase    = "A database error occurred. Please try again."
	msgUnavailable = "The database is unavailable. Please try again."
)

// MapDBError maps database errors to AppError instances.
// It handles common database error patterns including:
// - sql.ErrNoRows / pgx.ErrNoRows → NotFound
// - Unique constraint violations → Conflict
// - Check and NOT NULL violations → Validation
// - Connection failures and SQLite busy/locked → Unavailable
// - Context timeouts/cancellations → Timeout/Canceled
//
// Both PostgreSQL (pgconn.PgError) and SQLite (modernc.org/sqlite) errors are recognized.
// If the error is not a recognized database error, it returns the original error.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "Request timed out. Please try again.", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "Request was canceled.", Cause: err}
	}

	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "Resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return &AppError{Code: ErrCodeUnavailable, Message: msgUnavailable, Cause: err}
	}

	if mapped, ok := mapSQLiteError(err); ok {
		return mapped
	}

	return err
}

// mapPgError maps PostgreSQL-specific errors to AppError instances.
func mapPgError(pgErr *pgconn.PgError) error {
	switch {
	case pgErr.Code == pgerrcode.UniqueViolation:
		return conflictError(uniqueField(pgErr), pgErr)
	case pgErr.Code == pgerrcode.CheckViolation:
		return invalidError(pgErr.ColumnName, pgErr)
	case pgErr.Code == pgerrcode.NotNullViolation:
		return requiredError(pgErr.ColumnName, pgErr)
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgErr.Code == pgerrcode.AdminShutdown,
		pgErr.Code == pgerrcode.CannotConnectNow:
		return &AppError{Code: ErrCodeUnavailable, Message: msgUnavailable, Cause: pgErr}
	case pgErr.Code == pgerrcode.QueryCanceled:
		return &AppError{Code: ErrCodeTimeout, Message: "Request timed out. Please try again.", Cause: pgErr}
	default:
		return &AppError{Code: ErrCodeInternal, Message: msgDatabase, Cause: pgErr}
	}
}

// uniqueField picks the offending column of a unique violation.
// ColumnName metadata is preferred, then the Detail message, then the constraint name.
func uniqueField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	if pgErr.Detail != "" {
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			return m[1]
		}
	}
	return inferFieldFromConstraint(pgErr.ConstraintName)
}

func conflictError(field string, cause error) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: msgConflict, Field: field, Cause: cause}
}

func requiredError(field string, cause error) *AppError {
	if field == "" {
		return &AppError{Code: ErrCodeValidation, Message: msgMissing, Cause: cause}
	}
	return &AppError{Code: ErrCodeValidation, Message: msgRequired, Field: field, Cause: cause}
}

func invalidError(field string, cause error) *AppError {
	if field == "" {
		return &AppError{Code: ErrCodeValidation, Message: msgInvalidData, Cause: cause}
	}
	return &AppError{Code: ErrCodeValidation, Message: msgInvalid, Field: field, Cause: cause}
}

// inferFieldFromConstraint attempts to infer the field name from a constraint name.
// e.g., "applications_job_key" → "job"
// Returns empty string if inference fails or is ambiguous.
func inferFieldFromConstraint(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	// "table_field_key" style names have exactly three parts; anything longer
	// is multi-column or an expression index.
	parts := strings.Split(constraintName, "_")
	if len(parts) != 3 {
		return ""
	}
	if isFunctionName(parts[1]) {
		return ""
	}
	return parts[1]
}

// isFunctionName checks if a string looks like a common SQL function name
// used in expression indexes (e.g., lower, upper, trim, etc.)
func isFunctionName(s string) bool {
	switch strings.ToLower(s) {
	case "lower", "upper", "trim", "ltrim", "rtrim", "md5", "sha1", "sha256", "encode", "decode":
		return true
	default:
		return false
	}
}
