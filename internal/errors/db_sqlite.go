package errors

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// mapSQLiteError classifies modernc.org/sqlite errors by their extended result code.
func mapSQLiteError(err error) (error, bool) {
	var sqlErr *sqlite.Error
	if !errors.As(err, &sqlErr) {
		return nil, false
	}

	code := sqlErr.Code()
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return conflictError(sqliteConstraintColumn(sqlErr.Error()), err), true
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return requiredError(sqliteConstraintColumn(sqlErr.Error()), err), true
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return invalidError("", err), true
	}

	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED, sqlite3.SQLITE_CANTOPEN:
		return &AppError{Code: ErrCodeUnavailable, Message: msgUnavailable, Cause: err}, true
	default:
		return &AppError{Code: ErrCodeInternal, Message: msgDatabase, Cause: err}, true
	}
}

// sqliteConstraintColumn extracts the column from messages such as
// "UNIQUE constraint failed: applications.job_title". Multi-column
// constraints yield an empty string.
func sqliteConstraintColumn(msg string) string {
	const marker = "constraint failed: "
	idx := strings.LastIndex(msg, marker)
	if idx < 0 {
		return ""
	}
	target := strings.TrimSpace(msg[idx+len(marker):])
	if i := strings.IndexAny(target, " ,)"); i >= 0 {
		if target[i] == ',' {
			return ""
		}
		target = target[:i]
	}
	if _, col, found := strings.Cut(target, "."); found {
		return col
	}
	return ""
}
