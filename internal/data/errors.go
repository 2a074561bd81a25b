package data

import "errors"

// Shared sentinel errors for data-layer stores.
var (
	// ErrSessionClosed is returned when a store session is used after Commit or Close.
	ErrSessionClosed = errors.New("store session is closed")
	// ErrNilDB is returned when a SQL store is constructed without a database handle.
	ErrNilDB = errors.New("database handle is required")
)
