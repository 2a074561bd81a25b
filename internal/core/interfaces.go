package core

import (
	"context"
	"errors"

	"github.com/target/jobtracker-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// ErrRecordNotFound is returned by ApplicationStore.Update and Remove when no row matches the id.
var ErrRecordNotFound = errors.New("application record not found")

// ApplicationStore is a unit of work over persisted application records.
// Writes become visible to other sessions only after Commit.
type ApplicationStore interface {
	// List returns every record ordered by id ascending.
	List(ctx context.Context) ([]model.ApplicationRecord, error)
	// FindByID returns the record with the given id, or nil when none exists.
	FindByID(ctx context.Context, id int64) (*model.ApplicationRecord, error)
	// Add inserts rec and returns it with the storage-assigned id.
	Add(ctx context.Context, rec model.ApplicationRecord) (*model.ApplicationRecord, error)
	// Update overwrites every non-id column of the record identified by rec.ID.
	Update(ctx context.Context, rec model.ApplicationRecord) (*model.ApplicationRecord, error)
	// Remove deletes the record with the given id.
	Remove(ctx context.Context, id int64) error
	// Commit makes pending writes durable.
	Commit(ctx context.Context) error
}

// ApplicationSession is a request-scoped ApplicationStore. Close must always be
// called; pending writes that were not committed are rolled back.
type ApplicationSession interface {
	ApplicationStore
	Close() error
}

// ApplicationStoreFactory opens request-scoped store sessions.
type ApplicationStoreFactory interface {
	Begin(ctx context.Context) (ApplicationSession, error)
}
