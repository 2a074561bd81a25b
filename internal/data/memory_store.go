package data

import (
	"context"
	"sort"
	"sync"

	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/domain/model"
)

var _ core.ApplicationStoreFactory = (*MemoryApplicationStore)(nil)

// MemoryApplicationStore keeps application records in process memory.
// Sessions stage their writes and apply them atomically on Commit. Ids are
// drawn from a shared counter at Add time, so rolled back sessions leave gaps
// the same way a database sequence does.
type MemoryApplicationStore struct {
	mu     sync.RWMutex
	rows   map[int64]model.ApplicationRecord
	nextID int64
}

// NewMemoryApplicationStore creates an empty in-memory store.
func NewMemoryApplicationStore() *MemoryApplicationStore {
	return &MemoryApplicationStore{rows: make(map[int64]model.ApplicationRecord), nextID: 1}
}

// Begin opens a session over the store.
func (m *MemoryApplicationStore) Begin(ctx context.Context) (core.ApplicationSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memorySession{store: m, writes: make(map[int64]*model.ApplicationRecord)}, nil
}

// Len reports the number of committed records.
func (m *MemoryApplicationStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows)
}

func (m *MemoryApplicationStore) allocateID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	return id
}

// memorySession overlays staged writes on the committed rows.
// A nil entry in writes marks a staged delete.
type memorySession struct {
	store  *MemoryApplicationStore
	writes map[int64]*model.ApplicationRecord
	done   bool
}

func (s *memorySession) check(ctx context.Context) error {
	if s.done {
		return ErrSessionClosed
	}
	return ctx.Err()
}

func (s *memorySession) lookup(id int64) (model.ApplicationRecord, bool) {
	if staged, ok := s.writes[id]; ok {
		if staged == nil {
			return model.ApplicationRecord{}, false
		}
		return *staged, true
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	rec, ok := s.store.rows[id]
	return rec, ok
}

func (s *memorySession) List(ctx context.Context) ([]model.ApplicationRecord, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	merged := make(map[int64]model.ApplicationRecord)
	s.store.mu.RLock()
	for id, rec := range s.store.rows {
		merged[id] = rec
	}
	s.store.mu.RUnlock()
	for id, staged := range s.writes {
		if staged == nil {
			delete(merged, id)
			continue
		}
		merged[id] = *staged
	}

	out := make([]model.ApplicationRecord, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memorySession) FindByID(ctx context.Context, id int64) (*model.ApplicationRecord, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	rec, ok := s.lookup(id)
	if !ok {
		return nil, nil //nolint:nilnil // absence is not an error for lookups
	}
	return &rec, nil
}

func (s *memorySession) Add(ctx context.Context, rec model.ApplicationRecord) (*model.ApplicationRecord, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	rec.ID = s.store.allocateID()
	rec.ApplicationDate = rec.ApplicationDate.UTC()
	staged := rec
	s.writes[rec.ID] = &staged
	return &rec, nil
}

func (s *memorySession) Update(ctx context.Context, rec model.ApplicationRecord) (*model.ApplicationRecord, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	if _, ok := s.lookup(rec.ID); !ok {
		return nil, core.ErrRecordNotFound
	}
	rec.ApplicationDate = rec.ApplicationDate.UTC()
	staged := rec
	s.writes[rec.ID] = &staged
	return &rec, nil
}

func (s *memorySession) Remove(ctx context.Context, id int64) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	if _, ok := s.lookup(id); !ok {
		return core.ErrRecordNotFound
	}
	s.writes[id] = nil
	return nil
}

func (s *memorySession) Commit(ctx context.Context) error {
	if err := s.check(ctx); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for id, staged := range s.writes {
		if staged == nil {
			delete(s.store.rows, id)
			continue
		}
		s.store.rows[id] = *staged
	}
	s.writes = nil
	s.done = true
	return nil
}

func (s *memorySession) Close() error {
	s.writes = nil
	s.done = true
	return nil
}
