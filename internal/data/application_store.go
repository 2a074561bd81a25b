package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/data/database"
	"github.com/target/jobtracker-api/internal/domain/model"
	apperrors "github.com/target/jobtracker-api/internal/errors"
)

var _ core.ApplicationStoreFactory = (*ApplicationStore)(nil)

// ApplicationStore opens transactional application sessions over a *sql.DB.
// The same implementation serves PostgreSQL and SQLite; only the bind syntax differs.
type ApplicationStore struct {
	DB      *sql.DB
	dialect database.Dialect
	q       applicationQueries
}

// NewApplicationStore creates an ApplicationStore for the given dialect.
func NewApplicationStore(db *sql.DB, dialect database.Dialect) (*ApplicationStore, error) {
	if db == nil {
		return nil, ErrNilDB
	}
	if dialect.DriverName() == "" {
		return nil, fmt.Errorf("new application store: unsupported dialect %q", dialect)
	}
	return &ApplicationStore{DB: db, dialect: dialect, q: newApplicationQueries(dialect)}, nil
}

// Dialect reports the SQL dialect the store was built for.
func (s *ApplicationStore) Dialect() database.Dialect {
	return s.dialect
}

// Begin starts a transaction and wraps it in a session.
func (s *ApplicationStore) Begin(ctx context.Context) (core.ApplicationSession, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin application session: %w", apperrors.MapDBError(err))
	}
	return &sqlSession{tx: tx, q: s.q}, nil
}

// sqlSession is a core.ApplicationSession bound to a single *sql.Tx.
type sqlSession struct {
	tx   *sql.Tx
	q    applicationQueries
	done bool
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (model.ApplicationRecord, error) {
	var rec model.ApplicationRecord
	if err := row.Scan(
		&rec.ID,
		&rec.JobTitle,
		&rec.CompanyName,
		&rec.ApplicationDate,
		&rec.Status,
		&rec.Notes,
	); err != nil {
		return model.ApplicationRecord{}, err
	}
	rec.ApplicationDate = rec.ApplicationDate.UTC()
	return rec, nil
}

func (s *sqlSession) List(ctx context.Context) ([]model.ApplicationRecord, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	rows, err := s.tx.QueryContext(ctx, s.q.list)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", apperrors.MapDBError(err))
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.ApplicationRecord, 0)
	for rows.Next() {
		rec, scanErr := scanApplication(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan application: %w", scanErr)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", apperrors.MapDBError(err))
	}
	return out, nil
}

func (s *sqlSession) FindByID(ctx context.Context, id int64) (*model.ApplicationRecord, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	rec, err := scanApplication(s.tx.QueryRowContext(ctx, s.q.find, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // absence is not an error for lookups
	}
	if err != nil {
		return nil, fmt.Errorf("find application %d: %w", id, apperrors.MapDBError(err))
	}
	return &rec, nil
}

func (s *sqlSession) Add(ctx context.Context, rec model.ApplicationRecord) (*model.ApplicationRecord, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	rec.ApplicationDate = rec.ApplicationDate.UTC()
	var id int64
	if err := s.tx.QueryRowContext(ctx, s.q.insert,
		rec.JobTitle,
		rec.CompanyName,
		rec.ApplicationDate,
		rec.Status,
		rec.Notes,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert application: %w", apperrors.MapDBError(err))
	}
	rec.ID = id
	return &rec, nil
}

func (s *sqlSession) Update(ctx context.Context, rec model.ApplicationRecord) (*model.ApplicationRecord, error) {
	if s.done {
		return nil, ErrSessionClosed
	}
	rec.ApplicationDate = rec.ApplicationDate.UTC()
	res, err := s.tx.ExecContext(ctx, s.q.update,
		rec.JobTitle,
		rec.CompanyName,
		rec.ApplicationDate,
		rec.Status,
		rec.Notes,
		rec.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update application %d: %w", rec.ID, apperrors.MapDBError(err))
	}
	if err := requireAffected(res); err != nil {
		return nil, fmt.Errorf("update application %d: %w", rec.ID, err)
	}
	return &rec, nil
}

func (s *sqlSession) Remove(ctx context.Context, id int64) error {
	if s.done {
		return ErrSessionClosed
	}
	res, err := s.tx.ExecContext(ctx, s.q.remove, id)
	if err != nil {
		return fmt.Errorf("delete application %d: %w", id, apperrors.MapDBError(err))
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("delete application %d: %w", id, err)
	}
	return nil
}

func (s *sqlSession) Commit(_ context.Context) error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("commit application session: %w", apperrors.MapDBError(err))
	}
	return nil
}

// Close rolls back the transaction unless it was committed.
func (s *sqlSession) Close() error {
	if s.done {
		return nil
	}
	s.done = true
	if err := s.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback application session: %w", err)
	}
	return nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return core.ErrRecordNotFound
	}
	return nil
}
