package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/domain/model"
	apperrors "github.com/target/jobtracker-api/internal/errors"
	"github.com/target/jobtracker-api/internal/mapper"
	"github.com/target/jobtracker-api/internal/observability/metrics"
)

var (
	// ErrNullInput is returned by Add and Update when no application is supplied.
	ErrNullInput = errors.New("application cannot be null")
	// ErrInvalidID is returned by Delete for ids that storage can never assign.
	ErrInvalidID = errors.New("invalid application id")
)

// Operation names used for logging and metrics.
const (
	opList   = "list"
	opGet    = "get"
	opAdd    = "add"
	opUpdate = "update"
	opDelete = "delete"
)

// operationRecorder is satisfied by *metrics.Registry.
type operationRecorder interface {
	ObserveApplicationOperation(in metrics.ApplicationOperation)
}

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Logger  *slog.Logger      // Optional: structured logger
	Metrics operationRecorder // Optional: outcome recorder
}

// ApplicationService implements application CRUD over a caller-owned store session.
// The service never opens or closes sessions; it commits after each successful write.
type ApplicationService struct {
	logger  *slog.Logger
	metrics operationRecorder
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		logger:  logger.With("component", "application_service"),
		metrics: opts.Metrics,
	}
}

// List returns every application in store order (id ascending).
func (s *ApplicationService) List(ctx context.Context, store core.ApplicationStore) (apps []model.Application, err error) {
	defer s.observe(opList, time.Now(), &err)

	recs, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return mapper.RecordsToDomain(recs), nil
}

// GetByID returns the application with the given id, or nil when none exists.
// Non-positive ids short-circuit without touching the store.
func (s *ApplicationService) GetByID(ctx context.Context, store core.ApplicationStore, id int64) (app *model.Application, err error) {
	if id <= 0 {
		return nil, nil //nolint:nilnil // absent by definition
	}
	defer s.observe(opGet, time.Now(), &err)

	rec, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application %d: %w", id, err)
	}
	if rec == nil {
		return nil, nil //nolint:nilnil // absence is not an error for lookups
	}
	found := mapper.RecordToDomain(*rec)
	return &found, nil
}

// Add inserts app, commits, and returns the stored application with its assigned id.
func (s *ApplicationService) Add(ctx context.Context, store core.ApplicationStore, app *model.Application) (out *model.Application, err error) {
	if app == nil {
		return nil, ErrNullInput
	}
	defer s.observe(opAdd, time.Now(), &err)

	rec, err := store.Add(ctx, mapper.DomainToRecord(*app))
	if err != nil {
		return nil, fmt.Errorf("add application: %w", err)
	}
	if err := store.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit add application: %w", err)
	}

	stored := mapper.RecordToDomain(*rec)
	s.logger.InfoContext(ctx, "application created", "id", stored.ID, "company", stored.CompanyName)
	return &stored, nil
}

// Update overwrites every non-id field of the application identified by app.ID.
func (s *ApplicationService) Update(ctx context.Context, store core.ApplicationStore, app *model.Application) (out *model.Application, err error) {
	if app == nil {
		return nil, ErrNullInput
	}
	defer s.observe(opUpdate, time.Now(), &err)

	existing, err := store.FindByID(ctx, app.ID)
	if err != nil {
		return nil, fmt.Errorf("find application %d: %w", app.ID, err)
	}
	if existing == nil {
		return nil, notFound(app.ID)
	}

	rec, err := store.Update(ctx, mapper.DomainToRecord(*app))
	if errors.Is(err, core.ErrRecordNotFound) {
		return nil, notFound(app.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("update application %d: %w", app.ID, err)
	}
	if err := store.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update application %d: %w", app.ID, err)
	}

	updated := mapper.RecordToDomain(*rec)
	s.logger.InfoContext(ctx, "application updated", "id", updated.ID, "status", updated.Status.String())
	return &updated, nil
}

// Delete permanently removes the application with the given id.
func (s *ApplicationService) Delete(ctx context.Context, store core.ApplicationStore, id int64) (err error) {
	if id <= 0 {
		return ErrInvalidID
	}
	defer s.observe(opDelete, time.Now(), &err)

	existing, err := store.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find application %d: %w", id, err)
	}
	if existing == nil {
		return notFound(id)
	}

	if err := store.Remove(ctx, id); err != nil {
		if errors.Is(err, core.ErrRecordNotFound) {
			return notFound(id)
		}
		return fmt.Errorf("delete application %d: %w", id, err)
	}
	if err := store.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete application %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "application deleted", "id", id)
	return nil
}

func notFound(id int64) error {
	return apperrors.NotFoundf("Application with ID %d not found.", id)
}

func (s *ApplicationService) observe(op string, start time.Time, errp *error) {
	if s.metrics == nil {
		return
	}
	var err error
	if errp != nil {
		err = *errp
	}
	result := metrics.ResultSuccess
	switch {
	case err == nil:
	case apperrors.IsNotFound(err):
		result = metrics.ResultNotFound
	case apperrors.IsValidation(err):
		result = metrics.ResultInvalid
	default:
		result = metrics.ResultError
	}
	s.metrics.ObserveApplicationOperation(metrics.ApplicationOperation{
		Operation: op,
		Result:    result,
		Duration:  time.Since(start),
		Err:       err,
	})
}
