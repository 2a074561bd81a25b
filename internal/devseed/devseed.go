// Package devseed inserts sample job applications for local development.
package devseed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/target/jobtracker-api/internal/core"
	"github.com/target/jobtracker-api/internal/domain/model"
	"github.com/target/jobtracker-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	Applications *service.ApplicationService
	Sessions     core.ApplicationStoreFactory
}

// Options tunes a seeding run.
type Options struct {
	// Force seeds even when the store already holds applications.
	Force bool
	// Now anchors the sample application dates; defaults to time.Now.
	Now func() time.Time
}

type sample struct {
	title   string
	company string
	daysAgo int
	status  model.ApplicationStatus
	notes   string
}

//nolint:gochecknoglobals // static read-only sample data
var samples = []sample{
	{"Backend Engineer", "Acme Corp", 30, model.StatusRejected, "Rejected after the take-home exercise."},
	{"Platform Engineer", "Globex", 21, model.StatusInterviewed, "Second round scheduled with the infra team."},
	{"Site Reliability Engineer", "Initech", 14, model.StatusOffered, "Offer received; reviewing benefits."},
	{"Go Developer", "Umbrella", 7, model.StatusApplied, ""},
	{"Staff Engineer", "Hooli", 3, model.StatusWithdrawn, "Withdrew after relocation requirement."},
}

// Run seeds sample applications and returns how many were created. Seeding is
// skipped when applications already exist unless opts.Force is set.
func Run(ctx context.Context, svcs Services, logger *slog.Logger, opts Options) (int, error) {
	if svcs.Applications == nil || svcs.Sessions == nil {
		return 0, errors.New("devseed: application service and sessions are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	if !opts.Force {
		existing, err := countExisting(ctx, svcs)
		if err != nil {
			return 0, err
		}
		if existing > 0 {
			logger.InfoContext(ctx, "skipping seed; applications already present", "count", existing)
			return 0, nil
		}
	}

	base := now().UTC().Truncate(24 * time.Hour)
	created := 0
	for _, s := range samples {
		app := &model.Application{
			JobTitle:        s.title,
			CompanyName:     s.company,
			ApplicationDate: base.AddDate(0, 0, -s.daysAgo),
			Status:          s.status,
			Notes:           s.notes,
		}
		stored, err := addOne(ctx, svcs, app)
		if err != nil {
			return created, fmt.Errorf("seed %s at %s: %w", s.title, s.company, err)
		}
		created++
		logger.DebugContext(ctx, "seeded application", "id", stored.ID, "company", stored.CompanyName)
	}

	logger.InfoContext(ctx, "seeded applications", "count", created)
	return created, nil
}

func countExisting(ctx context.Context, svcs Services) (int, error) {
	sess, err := svcs.Sessions.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin session: %w", err)
	}
	defer func() { _ = sess.Close() }()

	apps, err := svcs.Applications.List(ctx, sess)
	if err != nil {
		return 0, err
	}
	return len(apps), nil
}

// addOne runs each insert in its own session so a failure leaves earlier rows committed.
func addOne(ctx context.Context, svcs Services, app *model.Application) (*model.Application, error) {
	sess, err := svcs.Sessions.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin session: %w", err)
	}
	defer func() { _ = sess.Close() }()
	return svcs.Applications.Add(ctx, sess, app)
}
