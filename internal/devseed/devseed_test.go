package devseed

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/jobtracker-api/internal/data"
	"github.com/target/jobtracker-api/internal/service"
)

func TestRun_SeedsOnceUnlessForced(t *testing.T) {
	store := data.NewMemoryApplicationStore()
	svcs := Services{
		Applications: service.NewApplicationService(service.ApplicationServiceOptions{}),
		Sessions:     store,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fixed := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)
	opts := Options{Now: func() time.Time { return fixed }}
	ctx := context.Background()

	n, err := Run(ctx, svcs, logger, opts)
	require.NoError(t, err)
	assert.Equal(t, len(samples), n)
	assert.Equal(t, len(samples), store.Len())

	n, err = Run(ctx, svcs, logger, opts)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, len(samples), store.Len())

	opts.Force = true
	n, err = Run(ctx, svcs, logger, opts)
	require.NoError(t, err)
	assert.Equal(t, len(samples), n)
	assert.Equal(t, 2*len(samples), store.Len())

	sess, err := store.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = sess.Close() }()
	recs, err := sess.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), recs[0].ApplicationDate)
}

func TestRun_RequiresDependencies(t *testing.T) {
	_, err := Run(context.Background(), Services{}, nil, Options{})
	require.Error(t, err)
}
