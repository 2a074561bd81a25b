package data

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/jobtracker-api/internal/testutil"
)

func TestMemoryApplicationStore_CRUD(t *testing.T) {
	exerciseStore(t, NewMemoryApplicationStore())
}

func TestMemoryApplicationStore_RollbackOnClose(t *testing.T) {
	exerciseRollback(t, NewMemoryApplicationStore())
}

func TestMemoryApplicationStore_IsolatesUncommittedWrites(t *testing.T) {
	store := NewMemoryApplicationStore()
	ctx := context.Background()

	writer, err := store.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = writer.Close() }()
	added, err := writer.Add(ctx, testutil.NewApplication().Record())
	require.NoError(t, err)

	reader, err := store.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()
	got, err := reader.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.Len())

	require.NoError(t, writer.Commit(ctx))
	assert.Equal(t, 1, store.Len())
	got, err = reader.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryApplicationStore_IDsNotReusedAfterRollback(t *testing.T) {
	store := NewMemoryApplicationStore()
	ctx := context.Background()

	sess, err := store.Begin(ctx)
	require.NoError(t, err)
	rolledBack, err := sess.Add(ctx, testutil.NewApplication().Record())
	require.NoError(t, err)
	require.NoError(t, sess.Close())

	sess, err = store.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = sess.Close() }()
	kept, err := sess.Add(ctx, testutil.NewApplication().Record())
	require.NoError(t, err)
	assert.Greater(t, kept.ID, rolledBack.ID)
}

func TestMemoryApplicationStore_CanceledContext(t *testing.T) {
	store := NewMemoryApplicationStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Begin(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemoryApplicationStore_ConcurrentCommits(t *testing.T) {
	store := NewMemoryApplicationStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess, err := store.Begin(ctx)
			if err != nil {
				return
			}
			defer func() { _ = sess.Close() }()
			if _, err := sess.Add(ctx, testutil.NewApplication().Record()); err != nil {
				return
			}
			_ = sess.Commit(ctx)
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, store.Len())
}
