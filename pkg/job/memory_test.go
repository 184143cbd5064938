package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := t.Context()

	_, err := store.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	job := &Job{
		ID:     "a",
		Status: StatusPending,

		CreatedAt: time.Now().UTC(),
	}

	require.NoError(t, store.Create(ctx, job))

	loaded, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, StatusPending, loaded.Status)

	loaded.Status = StatusProcessing
	loaded.Progress = 30
	require.NoError(t, store.Update(ctx, loaded))

	loaded, err = store.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, StatusProcessing, loaded.Status)
	require.Equal(t, 30, loaded.Progress)
}

func TestMemoryStoreTerminalImmutable(t *testing.T) {
	store := NewMemoryStore()
	ctx := t.Context()

	job := &Job{ID: "a", Status: StatusPending}
	require.NoError(t, store.Create(ctx, job))

	job.Status = StatusCompleted
	job.Progress = 100
	require.NoError(t, store.Update(ctx, job))

	job.Status = StatusProcessing
	require.ErrorIs(t, store.Update(ctx, job), ErrFinished)

	loaded, err := store.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, loaded.Status)

	_, err = store.Cancel(ctx, "a")
	require.ErrorIs(t, err, ErrFinished)
}

func TestMemoryStoreCancel(t *testing.T) {
	store := NewMemoryStore()
	ctx := t.Context()

	_, err := store.Cancel(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Create(ctx, &Job{ID: "a", Status: StatusProcessing}))

	cancelled, err := store.Cancel(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, cancelled.Status)
	require.Equal(t, "Generation cancelled by user", cancelled.CurrentStep)
}

func TestMemoryStoreList(t *testing.T) {
	store := NewMemoryStore()
	ctx := t.Context()

	first := time.Now().UTC().Add(-time.Minute)

	require.NoError(t, store.Create(ctx, &Job{ID: "b", CreatedAt: first.Add(time.Second)}))
	require.NoError(t, store.Create(ctx, &Job{ID: "a", CreatedAt: first}))

	jobs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Equal(t, "a", jobs[0].ID)
	require.Equal(t, "b", jobs[1].ID)
}
