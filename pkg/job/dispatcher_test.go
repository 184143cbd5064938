package job

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nextlevelsbs/sopbuilder/pkg/compliance"
	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
)

type blockingCompleter struct {
	started chan struct{}
	once    sync.Once
}

func (b *blockingCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	b.once.Do(func() {
		close(b.started)
	})

	<-ctx.Done()

	return nil, ctx.Err()
}

func TestDispatcherCompletes(t *testing.T) {
	store := NewMemoryStore()

	// nil completer keeps the test deterministic and offline
	d := NewDispatcher(store, generator.New(nil, compliance.New()), WithWorkers(2))

	job, err := d.Submit(t.Context(), generator.Request{
		TemplateID:   "restaurant-opening",
		TemplateType: "restaurant",
		CompanyName:  "Acme Diner",
	}, "")
	require.NoError(t, err)
	require.Equal(t, StatusPending, job.Status)
	require.NotEmpty(t, job.ID)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	require.NoError(t, d.Wait(ctx))

	final, err := store.Get(t.Context(), job.ID)
	require.NoError(t, err)

	require.Equal(t, StatusCompleted, final.Status)
	require.Equal(t, 100, final.Progress)
	require.Equal(t, "Generation complete!", final.CurrentStep)

	require.NotNil(t, final.Result)
	require.Equal(t, "restaurant-opening", final.Result.Metadata.TemplateID)
	require.Equal(t, "automatic", final.Result.Metadata.Provider)
	require.Len(t, final.Result.TemplateData.Sections, 4)
}

func TestDispatcherCancel(t *testing.T) {
	store := NewMemoryStore()

	completer := &blockingCompleter{started: make(chan struct{})}
	d := NewDispatcher(store, generator.New(completer, compliance.New()))

	job, err := d.Submit(t.Context(), generator.Request{TemplateType: "restaurant"}, "")
	require.NoError(t, err)

	select {
	case <-completer.started:
	case <-time.After(10 * time.Second):
		t.Fatal("generation never started")
	}

	cancelled, err := d.Cancel(t.Context(), job.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, cancelled.Status)

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
	defer cancel()

	require.NoError(t, d.Wait(ctx))

	final, err := store.Get(t.Context(), job.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, final.Status)
	require.Empty(t, final.Error)

	// cancelling again reports the job as finished
	_, err = d.Cancel(t.Context(), job.ID)
	require.ErrorIs(t, err, ErrFinished)
}

func TestDispatcherUnknownProvider(t *testing.T) {
	d := NewDispatcher(NewMemoryStore(), generator.New(nil, compliance.New()))

	_, err := d.Submit(t.Context(), generator.Request{TemplateType: "restaurant"}, "groq")
	require.Error(t, err)

	jobs, listErr := NewMemoryStore().List(t.Context())
	require.NoError(t, listErr)
	require.Empty(t, jobs)
}
