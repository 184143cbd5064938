package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
	"github.com/nextlevelsbs/sopbuilder/pkg/provider"
)

// Selector resolves a provider by name, for requests that pin a specific
// provider instead of the automatic fallback chain.
type Selector interface {
	Select(name string) (provider.Completer, error)
}

// Dispatcher runs generation jobs in the background. Concurrency is bounded
// by a weighted semaphore; each job gets its own cancellable context so a
// cancel request stops in-flight LLM calls.
type Dispatcher struct {
	store     Store
	generator *generator.Generator

	selector Selector

	sem *semaphore.Weighted
	wg  sync.WaitGroup

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

type DispatcherOption func(*Dispatcher)

func WithSelector(selector Selector) DispatcherOption {
	return func(d *Dispatcher) {
		d.selector = selector
	}
}

func WithWorkers(val int64) DispatcherOption {
	return func(d *Dispatcher) {
		d.sem = semaphore.NewWeighted(val)
	}
}

func NewDispatcher(store Store, g *generator.Generator, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		store:     store,
		generator: g,

		sem: semaphore.NewWeighted(4),

		cancels: map[string]context.CancelFunc{},
	}

	for _, option := range options {
		option(d)
	}

	return d
}

// Submit queues a generation and returns the pending job. An unknown
// provider name fails immediately so the caller can reject the request.
func (d *Dispatcher) Submit(ctx context.Context, req generator.Request, providerName string) (*Job, error) {
	g := d.generator

	if providerName != "" && providerName != "automatic" {
		if d.selector == nil {
			return nil, fmt.Errorf("unknown provider %q", providerName)
		}

		completer, err := d.selector.Select(providerName)

		if err != nil {
			return nil, err
		}

		g = g.WithCompleter(completer)
	}

	now := time.Now().UTC()

	job := &Job{
		ID: uuid.NewString(),

		Status: StatusPending,

		CurrentStep: "Queued for generation...",

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := d.store.Create(ctx, job); err != nil {
		return nil, err
	}

	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	d.mu.Lock()
	d.cancels[job.ID] = cancel
	d.mu.Unlock()

	d.wg.Add(1)

	go d.run(jobCtx, job.ID, g, req, providerName)

	return job, nil
}

// Cancel moves a job to cancelled and stops its work. Terminal jobs return
// ErrFinished.
func (d *Dispatcher) Cancel(ctx context.Context, id string) (*Job, error) {
	job, err := d.store.Cancel(ctx, id)

	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	cancel := d.cancels[id]
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	return job, nil
}

// Wait blocks until running jobs finish or the context expires
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil

	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run(ctx context.Context, id string, g *generator.Generator, req generator.Request, providerName string) {
	defer d.wg.Done()

	defer func() {
		d.mu.Lock()
		delete(d.cancels, id)
		d.mu.Unlock()
	}()

	if err := d.sem.Acquire(ctx, 1); err != nil {
		d.fail(ctx, id, err)
		return
	}

	defer d.sem.Release(1)

	d.checkpoint(ctx, id, 10, "Initializing generation...")
	d.checkpoint(ctx, id, 30, "Generating content with AI...")

	result, err := g.Generate(ctx, req)

	if err != nil {
		d.fail(ctx, id, err)
		return
	}

	d.checkpoint(ctx, id, 70, "Applying customizations...")
	d.checkpoint(ctx, id, 90, "Finalizing document...")

	if providerName == "" {
		providerName = "automatic"
	}

	d.update(ctx, id, func(job *Job) {
		job.Status = StatusCompleted
		job.Progress = 100
		job.CurrentStep = "Generation complete!"

		job.Result = &Result{
			TemplateData: result,

			Metadata: ResultMetadata{
				TemplateID:  req.TemplateID,
				CompanyName: req.CompanyName,

				GeneratedAt: time.Now().UTC(),

				Provider: providerName,
			},
		}
	})
}

func (d *Dispatcher) fail(ctx context.Context, id string, err error) {
	if ctx.Err() != nil {
		// cancelled via Cancel, the store already holds the terminal state
		return
	}

	slog.ErrorContext(ctx, "generation failed", "job", id, "error", err)

	d.update(ctx, id, func(job *Job) {
		job.Status = StatusFailed
		job.Error = err.Error()
		job.CurrentStep = "Generation failed: " + err.Error()
	})
}

func (d *Dispatcher) checkpoint(ctx context.Context, id string, progress int, step string) {
	d.update(ctx, id, func(job *Job) {
		job.Status = StatusProcessing
		job.Progress = progress
		job.CurrentStep = step
	})
}

// update applies a mutation to the stored job. A job that turned terminal in
// the meantime stays untouched.
func (d *Dispatcher) update(ctx context.Context, id string, apply func(*Job)) {
	// store writes survive job cancellation
	ctx = context.WithoutCancel(ctx)

	job, err := d.store.Get(ctx, id)

	if err != nil {
		return
	}

	apply(job)

	if err := d.store.Update(ctx, job); err != nil && !errors.Is(err, ErrFinished) {
		slog.ErrorContext(ctx, "job update failed", "job", id, "error", err)
	}
}
