// Package job tracks asynchronous SOP generation jobs. Jobs move through
// pending, processing, and a terminal state; terminal jobs never change
// again. Stores keep job state in memory or Redis, the dispatcher runs the
// generation work behind a bounded semaphore.
package job

import (
	"context"
	"errors"
	"time"

	"github.com/nextlevelsbs/sopbuilder/pkg/generator"
)

var (
	ErrNotFound = errors.New("job not found")
	ErrFinished = errors.New("job already finished")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	}

	return false
}

type Job struct {
	ID string `json:"generation_id"`

	Status Status `json:"status"`

	Progress    int    `json:"progress"`
	CurrentStep string `json:"current_step,omitempty"`

	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Result struct {
	TemplateData *generator.Result `json:"template_data"`

	Metadata ResultMetadata `json:"generation_metadata"`
}

type ResultMetadata struct {
	TemplateID  string `json:"template_id"`
	CompanyName string `json:"company_name"`

	GeneratedAt time.Time `json:"generated_at"`

	Provider string `json:"llm_provider"`
}

// Store persists job state. Update refuses to overwrite a job that already
// reached a terminal status, Cancel moves a non-terminal job to cancelled.
type Store interface {
	Create(ctx context.Context, job *Job) error
	Get(ctx context.Context, id string) (*Job, error)
	List(ctx context.Context) ([]*Job, error)
	Update(ctx context.Context, job *Job) error
	Cancel(ctx context.Context, id string) (*Job, error)
}
