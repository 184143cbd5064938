package job

import (
	"context"
	"sort"
	"sync"
	"time"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps jobs in a map. State is lost on restart, which matches
// the poll-until-done lifetime of a generation job.
type MemoryStore struct {
	mu sync.RWMutex

	jobs map[string]*Job
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: map[string]*Job{},
	}
}

func (s *MemoryStore) Create(ctx context.Context, job *Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *job
	s.jobs[job.ID] = &clone

	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]

	if !ok {
		return nil, ErrNotFound
	}

	clone := *job

	return &clone, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Job, 0, len(s.jobs))

	for _, job := range s.jobs {
		clone := *job
		result = append(result, &clone)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result, nil
}

func (s *MemoryStore) Update(ctx context.Context, job *Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.jobs[job.ID]

	if !ok {
		return ErrNotFound
	}

	if current.Status.Terminal() {
		return ErrFinished
	}

	clone := *job
	clone.UpdatedAt = time.Now().UTC()

	s.jobs[job.ID] = &clone

	return nil
}

func (s *MemoryStore) Cancel(ctx context.Context, id string) (*Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]

	if !ok {
		return nil, ErrNotFound
	}

	if job.Status.Terminal() {
		return nil, ErrFinished
	}

	job.Status = StatusCancelled
	job.CurrentStep = "Generation cancelled by user"
	job.UpdatedAt = time.Now().UTC()

	clone := *job

	return &clone, nil
}
