package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "sop:job:"
	redisIndexKey  = "sop:jobs"

	// jobs are transient, keep them around a day for late polling clients
	redisJobTTL = 24 * time.Hour
)

var _ Store = (*RedisStore)(nil)

// RedisStore persists jobs as JSON values so multiple instances can share
// job state. Terminal-state protection is read-then-write, not transactional,
// which is fine while a job is owned by a single dispatcher.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

func (s *RedisStore) Create(ctx context.Context, job *Job) error {
	if err := s.set(ctx, job); err != nil {
		return err
	}

	return s.client.SAdd(ctx, redisIndexKey, job.ID).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Job, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}

	var job Job

	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", id, err)
	}

	return &job, nil
}

func (s *RedisStore) List(ctx context.Context) ([]*Job, error) {
	ids, err := s.client.SMembers(ctx, redisIndexKey).Result()

	if err != nil {
		return nil, err
	}

	result := make([]*Job, 0, len(ids))

	for _, id := range ids {
		job, err := s.Get(ctx, id)

		if errors.Is(err, ErrNotFound) {
			// expired job, drop the stale index entry
			s.client.SRem(ctx, redisIndexKey, id)
			continue
		}

		if err != nil {
			return nil, err
		}

		result = append(result, job)
	}

	return result, nil
}

func (s *RedisStore) Update(ctx context.Context, job *Job) error {
	current, err := s.Get(ctx, job.ID)

	if err != nil {
		return err
	}

	if current.Status.Terminal() {
		return ErrFinished
	}

	return s.set(ctx, job)
}

func (s *RedisStore) Cancel(ctx context.Context, id string) (*Job, error) {
	job, err := s.Get(ctx, id)

	if err != nil {
		return nil, err
	}

	if job.Status.Terminal() {
		return nil, ErrFinished
	}

	job.Status = StatusCancelled
	job.CurrentStep = "Generation cancelled by user"

	if err := s.set(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

func (s *RedisStore) set(ctx context.Context, job *Job) error {
	job.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(job)

	if err != nil {
		return fmt.Errorf("encode job %s: %w", job.ID, err)
	}

	return s.client.Set(ctx, redisKeyPrefix+job.ID, data, redisJobTTL).Err()
}
