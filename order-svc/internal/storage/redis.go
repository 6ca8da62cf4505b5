package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sequenceTTL            = 48 * time.Hour
	DefaultSubmissionTTL   = 24 * time.Hour
	submissionKeyNamespace = "orders:submission:"
)

// RedisStore issues daily order references and remembers submissions.
type RedisStore struct {
	Client        *redis.Client
	Prefix        string
	SubmissionTTL time.Duration
}

func NewRedisStore(client *redis.Client, prefix string, submissionTTL time.Duration) *RedisStore {
	if submissionTTL <= 0 {
		submissionTTL = DefaultSubmissionTTL
	}
	return &RedisStore{Client: client, Prefix: prefix, SubmissionTTL: submissionTTL}
}

func (s *RedisStore) SequenceKey(day time.Time) string {
	return "orders:seq:" + day.Format("060102")
}

// NextOrderRef returns PREFIX-YYMMDD-NNN where NNN counts orders of that day.
func (s *RedisStore) NextOrderRef(ctx context.Context, day time.Time) (string, error) {
	key := s.SequenceKey(day)
	n, err := s.Client.Incr(ctx, key).Result()
	if err != nil {
		return "", err
	}
	if n == 1 {
		s.Client.Expire(ctx, key, sequenceTTL)
	}
	return fmt.Sprintf("%s-%s-%03d", s.Prefix, day.Format("060102"), n), nil
}

func (s *RedisStore) Lookup(ctx context.Context, submissionID string) (string, error) {
	ref, err := s.Client.Get(ctx, submissionKeyNamespace+submissionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return ref, err
}

func (s *RedisStore) Remember(ctx context.Context, submissionID, orderRef string) error {
	return s.Client.Set(ctx, submissionKeyNamespace+submissionID, orderRef, s.SubmissionTTL).Err()
}
