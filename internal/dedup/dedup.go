// Package dedup suppresses repeated signals within a short window.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=./mock/dedup.go -package=mock -source=dedup.go

const keyPrefix = "kudos:dedup:"

// Store ...
type Store interface {
	// PutNX returns true if key was not set during the last ttl.
	PutNX(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release removes key so the next PutNX succeeds.
	Release(ctx context.Context, key string) error
}

type redisStore struct {
	r redis.Cmdable
}

// NewRedis creates redis-backed store.
func NewRedis(r redis.Cmdable) Store {
	return redisStore{r: r}
}

func (s redisStore) PutNX(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.r.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to setnx: %w", err)
	}

	return ok, nil
}

func (s redisStore) Release(ctx context.Context, key string) error {
	if err := s.r.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to del: %w", err)
	}

	return nil
}
