package kv

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"time"
)

type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedis wraps a connected client, timeout bounds every single operation
func NewRedis(client *redis.Client, timeout time.Duration) *Redis {
	return &Redis{client: client, timeout: timeout}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	tcCtx, tcCancel := context.WithTimeout(ctx, r.timeout)
	defer tcCancel()
	get, err := r.client.Get(tcCtx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s from redis: %w", key, err)
	}
	return get, nil
}

// Set stores the value without expiration, the collection must outlive any session
func (r *Redis) Set(ctx context.Context, key, value string) error {
	tcCtx, tcCancel := context.WithTimeout(ctx, r.timeout)
	defer tcCancel()
	if err := r.client.Set(tcCtx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set %s into redis: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	tcCtx, tcCancel := context.WithTimeout(ctx, r.timeout)
	defer tcCancel()
	if err := r.client.Del(tcCtx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from redis: %w", key, err)
	}
	return nil
}
