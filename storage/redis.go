package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTimeout = 5 * time.Second

// Redis adapts a Redis client to the Store interface for deployments that
// want the dashboard state to survive the process. It is a durable backend
// only: writes are not fanned out to other processes.
type Redis struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedis creates a Redis-backed store using the provided client.
func NewRedis(client *redis.Client, timeout time.Duration) *Redis {
	if client == nil {
		panic("storage.NewRedis: client is nil")
	}
	if timeout <= 0 {
		timeout = defaultRedisTimeout
	}
	return &Redis{client: client, timeout: timeout}
}

func (r *Redis) Get(key string) ([]byte, bool, error) {
	ctx, cancel := r.ctx()
	defer cancel()
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *Redis) Set(key string, value []byte) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) Delete(key string) error {
	ctx, cancel := r.ctx()
	defer cancel()
	return r.client.Del(ctx, key).Err()
}

func (r *Redis) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}
