// Package ratelimit provides a Redis-backed fiber.Storage so the limiter
// middleware survives restarts and can be shared across replicas. When no
// Redis URL is configured the middleware falls back to its in-memory
// store, which is explicitly best effort.
package ratelimit

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage parses a redis:// URL and pings the server so a
// misconfigured address fails at startup instead of on the first request.
func NewRedisStorage(redisURL string, prefix string) (*RedisStorage, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if prefix == "" {
		prefix = "ratelimit:"
	}
	return &RedisStorage{client: client, prefix: prefix}, nil
}

func (storage *RedisStorage) Get(key string) ([]byte, error) {
	value, err := storage.client.Get(context.Background(), storage.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return value, err
}

func (storage *RedisStorage) Set(key string, value []byte, expiration time.Duration) error {
	return storage.client.Set(context.Background(), storage.prefix+key, value, expiration).Err()
}

func (storage *RedisStorage) Delete(key string) error {
	return storage.client.Del(context.Background(), storage.prefix+key).Err()
}

func (storage *RedisStorage) Reset() error {
	ctx := context.Background()
	iter := storage.client.Scan(ctx, 0, storage.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := storage.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (storage *RedisStorage) Close() error {
	return storage.client.Close()
}
