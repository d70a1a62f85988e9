package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// RedisMedium stores values in Redis under a common key prefix.
type RedisMedium struct {
	client *redis.Client
	prefix string
}

// NewRedisMedium connects to redisURL (redis://host:port/db) and checks the
// connection before returning.
func NewRedisMedium(ctx context.Context, redisURL, prefix string) (*RedisMedium, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisMedium{client: client, prefix: prefix}, nil
}

func (m *RedisMedium) key(key string) string {
	return m.prefix + key
}

func (m *RedisMedium) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	value, err := m.client.Get(ctx, m.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (m *RedisMedium) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return m.client.Set(ctx, m.key(key), value, 0).Err() // TTL 0 = no expiration
}

func (m *RedisMedium) Remove(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	return m.client.Del(ctx, m.key(key)).Err()
}

// Ping checks the connection.
func (m *RedisMedium) Ping(ctx context.Context) error {
	return m.client.Ping(ctx).Err()
}

func (m *RedisMedium) Close() error {
	return m.client.Close()
}
