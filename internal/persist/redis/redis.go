// Package redis stores the collection blob under a fixed Redis key.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	client *redis.Client
	key    string
}

// Open connects to Redis and verifies the connection. key is the fixed name
// the blob is stored under.
func Open(ctx context.Context, addr, password string, db int, key string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{client: client, key: key}, nil
}

// NewFromClient wraps an existing client; used with redismock in tests.
func NewFromClient(client *redis.Client, key string) *Store {
	return &Store{client: client, key: key}
}

func (s *Store) Save(ctx context.Context, payload []byte) error {
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("save collection blob: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection blob: %w", err)
	}
	return payload, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
