package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KeyValue on top of Redis string keys, for deployments
// where the engine runs behind a shared backend. Keys are namespaced so
// unrelated data in the same database cannot collide.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	// Namespace is prepended to every key, e.g. "promptnovax".
	Namespace string
}

// NewRedisKV connects to Redis and verifies the connection.
func NewRedisKV(cfg RedisConfig) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.Namespace
	if prefix == "" {
		prefix = "promptnovax"
	}

	return &RedisKV{client: client, prefix: prefix}, nil
}

// NewRedisKVFromClient wraps an existing client; used by tests.
func NewRedisKVFromClient(client *redis.Client, namespace string) *RedisKV {
	if namespace == "" {
		namespace = "promptnovax"
	}
	return &RedisKV{client: client, prefix: namespace}
}

// Get retrieves the value for a key.
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.namespaced(key)).Result()
	if err == redis.Nil {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get from Redis: %w", err)
	}
	return value, nil
}

// Set writes the value for a key. Values have no expiry; the credential
// store owns deletion.
func (s *RedisKV) Set(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.namespaced(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisKV) Close() error {
	return s.client.Close()
}

func (s *RedisKV) namespaced(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}
