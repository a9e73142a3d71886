package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucidworks/gridbuilder/pkg/errors"
	"github.com/lucidworks/gridbuilder/pkg/grid"
	"github.com/lucidworks/gridbuilder/pkg/observability"
)

// canvasKeyPrefix namespaces canvas documents in Redis.
const canvasKeyPrefix = "gridbuilder:canvas:"

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string

	// Password is the Redis password (empty for no auth).
	Password string

	// DB is the Redis database number.
	DB int

	// TTL is the canvas document expiry. Zero means no expiry.
	TTL time.Duration
}

// RedisStore is a Redis-backed canvas store for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed canvas store and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client, ttl: cfg.TTL}, nil
}

func canvasKey(canvasID string) string {
	return canvasKeyPrefix + canvasID
}

func (s *RedisStore) Get(ctx context.Context, canvasID string) (*grid.Canvas, error) {
	data, err := s.client.Get(ctx, canvasKey(canvasID)).Bytes()
	if err == redis.Nil {
		observability.Store().OnStoreGet(ctx, "redis", canvasID, false)
		return nil, nil
	}
	if err != nil {
		observability.Store().OnStoreError(ctx, "redis", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "get canvas %q", canvasID)
	}

	var c grid.Canvas
	if err := json.Unmarshal(data, &c); err != nil {
		observability.Store().OnStoreError(ctx, "redis", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse canvas %q", canvasID)
	}
	observability.Store().OnStoreGet(ctx, "redis", canvasID, true)
	return &c, nil
}

func (s *RedisStore) Put(ctx context.Context, canvas *grid.Canvas) error {
	data, err := json.Marshal(canvas)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal canvas %q", canvas.ID)
	}
	if err := s.client.Set(ctx, canvasKey(canvas.ID), data, s.ttl).Err(); err != nil {
		observability.Store().OnStoreError(ctx, "redis", "put", err)
		return errors.Wrap(errors.ErrCodeStore, err, "store canvas %q", canvas.ID)
	}
	observability.Store().OnStorePut(ctx, "redis", canvas.ID)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, canvasID string) error {
	if err := s.client.Del(ctx, canvasKey(canvasID)).Err(); err != nil {
		observability.Store().OnStoreError(ctx, "redis", "delete", err)
		return errors.Wrap(errors.ErrCodeStore, err, "delete canvas %q", canvasID)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, canvasKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), canvasKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		observability.Store().OnStoreError(ctx, "redis", "list", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "scan canvas keys")
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
