// Package imagecache keeps inline project images in Redis, outside the
// project snapshot.
package imagecache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HashKey is the Redis hash holding every image, field = project id
const HashKey = "mergeflow_images"

const opTimeout = 3 * time.Second

// ErrImageTooLarge indicates a payload exceeds the per-image limit
var ErrImageTooLarge = errors.New("image exceeds size limit")

// RedisStore keeps image payloads in a Redis hash with TTL.
type RedisStore struct {
	client   *redis.Client
	ttl      time.Duration
	maxBytes int
}

// NewRedisStore builds a Redis-backed image store. ttl <= 0 keeps images
// until replaced; maxBytes <= 0 disables the size limit.
func NewRedisStore(addr, password string, ttl time.Duration, maxBytes int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl:      ttl,
		maxBytes: maxBytes,
	}
}

// Ping checks the server is reachable.
func (s *RedisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// LoadImages returns every payload keyed by project id.
func (s *RedisStore) LoadImages(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	images, err := s.client.HGetAll(ctx, HashKey).Result()
	if err == redis.Nil {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading images: %w", err)
	}
	return images, nil
}

// SaveImages replaces the hash with images and refreshes its TTL.
func (s *RedisStore) SaveImages(ctx context.Context, images map[string]string) error {
	values := make(map[string]interface{}, len(images))
	for id, data := range images {
		if s.maxBytes > 0 && len(data) > s.maxBytes {
			return fmt.Errorf("%w: image for %s is %d bytes, limit %d", ErrImageTooLarge, id, len(data), s.maxBytes)
		}
		values[id] = data
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, HashKey)
		if len(values) == 0 {
			return nil
		}
		pipe.HSet(ctx, HashKey, values)
		if s.ttl > 0 {
			pipe.Expire(ctx, HashKey, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing images: %w", err)
	}
	return nil
}

// ClearImages removes every payload.
func (s *RedisStore) ClearImages(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.client.Del(ctx, HashKey).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("clearing images: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
