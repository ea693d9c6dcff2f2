package imagecache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration, maxBytes int) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "", ttl, maxBytes)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, time.Hour, 0)

	require.NoError(t, s.Ping(ctx))

	got, err := s.LoadImages(ctx)
	require.NoError(t, err)
	require.Empty(t, got)

	images := map[string]string{
		"PROJ-001": "data:image/png;base64,AAAA",
		"PROJ-007": "data:image/jpeg;base64,BBBB",
	}
	require.NoError(t, s.SaveImages(ctx, images))

	got, err = s.LoadImages(ctx)
	require.NoError(t, err)
	require.Equal(t, images, got)
	require.Equal(t, "data:image/png;base64,AAAA", mr.HGet(HashKey, "PROJ-001"))
	require.Equal(t, time.Hour, mr.TTL(HashKey))
}

func TestRedisStore_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, 0, 0)

	require.NoError(t, s.SaveImages(ctx, map[string]string{"PROJ-001": "data:a", "PROJ-002": "data:b"}))
	require.NoError(t, s.SaveImages(ctx, map[string]string{"PROJ-002": "data:c"}))

	got, err := s.LoadImages(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"PROJ-002": "data:c"}, got)
	require.Zero(t, mr.TTL(HashKey), "no ttl configured")

	require.NoError(t, s.SaveImages(ctx, map[string]string{}))
	require.False(t, mr.Exists(HashKey))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, time.Minute, 0)

	require.NoError(t, s.SaveImages(ctx, map[string]string{"PROJ-001": "data:a"}))
	mr.FastForward(2 * time.Minute)

	got, err := s.LoadImages(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRedisStore_SizeLimit(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, 0, 8)

	err := s.SaveImages(ctx, map[string]string{"PROJ-001": "data:" + strings.Repeat("A", 16)})
	require.ErrorIs(t, err, ErrImageTooLarge)
}

func TestRedisStore_Clear(t *testing.T) {
	ctx := context.Background()
	s, mr := newTestStore(t, 0, 0)

	require.NoError(t, s.SaveImages(ctx, map[string]string{"PROJ-001": "data:a"}))
	require.NoError(t, s.ClearImages(ctx))
	require.False(t, mr.Exists(HashKey))

	// Clearing twice is fine
	require.NoError(t, s.ClearImages(ctx))
}

func TestRedisStore_Unreachable(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	s := NewRedisStore(mr.Addr(), "", 0, 0)
	t.Cleanup(func() { _ = s.Close() })
	mr.Close()

	require.Error(t, s.Ping(ctx))
	_, err := s.LoadImages(ctx)
	require.Error(t, err)
}
