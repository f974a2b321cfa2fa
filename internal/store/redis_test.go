package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sono-report-server/internal/domain"
)

// getTestRedisStore returns a store on a real Redis instance.
// Skip test if TEST_REDIS_URL is not set.
func getTestRedisStore(t *testing.T) *RedisStore {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set, skipping Redis tests")
	}

	ctx := context.Background()
	s, err := NewRedisStore(ctx, redisURL, "sonoreport:reports:test")
	require.NoError(t, err)

	require.NoError(t, s.client.Del(ctx, s.key).Err())
	t.Cleanup(func() {
		s.client.Del(context.Background(), s.key)
		s.Close()
	})

	return s
}

func TestNewRedisStore_InvalidURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "not-a-url", "")
	assert.Error(t, err)
}

func TestRedisStore_EmptyCollection(t *testing.T) {
	s := getTestRedisStore(t)
	ctx := context.Background()

	reports, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_PutListDelete(t *testing.T) {
	s := getTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, testReport("id-1", "First")))
	require.NoError(t, s.Put(ctx, testReport("id-2", "Second")))

	reports, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "id-2", reports[0].ID)
	assert.Equal(t, "id-1", reports[1].ID)

	// In-place update keeps the slot.
	require.NoError(t, s.Put(ctx, testReport("id-1", "First Revised")))
	reports, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "First Revised", reports[1].Patient.Name)

	require.NoError(t, s.Delete(ctx, "id-2"))
	assert.ErrorIs(t, s.Delete(ctx, "id-2"), domain.ErrNotFound)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
