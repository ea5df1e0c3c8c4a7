package sessionstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against the server in TEST_REDIS_URL, skipped when it is unset.
func newRedisTestStore(t *testing.T) *RedisStore {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	store, err := NewRedisStore(context.Background(), url)
	require.NoError(t, err)
	store.keyPrefix = "voucher:test:" + uuid.NewString() + ":"
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := newRedisTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, newTestSession("s1"), time.Minute))

	got, err := store.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "party-1", got.State.PartyID)
	assert.True(t, decimal.NewFromInt(100).Equal(got.State.Allocations["b1"]))

	ttl, err := store.client.TTL(ctx, store.key("s1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisStore_MissingAndDeleted(t *testing.T) {
	store := newRedisTestStore(t)
	ctx := context.Background()

	_, err := store.GetSession(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.SaveSession(ctx, newTestSession("s1"), time.Minute))
	require.NoError(t, store.DeleteSession(ctx, "s1"))

	_, err = store.GetSession(ctx, "s1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRedisStore_VersionConflict(t *testing.T) {
	store := newRedisTestStore(t)
	ctx := context.Background()

	first := newTestSession("s1")
	require.NoError(t, store.SaveSession(ctx, first, time.Minute))

	next := first
	next.Version = 2
	require.NoError(t, store.SaveSession(ctx, next, time.Minute))

	err := store.SaveSession(ctx, next, time.Minute)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	got, err := store.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got.Version)
}

func TestNewRedisStoreWithClient_DefaultPrefix(t *testing.T) {
	store := NewRedisStoreWithClient(nil, "")

	assert.Equal(t, defaultKeyPrefix+"abc", store.key("abc"))
}
