package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/payment_voucher_app/internal/apperrors"
	"github.com/SscSPs/payment_voucher_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payment_voucher_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "voucher:settlement:"

// RedisStore implements SessionStore using Redis.
// Sessions are stored as JSON with the TTL set on the key, so several
// instances can serve the same session.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisStore parses redisURL, connects, and pings the server.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreWithClient(client, defaultKeyPrefix), nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
func NewRedisStoreWithClient(client redis.UniversalClient, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

func (s *RedisStore) key(sessionID string) string {
	return s.keyPrefix + sessionID
}

func (s *RedisStore) GetSession(ctx context.Context, sessionID string) (*domain.SettlementSession, error) {
	session, err := readSession(ctx, s.client, s.key(sessionID))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("%w: settlement session %s", apperrors.ErrNotFound, sessionID)
	}
	return session, nil
}

// readSession returns nil without error when the key does not exist.
func readSession(ctx context.Context, c redis.Cmdable, key string) (*domain.SettlementSession, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settlement session: %w", err)
	}

	var session domain.SettlementSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode settlement session %s: %w", key, err)
	}
	return &session, nil
}

// SaveSession writes session under WATCH so a save from another instance
// between the version check and the write aborts with apperrors.ErrConflict.
func (s *RedisStore) SaveSession(ctx context.Context, session domain.SettlementSession, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode settlement session: %w", err)
	}
	key := s.key(session.SessionID)

	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		stored, err := readSession(ctx, tx, key)
		if err != nil {
			return err
		}
		if err := checkVersion(session, stored); err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, ttl)
			return nil
		})
		return err
	}, key)

	switch {
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%w: settlement session %s was written concurrently", apperrors.ErrConflict, session.SessionID)
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrNotFound):
		return err
	case err != nil:
		return fmt.Errorf("failed to write settlement session: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete settlement session: %w", err)
	}
	return nil
}

// Client returns the underlying client so other components can share the connection.
func (s *RedisStore) Client() redis.UniversalClient {
	return s.client
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ portsrepo.SessionStore = (*RedisStore)(nil)
