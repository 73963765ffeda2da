package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/devdocs/internal/session"
	"github.com/MrSnakeDoc/devdocs/internal/usage"
)

var (
	_ session.Store   = (*Store)(nil)
	_ session.Sweeper = (*Store)(nil)
	_ usage.Counter   = (*Store)(nil)
)

// Store handles Redis operations for sessions and page views
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}

// Get retrieves a session by ID. Redis expires the key with the session,
// so a missing key is reported as session.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (session.Session, error) {
	data, err := s.client.Get(ctx, SessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if sess.Expired(s.now()) {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

// Save stores a session with a TTL matching its expiry
func (s *Store) Save(ctx context.Context, sess session.Session) error {
	ttl := time.Duration(0)
	if !sess.ExpiresAt.IsZero() {
		ttl = sess.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return nil
		}
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, SessionKey(sess.ID), data, ttl)
	pipe.SAdd(ctx, AllSessionsKey(), sess.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session and its index entry
func (s *Store) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, SessionKey(id))
	pipe.SRem(ctx, AllSessionsKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Sweep drops index entries whose session key Redis already expired
func (s *Store) Sweep(ctx context.Context, _ time.Time) (int, error) {
	ids, err := s.client.SMembers(ctx, AllSessionsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get session IDs: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	exists := make([]*redis.IntCmd, len(ids))
	for i, id := range ids {
		exists[i] = pipe.Exists(ctx, SessionKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to check sessions: %w", err)
	}

	stale := make([]interface{}, 0)
	for i, cmd := range exists {
		if cmd.Val() == 0 {
			stale = append(stale, ids[i])
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}
	if err := s.client.SRem(ctx, AllSessionsKey(), stale...).Err(); err != nil {
		return 0, fmt.Errorf("failed to prune session index: %w", err)
	}
	return len(stale), nil
}

// Count returns the number of indexed sessions. It implements session.Counter.
func (s *Store) Count(ctx context.Context) (int64, error) {
	n, err := s.client.SCard(ctx, AllSessionsKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return n, nil
}
