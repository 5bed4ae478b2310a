package play

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guessdle/guessdle/internal/apperrors"
)

// SessionStore persists session snapshots keyed by (identity, game, date).
// Load returns (nil, nil) when no session exists yet.
type SessionStore interface {
	Load(ctx context.Context, userID, gameID, date string) (*Session, error)
	Save(ctx context.Context, session *Session) error
}

// Sessions only matter for the current day; keep them around long enough
// to survive the midnight rollover in every timezone.
const sessionTTL = 48 * time.Hour

// RedisSessionStore is the shared store for authenticated players.
type RedisSessionStore struct {
	rdb *redis.Client
}

func NewRedisSessionStore(rdb *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{rdb: rdb}
}

func sessionKey(userID, gameID, date string) string {
	return fmt.Sprintf("session:%s:%s:%s", userID, gameID, date)
}

func (s *RedisSessionStore) Load(ctx context.Context, userID, gameID, date string) (*Session, error) {
	val, err := s.rdb.Get(ctx, sessionKey(userID, gameID, date)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "Error loading session", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, apperrors.NewAppError(500, "Error unmarshalling session data", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.NewAppError(500, "Error serializing session data", err)
	}

	key := sessionKey(session.UserID, session.GameID, session.Date)
	if err := s.rdb.Set(ctx, key, data, sessionTTL).Err(); err != nil {
		return apperrors.NewAppError(500, "Error saving session", err)
	}
	return nil
}

// MemorySessionStore holds anonymous device-scoped sessions. Anonymous play
// never reaches the shared store or the stats aggregator.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (s *MemorySessionStore) Load(ctx context.Context, userID, gameID, date string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionKey(userID, gameID, date)]
	if !ok {
		return nil, nil
	}
	return session.Clone(), nil
}

func (s *MemorySessionStore) Save(ctx context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sessionKey(session.UserID, session.GameID, session.Date)
	s.sessions[key] = *session.Clone()
	return nil
}
