package editmode

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps gate state per browser session. Sessions never expire;
// losing the session id is what turns edit mode off.
type SessionStore interface {
	// Load returns the stored state, or the zero State for unknown ids.
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, st State) error
}

// MemoryStore keeps sessions in process.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]State)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID], nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = st
	return nil
}

const (
	redisKeyPrefix    = "strata:edit_session:"
	fieldEditMode     = "edit_mode"
	fieldPasswordShow = "show_password_modal"
)

// RedisStore keeps one hash per session so every replica sees the same gate.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(sessionID string) string {
	return redisKeyPrefix + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (State, error) {
	vals, err := s.client.HGetAll(ctx, redisKey(sessionID)).Result()
	if err != nil {
		return State{}, fmt.Errorf("load edit session: %w", err)
	}
	return State{
		EditMode:          vals[fieldEditMode] == "1",
		ShowPasswordModal: vals[fieldPasswordShow] == "1",
	}, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, st State) error {
	err := s.client.HSet(ctx, redisKey(sessionID),
		fieldEditMode, flag(st.EditMode),
		fieldPasswordShow, flag(st.ShowPasswordModal),
	).Err()
	if err != nil {
		return fmt.Errorf("save edit session: %w", err)
	}
	return nil
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
