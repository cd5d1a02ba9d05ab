package storage

import (
	"context"
	"crypto/rand"
	"strconv"
	"sync"
	"time"
)

// SessionTTL is a sliding window: every successful Lookup pushes the expiry
// out again.
const SessionTTL = 7 * 24 * time.Hour

// SessionStore maps opaque client-held tokens to authenticated user ids.
type SessionStore interface {
	Create(ctx context.Context, userID uint) (string, error)
	Lookup(ctx context.Context, token string) (uint, bool)
	Destroy(ctx context.Context, token string)
}

var Sessions SessionStore

// InitializeSessions picks the Redis-backed store when Redis is connected,
// otherwise an in-memory one. Call after InitializeRedis.
func InitializeSessions() {
	if Redis != nil {
		Sessions = NewRedisSessionStore(SessionTTL)
		return
	}
	Sessions = NewMemorySessionStore(SessionTTL)
}

// NewSessionToken returns a URL-safe random hex string of n*2 characters.
func NewSessionToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	const hex = "0123456789abcdef"
	out := make([]byte, n*2)
	for i, v := range b {
		out[i*2] = hex[v>>4]
		out[i*2+1] = hex[v&0x0f]
	}
	return string(out)
}

type RedisSessionStore struct {
	ttl time.Duration
}

func NewRedisSessionStore(ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{ttl: ttl}
}

func sessionKey(token string) string { return "session:" + token }

func (s *RedisSessionStore) Create(ctx context.Context, userID uint) (string, error) {
	token := NewSessionToken(16)
	err := Redis.Set(ctx, sessionKey(token), strconv.FormatUint(uint64(userID), 10), s.ttl).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Lookup(ctx context.Context, token string) (uint, bool) {
	val, err := Redis.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return 0, false
	}
	userID, parseErr := strconv.ParseUint(val, 10, 32)
	if parseErr != nil {
		return 0, false
	}
	Redis.Expire(ctx, sessionKey(token), s.ttl)
	return uint(userID), true
}

func (s *RedisSessionStore) Destroy(ctx context.Context, token string) {
	Redis.Del(ctx, sessionKey(token))
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemorySessionStore is the dev/test fallback. Expired entries are dropped
// lazily on Lookup.
type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{ttl: ttl, sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Create(ctx context.Context, userID uint) (string, error) {
	token := NewSessionToken(16)
	s.mu.Lock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemorySessionStore) Lookup(ctx context.Context, token string) (uint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, false
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	s.sessions[token] = sess
	return sess.userID, true
}

func (s *MemorySessionStore) Destroy(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
