// pkg/memcache/token_store.go
package mem

import (
	"context"
	"sync"
	"time"
)

// TokenStore holds short lived single-purpose tokens: revoked session IDs
// and OAuth state values.
type TokenStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Consume returns the value for key if not expired and removes it
	// (single-use).
	Consume(ctx context.Context, key string) (string, bool, error)

	Exists(ctx context.Context, key string) (bool, error)
}

const (
	revokedPrefix    = "revoked:"
	oauthStatePrefix = "oauth_state:"
)

func RevokeToken(ctx context.Context, s TokenStore, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.Set(ctx, revokedPrefix+tokenID, "1", ttl)
}

func IsRevoked(ctx context.Context, s TokenStore, tokenID string) (bool, error) {
	return s.Exists(ctx, revokedPrefix+tokenID)
}

func SaveOAuthState(ctx context.Context, s TokenStore, state string, ttl time.Duration) error {
	return s.Set(ctx, oauthStatePrefix+state, "1", ttl)
}

// ConsumeOAuthState reports whether state was issued and not yet used.
func ConsumeOAuthState(ctx context.Context, s TokenStore, state string) (bool, error) {
	_, ok, err := s.Consume(ctx, oauthStatePrefix+state)
	return ok, err
}

type entry struct {
	value     string
	expiresAt time.Time
}

type MemoryTokens struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

func NewMemoryTokens() *MemoryTokens {
	return &MemoryTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func (s *MemoryTokens) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.data[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

func (s *MemoryTokens) Consume(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return "", false, nil
	}
	delete(s.data, key)
	if s.now().After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *MemoryTokens) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	return ok && !s.now().After(e.expiresAt), nil
}

// sweepLocked drops expired entries so revoked IDs do not pile up.
func (s *MemoryTokens) sweepLocked() {
	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
}
