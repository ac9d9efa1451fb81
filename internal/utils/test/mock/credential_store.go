package mock

import (
	"errors"
	"sync"

	"github.com/emreeozkull/biletbudur-cli/internal/auth"
)

// CredentialStore is an in-memory auth.CredentialStore that counts its writes
type CredentialStore struct {
	mu       sync.Mutex
	values   map[string]string
	identity *auth.Identity

	// Writes is the number of mutations applied to the store
	Writes int

	// FailWrites makes every mutation fail
	FailWrites bool
}

// NewCredentialStore creates a new in-memory credential store holding tokens
func NewCredentialStore(tokens auth.TokenPair) *CredentialStore {
	store := &CredentialStore{values: map[string]string{}}
	if tokens.Access != "" {
		store.values[auth.KeyAccessToken] = tokens.Access
	}
	if tokens.Refresh != "" {
		store.values[auth.KeyRefreshToken] = tokens.Refresh
	}
	return store
}

var errWriteFailed = errors.New("write failed")

// Get returns the stored value of key
func (s *CredentialStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value under key
func (s *CredentialStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errWriteFailed
	}
	s.values[key] = value
	s.Writes++
	return nil
}

// Delete removes key
func (s *CredentialStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return errWriteFailed
	}
	delete(s.values, key)
	s.Writes++
	return nil
}

// SetTokens stores both tokens
func (s *CredentialStore) SetTokens(tokens auth.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTokens(tokens)
}

// ClearTokens removes both tokens
func (s *CredentialStore) ClearTokens() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setTokens(auth.TokenPair{})
}

// SwapTokens replaces the pair if the refresh token still matches
func (s *CredentialStore) SwapTokens(expectedRefresh string, tokens auth.TokenPair) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values[auth.KeyRefreshToken] != expectedRefresh {
		return false, nil
	}
	if err := s.setTokens(tokens); err != nil {
		return false, err
	}
	return true, nil
}

func (s *CredentialStore) setTokens(tokens auth.TokenPair) error {
	if s.FailWrites {
		return errWriteFailed
	}
	delete(s.values, auth.KeyAccessToken)
	delete(s.values, auth.KeyRefreshToken)
	if tokens.Access != "" {
		s.values[auth.KeyAccessToken] = tokens.Access
	}
	if tokens.Refresh != "" {
		s.values[auth.KeyRefreshToken] = tokens.Refresh
	}
	s.Writes++
	return nil
}

// Tokens returns the stored token pair
func (s *CredentialStore) Tokens() auth.TokenPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	return auth.TokenPair{Access: s.values[auth.KeyAccessToken], Refresh: s.values[auth.KeyRefreshToken]}
}

// CachedIdentity returns the cached identity
func (s *CredentialStore) CachedIdentity() (auth.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return auth.Identity{}, false
	}
	return *s.identity, true
}

// CacheIdentity caches identity, a zero identity clears the cache
func (s *CredentialStore) CacheIdentity(identity auth.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity == (auth.Identity{}) {
		s.identity = nil
		return nil
	}
	s.identity = &identity
	return nil
}
