package auth

import (
	"context"
	"sync"
)

// TokenManager supplies the Authorization header value for API requests.
// Modrinth uses the personal access token as the raw header value with
// no "Bearer" prefix.
type TokenManager interface {
	// GetToken returns the token to send, or an empty string for
	// unauthenticated requests.
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager hands out a fixed personal access token. Modrinth
// tokens do not expire on a schedule and have no refresh flow, so there
// is nothing to renew; the manager only guards against concurrent reads
// and swaps.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager around a fixed token.
// An empty token is valid and means requests go out unauthenticated.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(_ context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.token, nil
}

// SetToken replaces the configured token. Used after interactive login.
func (m *StaticTokenManager) SetToken(token string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = token
}

// HasToken reports whether a non-empty token is configured.
func (m *StaticTokenManager) HasToken() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.token != ""
}
