// Package session holds the single access token obtained from the scheduling
// provider. The relay is deliberately single-user: a new login overwrites the
// previous token and nothing survives a restart.
package session

import "sync"

// Store is injected into the services that need the token, so tests can swap
// in their own implementation.
type Store interface {
	SetToken(token string)
	Token() (string, bool)
}

type Memory struct {
	mu    sync.RWMutex
	token string
}

func NewMemory() *Memory {
	return &Memory{}
}

// SetToken replaces the stored token. Last write wins, no revocation of the
// token being replaced is attempted.
func (m *Memory) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

func (m *Memory) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token, m.token != ""
}
