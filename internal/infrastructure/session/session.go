package session

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// TokenStore persists the session token in durable storage. Load returns
// an empty string with a nil error when no token was ever saved.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Manager is the single writer to durable session storage. The in-memory
// token is a cache of the store, populated exactly once by Restore and on
// explicit Set/Clear transitions. At most one token is active per manager.
type Manager struct {
	store  TokenStore
	logger *zap.Logger

	mu    sync.RWMutex
	token string
}

// NewManager creates a session manager over the given store.
func NewManager(store TokenStore, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		logger: logger.Named("session"),
	}
}

// Restore loads the persisted token into memory. Absence of a stored
// token is a normal, silent case; storage read failures are logged and
// treated as no session rather than propagated.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.store.Load(ctx)
	if err != nil {
		m.logger.Warn("failed to restore session token", zap.Error(err))
		return
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	if token != "" {
		m.logger.Debug("session token restored")
	}
}

// Set persists the token and updates the in-memory copy. Requests issued
// after Set returns carry the new token.
func (m *Manager) Set(ctx context.Context, token string) error {
	if err := m.store.Save(ctx, token); err != nil {
		return err
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

// Clear erases the token in memory and in durable storage. Cached resource
// data held elsewhere is not this manager's concern and stays untouched.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}

// Token returns the current in-memory token, or "" when no session is
// active. Implements the API client's TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// HasSession reports whether a token is currently held.
func (m *Manager) HasSession() bool {
	return m.Token() != ""
}
