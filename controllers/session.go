package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"mememage-web/models"
	"mememage-web/storage"
	"mememage-web/utils"

	"github.com/charmbracelet/log"
)

// SessionManager owns one client's session and mirrors every change to
// storage. A stored token is trusted until the server rejects it.
type SessionManager struct {
	store *storage.Bucket
	l     *log.Logger

	mu      sync.RWMutex
	session models.Session
}

func NewSessionManager(store *storage.Bucket) *SessionManager {
	return &SessionManager{
		store: store,
		l:     utils.NewLogger("session"),
	}
}

// Restore loads the persisted session and reports whether the client is
// authenticated afterwards. It never touches the network. Missing or
// unreadable entries leave the client signed out; only a failing store
// returns an error.
func (m *SessionManager) Restore(ctx context.Context) (bool, error) {
	token, err := m.store.Get(ctx, models.TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read token: %w", err)
	}
	raw, err := m.store.Get(ctx, models.UserKey)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read user: %w", err)
	}
	if token == "" {
		return false, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.Username == "" {
		m.l.Error("discarding unreadable user record", "err", err)
		return false, nil
	}

	m.mu.Lock()
	m.session = models.Session{User: &user, Token: token}
	m.mu.Unlock()
	return true, nil
}

func (m *SessionManager) Current() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Token is empty when the client is not authenticated.
func (m *SessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Token
}

// Establish persists the token and user returned by signup or login and
// then makes them current.
func (m *SessionManager) Establish(ctx context.Context, auth *models.AuthResponse) error {
	if auth == nil || auth.Token == "" {
		return fmt.Errorf("establish session: empty token")
	}
	if auth.User.Username == "" {
		return fmt.Errorf("establish session: missing user")
	}

	userJSON, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := m.store.Set(ctx, models.TokenKey, auth.Token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := m.store.Set(ctx, models.UserKey, string(userJSON)); err != nil {
		_ = m.store.Remove(ctx, models.TokenKey)
		return fmt.Errorf("persist user: %w", err)
	}

	user := auth.User
	m.mu.Lock()
	m.session = models.Session{User: &user, Token: auth.Token}
	m.mu.Unlock()
	return nil
}

// Clear forgets the session in memory even when storage fails.
func (m *SessionManager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.session = models.Session{}
	m.mu.Unlock()

	return errors.Join(
		m.store.Remove(ctx, models.TokenKey),
		m.store.Remove(ctx, models.UserKey),
	)
}
