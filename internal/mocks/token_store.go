package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MockTokenStore implements store.TokenStore for testing with an in-memory
// map keyed by token string. The default implementations are safe for
// concurrent use so background-sweeper tests can share one instance.
type MockTokenStore struct {
	mu sync.Mutex

	CreateFn           func(ctx context.Context, token *domain.SessionToken) error
	GetByTokenFn       func(ctx context.Context, token string) (*domain.SessionToken, error)
	RevokeFn           func(ctx context.Context, token string) error
	RevokeAllForUserFn func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFn    func(ctx context.Context, cutoff time.Time) (int64, error)

	Tokens map[string]*domain.SessionToken
}

// NewMockTokenStore creates a new mock store with initialized defaults.
func NewMockTokenStore() *MockTokenStore {
	return &MockTokenStore{
		Tokens: make(map[string]*domain.SessionToken),
	}
}

// Create implements the store.TokenStore interface.
func (m *MockTokenStore) Create(ctx context.Context, token *domain.SessionToken) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Tokens[token.Token]; ok {
		return store.ErrDuplicate
	}
	m.Tokens[token.Token] = token
	return nil
}

// GetByToken implements the store.TokenStore interface.
func (m *MockTokenStore) GetByToken(ctx context.Context, token string) (*domain.SessionToken, error) {
	if m.GetByTokenFn != nil {
		return m.GetByTokenFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.Tokens[token]
	if !ok {
		return nil, store.ErrTokenNotFound
	}
	return record, nil
}

// Revoke implements the store.TokenStore interface.
func (m *MockTokenStore) Revoke(ctx context.Context, token string) error {
	if m.RevokeFn != nil {
		return m.RevokeFn(ctx, token)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.Tokens[token]
	if !ok {
		return store.ErrTokenNotFound
	}
	record.Revoked = true
	return nil
}

// RevokeAllForUser implements the store.TokenStore interface.
func (m *MockTokenStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	if m.RevokeAllForUserFn != nil {
		return m.RevokeAllForUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, record := range m.Tokens {
		if record.UserID == userID {
			record.Revoked = true
		}
	}
	return nil
}

// DeleteExpired implements the store.TokenStore interface.
func (m *MockTokenStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteExpiredFn != nil {
		return m.DeleteExpiredFn(ctx, cutoff)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for key, record := range m.Tokens {
		if record.ExpiresAt.Before(cutoff) {
			delete(m.Tokens, key)
			deleted++
		}
	}
	return deleted, nil
}
