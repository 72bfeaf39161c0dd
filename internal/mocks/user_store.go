package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MockUserStore implements store.UserStore for testing with an in-memory
// map keyed by user ID.
type MockUserStore struct {
	CreateFn                  func(ctx context.Context, user *domain.User) error
	GetByIDFn                 func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFn              func(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsernameOrEmailFn func(ctx context.Context, username, email string) (bool, error)
	UpdateFn                  func(ctx context.Context, user *domain.User) error
	DeleteFn                  func(ctx context.Context, id uuid.UUID) error

	Users map[uuid.UUID]*domain.User
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[uuid.UUID]*domain.User),
	}
}

// Create implements the store.UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return store.ErrUserExists
		}
	}

	m.Users[user.ID] = user
	return nil
}

// GetByID implements the store.UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByEmail implements the store.UserStore interface.
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ExistsByUsernameOrEmail implements the store.UserStore interface.
func (m *MockUserStore) ExistsByUsernameOrEmail(
	ctx context.Context,
	username, email string,
) (bool, error) {
	if m.ExistsByUsernameOrEmailFn != nil {
		return m.ExistsByUsernameOrEmailFn(ctx, username, email)
	}

	for _, user := range m.Users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Update implements the store.UserStore interface.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, ok := m.Users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	m.Users[user.ID] = user
	return nil
}

// Delete implements the store.UserStore interface.
func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}
