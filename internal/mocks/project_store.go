package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MockProjectStore implements store.ProjectStore for testing.
type MockProjectStore struct {
	CreateFn  func(ctx context.Context, project *domain.Project) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	ListFn    func(ctx context.Context) ([]*domain.Project, error)
	UpdateFn  func(ctx context.Context, project *domain.Project) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	Projects map[uuid.UUID]*domain.Project
}

// NewMockProjectStore creates a new mock store with initialized defaults.
func NewMockProjectStore() *MockProjectStore {
	return &MockProjectStore{
		Projects: make(map[uuid.UUID]*domain.Project),
	}
}

// Create implements the store.ProjectStore interface.
func (m *MockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, project)
	}
	m.Projects[project.ID] = project
	return nil
}

// GetByID implements the store.ProjectStore interface.
func (m *MockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	project, ok := m.Projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return project, nil
}

// List implements the store.ProjectStore interface.
func (m *MockProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	projects := make([]*domain.Project, 0, len(m.Projects))
	for _, project := range m.Projects {
		projects = append(projects, project)
	}
	return projects, nil
}

// Update implements the store.ProjectStore interface.
func (m *MockProjectStore) Update(ctx context.Context, project *domain.Project) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, project)
	}

	if _, ok := m.Projects[project.ID]; !ok {
		return store.ErrProjectNotFound
	}
	m.Projects[project.ID] = project
	return nil
}

// Delete implements the store.ProjectStore interface.
func (m *MockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Projects[id]; !ok {
		return store.ErrProjectNotFound
	}
	delete(m.Projects, id)
	return nil
}
