package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MockLabelStore implements store.LabelStore for testing.
type MockLabelStore struct {
	CreateFn  func(ctx context.Context, label *domain.Label, taskID *uuid.UUID) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Label, error)
	ListFn    func(ctx context.Context) ([]*domain.Label, error)
	UpdateFn  func(ctx context.Context, label *domain.Label) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	Labels map[uuid.UUID]*domain.Label
}

// NewMockLabelStore creates a new mock store with initialized defaults.
func NewMockLabelStore() *MockLabelStore {
	return &MockLabelStore{
		Labels: make(map[uuid.UUID]*domain.Label),
	}
}

// Create implements the store.LabelStore interface.
func (m *MockLabelStore) Create(ctx context.Context, label *domain.Label, taskID *uuid.UUID) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, label, taskID)
	}

	for _, existing := range m.Labels {
		if existing.Name == label.Name {
			return store.ErrLabelExists
		}
	}
	m.Labels[label.ID] = label
	return nil
}

// GetByID implements the store.LabelStore interface.
func (m *MockLabelStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	label, ok := m.Labels[id]
	if !ok {
		return nil, store.ErrLabelNotFound
	}
	return label, nil
}

// List implements the store.LabelStore interface.
func (m *MockLabelStore) List(ctx context.Context) ([]*domain.Label, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	labels := make([]*domain.Label, 0, len(m.Labels))
	for _, label := range m.Labels {
		labels = append(labels, label)
	}
	return labels, nil
}

// Update implements the store.LabelStore interface.
func (m *MockLabelStore) Update(ctx context.Context, label *domain.Label) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, label)
	}

	if _, ok := m.Labels[label.ID]; !ok {
		return store.ErrLabelNotFound
	}
	m.Labels[label.ID] = label
	return nil
}

// Delete implements the store.LabelStore interface.
func (m *MockLabelStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Labels[id]; !ok {
		return store.ErrLabelNotFound
	}
	delete(m.Labels, id)
	return nil
}
