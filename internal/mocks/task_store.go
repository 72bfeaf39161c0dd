package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
type MockTaskStore struct {
	CreateFn        func(ctx context.Context, task *domain.Task, labelIDs []uuid.UUID) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProjectFn func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	ListByUserFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	UpdateFn        func(ctx context.Context, task *domain.Task) error
	DeleteFn        func(ctx context.Context, id uuid.UUID) error
	SetLabelsFn     func(ctx context.Context, taskID uuid.UUID, labelIDs []uuid.UUID) error

	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults.
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the store.TaskStore interface. The default stores the
// task only; label attachment behavior is exercised through CreateFn.
func (m *MockTaskStore) Create(
	ctx context.Context,
	task *domain.Task,
	labelIDs []uuid.UUID,
) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task, labelIDs)
	}
	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the store.TaskStore interface.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// ListByProject implements the store.TaskStore interface.
func (m *MockTaskStore) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*domain.Task, error) {
	if m.ListByProjectFn != nil {
		return m.ListByProjectFn(ctx, projectID)
	}

	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// ListByUser implements the store.TaskStore interface.
func (m *MockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	var tasks []*domain.Task
	for _, task := range m.Tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// Update implements the store.TaskStore interface.
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, ok := m.Tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the store.TaskStore interface.
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// SetLabels implements the store.TaskStore interface.
func (m *MockTaskStore) SetLabels(
	ctx context.Context,
	taskID uuid.UUID,
	labelIDs []uuid.UUID,
) error {
	if m.SetLabelsFn != nil {
		return m.SetLabelsFn(ctx, taskID, labelIDs)
	}

	if _, ok := m.Tasks[taskID]; !ok {
		return store.ErrTaskNotFound
	}
	return nil
}
