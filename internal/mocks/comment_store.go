package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	ListByTaskFn func(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)
	ListByUserFn func(ctx context.Context, userID uuid.UUID) ([]*domain.Comment, error)
	UpdateFn     func(ctx context.Context, comment *domain.Comment) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	Comments map[uuid.UUID]*domain.Comment
}

// NewMockCommentStore creates a new mock store with initialized defaults.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments: make(map[uuid.UUID]*domain.Comment),
	}
}

// Create implements the store.CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}
	m.Comments[comment.ID] = comment
	return nil
}

// GetByID implements the store.CommentStore interface.
func (m *MockCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	comment, ok := m.Comments[id]
	if !ok {
		return nil, store.ErrCommentNotFound
	}
	return comment, nil
}

// ListByTask implements the store.CommentStore interface.
func (m *MockCommentStore) ListByTask(
	ctx context.Context,
	taskID uuid.UUID,
) ([]*domain.Comment, error) {
	if m.ListByTaskFn != nil {
		return m.ListByTaskFn(ctx, taskID)
	}

	var comments []*domain.Comment
	for _, comment := range m.Comments {
		if comment.TaskID == taskID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// ListByUser implements the store.CommentStore interface.
func (m *MockCommentStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Comment, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	var comments []*domain.Comment
	for _, comment := range m.Comments {
		if comment.UserID == userID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// Update implements the store.CommentStore interface.
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}

	if _, ok := m.Comments[comment.ID]; !ok {
		return store.ErrCommentNotFound
	}
	m.Comments[comment.ID] = comment
	return nil
}

// Delete implements the store.CommentStore interface.
func (m *MockCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, id)
	return nil
}
