package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment.
	// Returns ErrInvalidEntity if the task or user does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// ListByTask retrieves all comments on the given task, oldest first.
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Comment, error)

	// ListByUser retrieves all comments written by the given user, most
	// recent first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Comment, error)

	// Update replaces the body of an existing comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment by ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
