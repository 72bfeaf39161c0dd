package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Retrieval methods populate each task's label names.
type TaskStore interface {
	// Create saves a new task and attaches the given labels in a single
	// transaction; a failure on either leaves no partial state behind.
	// Returns ErrInvalidEntity if the project, user, or any label does
	// not exist.
	Create(ctx context.Context, task *domain.Task, labelIDs []uuid.UUID) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListByProject retrieves all tasks in the given project, most
	// recently created first.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)

	// ListByUser retrieves all tasks owned by the given user, most
	// recently created first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// Update modifies an existing task's fields.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID. Label attachments and comments cascade.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// SetLabels replaces the task's label set with the given label IDs in
	// a single transaction; on failure the previous set survives intact.
	// Returns ErrTaskNotFound if the task does not exist and
	// ErrInvalidEntity if any label ID is unknown.
	SetLabels(ctx context.Context, taskID uuid.UUID, labelIDs []uuid.UUID) error
}
