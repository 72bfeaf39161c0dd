package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
)

// LabelStore defines the interface for label data persistence.
type LabelStore interface {
	// Create saves a new label. When taskID is non-nil the label is also
	// attached to that task in the same operation.
	// Returns ErrLabelExists if the name is taken and ErrInvalidEntity if
	// the task does not exist.
	Create(ctx context.Context, label *domain.Label, taskID *uuid.UUID) error

	// GetByID retrieves a label by its unique ID.
	// Returns ErrLabelNotFound if the label does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Label, error)

	// List retrieves all labels ordered by name.
	List(ctx context.Context) ([]*domain.Label, error)

	// Update renames an existing label.
	// Returns ErrLabelNotFound if the label does not exist and
	// ErrLabelExists if the new name is taken.
	Update(ctx context.Context, label *domain.Label) error

	// Delete removes a label by ID. Task attachments cascade.
	// Returns ErrLabelNotFound if the label does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
