package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
type ProjectStore interface {
	// Create saves a new project.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project by its unique ID.
	// Returns ErrProjectNotFound if the project does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// List retrieves all projects, most recently created first.
	// Returns an empty slice when there are none.
	List(ctx context.Context) ([]*domain.Project, error)

	// Update modifies an existing project's fields.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// Delete removes a project by ID. Tasks in the project cascade.
	// Returns ErrProjectNotFound if the project does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
