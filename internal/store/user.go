package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry a
	// hashed password. Returns ErrUserExists if the username or email is
	// already taken (detected via the database unique constraints).
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByUsernameOrEmail reports whether any user already holds the
	// given username or email. A single query tests both, mirroring the
	// registration fast-path check; the unique constraints remain the
	// authoritative conflict signal.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Update modifies an existing user's profile fields and, when
	// HashedPassword is set, the stored password digest.
	// Returns ErrUserNotFound if the user does not exist and ErrUserExists
	// when updating to a username or email that is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user by ID. Owned session tokens, projects, tasks
	// and comments cascade at the database level.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
