package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
)

// TokenStore defines the interface for session-token record persistence.
// Records exist for revocation and audit; the JWT signature remains the
// primary proof of authenticity.
type TokenStore interface {
	// Create saves a new session token record.
	Create(ctx context.Context, token *domain.SessionToken) error

	// GetByToken retrieves the record for the given raw token string.
	// Returns ErrTokenNotFound if no record exists.
	GetByToken(ctx context.Context, token string) (*domain.SessionToken, error)

	// Revoke marks the record for the given raw token string as revoked.
	// Revoking an unknown token is not an error: logout is idempotent.
	Revoke(ctx context.Context, token string) error

	// RevokeAllForUser marks every record belonging to the user as revoked.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes records whose expiry is at or before the given
	// cutoff. Returns the number of rows removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
