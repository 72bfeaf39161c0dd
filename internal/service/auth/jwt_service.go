package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT embedding the user's identity.
	// Returns the token string, its absolute expiry, or an error if
	// signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string) (string, time.Time, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken when the token's expiry has passed
	// and ErrInvalidToken when the structure or signature is invalid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the decoded payload of a session token. It is a plain
// value type for callers; the wire encoding is internal to the service.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID

	// Email is the account email at issuance time.
	Email string

	// Standard registered JWT claims
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
