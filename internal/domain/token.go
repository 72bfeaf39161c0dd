package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for SessionToken
var (
	ErrEmptyTokenID     = errors.New("token ID cannot be empty")
	ErrEmptyTokenUserID = errors.New("token user ID cannot be empty")
	ErrEmptyTokenValue  = errors.New("token value cannot be empty")
	ErrZeroTokenExpiry  = errors.New("token expiry cannot be zero")
)

// SessionToken is the durable record of an issued session token.
// It ties the signed token string to the account that requested it so
// tokens can be revoked on logout and audited after the fact. Expiry is
// absolute from issuance; tokens are never renewed in place.
type SessionToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"-"` // Never serialize the raw token
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSessionToken creates a new SessionToken record for the given user.
// Returns an error if validation fails.
func NewSessionToken(userID uuid.UUID, token string, expiresAt time.Time) (*SessionToken, error) {
	st := &SessionToken{
		ID:        uuid.New(),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	if err := st.Validate(); err != nil {
		return nil, err
	}

	return st, nil
}

// Validate checks if the SessionToken has valid data.
func (t *SessionToken) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTokenID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTokenUserID
	}

	if t.Token == "" {
		return ErrEmptyTokenValue
	}

	if t.ExpiresAt.IsZero() {
		return ErrZeroTokenExpiry
	}

	return nil
}

// Expired reports whether the token's absolute expiry has passed at the
// given instant.
func (t *SessionToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
