package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/platform/logger"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the
// TokenStore interface. If logger is nil, the default logger is used.
func NewPostgresTokenStore(db store.DBTX, logger *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: logger.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Create implements store.TokenStore.Create.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresTokenStore) Create(ctx context.Context, token *domain.SessionToken) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := token.Validate(); err != nil {
		log.Warn("session token validation failed during create",
			slog.String("error", err.Error()),
			slog.String("token_id", token.ID.String()))
		return err
	}

	query := `
		INSERT INTO session_tokens (id, user_id, token, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		token.ID,
		token.UserID,
		token.Token,
		token.ExpiresAt,
		token.Revoked,
		token.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, token.UserID)
		}
		log.Error("failed to create session token record",
			slog.String("error", err.Error()),
			slog.String("token_id", token.ID.String()),
			slog.String("user_id", token.UserID.String()))
		return err
	}

	log.Debug("session token record created",
		slog.String("token_id", token.ID.String()),
		slog.String("user_id", token.UserID.String()))
	return nil
}

// GetByToken implements store.TokenStore.GetByToken.
// Returns store.ErrTokenNotFound if no record exists.
func (s *PostgresTokenStore) GetByToken(ctx context.Context, token string) (*domain.SessionToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, token, expires_at, revoked, created_at
		FROM session_tokens
		WHERE token = $1
	`

	var record domain.SessionToken
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&record.ID,
		&record.UserID,
		&record.Token,
		&record.ExpiresAt,
		&record.Revoked,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTokenNotFound
		}
		log.Error("failed to get session token record", slog.String("error", err.Error()))
		return nil, err
	}

	return &record, nil
}

// Revoke implements store.TokenStore.Revoke. Revoking an unknown token is
// not an error: logout is idempotent.
func (s *PostgresTokenStore) Revoke(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`UPDATE session_tokens SET revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		log.Error("failed to revoke session token", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// RevokeAllForUser implements store.TokenStore.RevokeAllForUser.
func (s *PostgresTokenStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`UPDATE session_tokens SET revoked = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to revoke user session tokens",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("revoked all session tokens for user", slog.String("user_id", userID.String()))
	return nil
}

// DeleteExpired implements store.TokenStore.DeleteExpired.
func (s *PostgresTokenStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM session_tokens WHERE expires_at <= $1`, cutoff)
	if err != nil {
		log.Error("failed to delete expired session tokens",
			slog.String("error", err.Error()))
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected", slog.String("error", err.Error()))
		return 0, err
	}

	if rowsAffected > 0 {
		log.Info("deleted expired session tokens", slog.Int64("count", rowsAffected))
	}
	return rowsAffected, nil
}
