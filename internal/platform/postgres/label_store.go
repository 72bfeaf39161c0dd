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

// PostgresLabelStore implements the store.LabelStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLabelStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLabelStore creates a new PostgreSQL implementation of the
// LabelStore interface. If logger is nil, the default logger is used.
func NewPostgresLabelStore(db store.DBTX, logger *slog.Logger) *PostgresLabelStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLabelStore{
		db:     db,
		logger: logger.With(slog.String("component", "label_store")),
	}
}

// Ensure PostgresLabelStore implements store.LabelStore interface
var _ store.LabelStore = (*PostgresLabelStore)(nil)

// Create implements store.LabelStore.Create. When taskID is non-nil the
// label is attached to that task as part of creation.
func (s *PostgresLabelStore) Create(
	ctx context.Context,
	label *domain.Label,
	taskID *uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := label.Validate(); err != nil {
		log.Warn("label validation failed during create",
			slog.String("error", err.Error()),
			slog.String("label_id", label.ID.String()))
		return err
	}

	query := `
		INSERT INTO labels (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query,
		label.ID, label.Name, label.CreatedAt, label.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrLabelExists
		}
		log.Error("failed to create label",
			slog.String("error", err.Error()),
			slog.String("label_id", label.ID.String()))
		return err
	}

	if taskID != nil {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO task_labels (task_id, label_id) VALUES ($1, $2)`,
			*taskID, label.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: task with ID %s not found",
					store.ErrInvalidEntity, *taskID)
			}
			log.Error("failed to attach label to task",
				slog.String("error", err.Error()),
				slog.String("label_id", label.ID.String()),
				slog.String("task_id", taskID.String()))
			return err
		}
	}

	log.Info("label created successfully",
		slog.String("label_id", label.ID.String()),
		slog.String("name", label.Name))
	return nil
}

// GetByID implements store.LabelStore.GetByID.
// Returns store.ErrLabelNotFound if the label does not exist.
func (s *PostgresLabelStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Label, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT id, name, created_at, updated_at FROM labels WHERE id = $1`

	var label domain.Label
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&label.ID,
		&label.Name,
		&label.CreatedAt,
		&label.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("label not found", slog.String("label_id", id.String()))
			return nil, store.ErrLabelNotFound
		}
		log.Error("failed to get label by ID",
			slog.String("error", err.Error()),
			slog.String("label_id", id.String()))
		return nil, err
	}

	return &label, nil
}

// List implements store.LabelStore.List.
func (s *PostgresLabelStore) List(ctx context.Context) ([]*domain.Label, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM labels ORDER BY name`)
	if err != nil {
		log.Error("failed to list labels", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var labels []*domain.Label
	for rows.Next() {
		var label domain.Label
		err := rows.Scan(&label.ID, &label.Name, &label.CreatedAt, &label.UpdatedAt)
		if err != nil {
			log.Error("failed to scan label row", slog.String("error", err.Error()))
			return nil, err
		}
		labels = append(labels, &label)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if labels == nil {
		labels = []*domain.Label{}
	}

	return labels, nil
}

// Update implements store.LabelStore.Update.
// Returns store.ErrLabelNotFound if the label does not exist and
// store.ErrLabelExists when the new name is taken.
func (s *PostgresLabelStore) Update(ctx context.Context, label *domain.Label) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := label.Validate(); err != nil {
		log.Warn("label validation failed during update",
			slog.String("error", err.Error()),
			slog.String("label_id", label.ID.String()))
		return err
	}

	label.UpdatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx,
		`UPDATE labels SET name = $1, updated_at = $2 WHERE id = $3`,
		label.Name, label.UpdatedAt, label.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrLabelExists
		}
		log.Error("failed to update label",
			slog.String("error", err.Error()),
			slog.String("label_id", label.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("label_id", label.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrLabelNotFound
	}

	log.Info("label updated successfully", slog.String("label_id", label.ID.String()))
	return nil
}

// Delete implements store.LabelStore.Delete. Task attachments cascade at
// the database level.
// Returns store.ErrLabelNotFound if the label does not exist.
func (s *PostgresLabelStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM labels WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete label",
			slog.String("error", err.Error()),
			slog.String("label_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("label_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrLabelNotFound
	}

	log.Info("label deleted successfully", slog.String("label_id", id.String()))
	return nil
}
