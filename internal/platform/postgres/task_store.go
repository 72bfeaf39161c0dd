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

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

const taskColumns = `id, project_id, user_id, title, description, due_date, priority, status, created_at, updated_at`

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) *PostgresTaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// inTx runs fn against a transaction-bound copy of the store. When the
// store already runs inside a caller-managed transaction, fn joins it.
func (s *PostgresTaskStore) inTx(ctx context.Context, fn func(s *PostgresTaskStore) error) error {
	db, ok := s.db.(*sql.DB)
	if !ok {
		return fn(s)
	}
	return store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(s.WithTx(tx))
	})
}

// Create implements store.TaskStore.Create. The task row and its label
// attachments are written in one transaction.
// Returns store.ErrInvalidEntity if the project, user, or any label does
// not exist.
func (s *PostgresTaskStore) Create(
	ctx context.Context,
	task *domain.Task,
	labelIDs []uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	err := s.inTx(ctx, func(s *PostgresTaskStore) error {
		if err := s.insertTask(ctx, task); err != nil {
			return err
		}
		return s.insertLabels(ctx, task.ID, labelIDs)
	})
	if err != nil {
		return err
	}

	log.Info("task created successfully",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", task.ProjectID.String()))
	return nil
}

func (s *PostgresTaskStore) insertTask(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.ProjectID,
		task.UserID,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: project %s or user %s not found",
				store.ErrInvalidEntity, task.ProjectID, task.UserID)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := s.scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	if err := s.attachLabels(ctx, []*domain.Task{task}); err != nil {
		return nil, err
	}

	return task, nil
}

// ListByProject implements store.TaskStore.ListByProject.
func (s *PostgresTaskStore) ListByProject(
	ctx context.Context,
	projectID uuid.UUID,
) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY created_at DESC`
	return s.listTasks(ctx, query, projectID)
}

// ListByUser implements store.TaskStore.ListByUser.
func (s *PostgresTaskStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`
	return s.listTasks(ctx, query, userID)
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $1, description = $2, due_date = $3, priority = $4, status = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.DueDate,
		task.Priority,
		task.Status,
		task.UpdatedAt,
		task.ID,
	)

	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task updated successfully", slog.String("task_id", task.ID.String()))
	return nil
}

// Delete implements store.TaskStore.Delete. Label attachments and
// comments cascade at the database level.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted successfully", slog.String("task_id", id.String()))
	return nil
}

// SetLabels implements store.TaskStore.SetLabels. The previous attachment
// set is replaced wholesale inside one transaction, so a failed replacement
// (e.g. an unknown label ID) rolls back to the prior set.
func (s *PostgresTaskStore) SetLabels(
	ctx context.Context,
	taskID uuid.UUID,
	labelIDs []uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.inTx(ctx, func(s *PostgresTaskStore) error {
		// Confirm the task exists before touching attachments so an unknown
		// task reports ErrTaskNotFound rather than silently clearing nothing.
		var exists bool
		err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, taskID).Scan(&exists)
		if err != nil {
			log.Error("failed to check task existence",
				slog.String("error", err.Error()),
				slog.String("task_id", taskID.String()))
			return err
		}
		if !exists {
			return store.ErrTaskNotFound
		}

		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM task_labels WHERE task_id = $1`, taskID); err != nil {
			log.Error("failed to clear task labels",
				slog.String("error", err.Error()),
				slog.String("task_id", taskID.String()))
			return err
		}

		return s.insertLabels(ctx, taskID, labelIDs)
	})
	if err != nil {
		return err
	}

	log.Debug("task labels replaced",
		slog.String("task_id", taskID.String()),
		slog.Int("count", len(labelIDs)))
	return nil
}

func (s *PostgresTaskStore) insertLabels(
	ctx context.Context,
	taskID uuid.UUID,
	labelIDs []uuid.UUID,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, labelID := range labelIDs {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO task_labels (task_id, label_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			taskID, labelID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("%w: label with ID %s not found",
					store.ErrInvalidEntity, labelID)
			}
			log.Error("failed to attach label",
				slog.String("error", err.Error()),
				slog.String("task_id", taskID.String()),
				slog.String("label_id", labelID.String()))
			return err
		}
	}

	return nil
}

func (s *PostgresTaskStore) listTasks(
	ctx context.Context,
	query string,
	arg any,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := s.scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}

	if err := s.attachLabels(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *PostgresTaskStore) scanTask(row scanner) (*domain.Task, error) {
	var task domain.Task
	var priority, status string

	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.DueDate,
		&priority,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	return &task, nil
}

// attachLabels populates the Labels field of each task with the names of
// its attached labels in a single query.
func (s *PostgresTaskStore) attachLabels(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	ids := make([]uuid.UUID, 0, len(tasks))
	byID := make(map[uuid.UUID]*domain.Task, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
		byID[task.ID] = task
	}

	query := `
		SELECT tl.task_id, l.name
		FROM task_labels tl
		JOIN labels l ON l.id = tl.label_id
		WHERE tl.task_id = ANY($1)
		ORDER BY l.name
	`

	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		log.Error("failed to query task labels", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	for rows.Next() {
		var taskID uuid.UUID
		var name string
		if err := rows.Scan(&taskID, &name); err != nil {
			log.Error("failed to scan task label row", slog.String("error", err.Error()))
			return err
		}
		if task, ok := byID[taskID]; ok {
			task.Labels = append(task.Labels, name)
		}
	}

	return rows.Err()
}
