package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/domain"
)

func TestNewTask_Defaults(t *testing.T) {
	t.Parallel()

	task, err := domain.NewTask(uuid.New(), uuid.New(), "write report", "", nil, "", "")
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusTodo, task.Status)
	assert.Equal(t, domain.TaskPriorityMedium, task.Priority)
	assert.Nil(t, task.DueDate)
}

func TestNewTask_Validation(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name      string
		projectID uuid.UUID
		userID    uuid.UUID
		title     string
		priority  domain.TaskPriority
		status    domain.TaskStatus
		wantErr   error
	}{
		{
			name:      "valid task",
			projectID: projectID,
			userID:    userID,
			title:     "write report",
			priority:  domain.TaskPriorityHigh,
			status:    domain.TaskStatusInProgress,
		},
		{
			name:      "missing project",
			projectID: uuid.Nil,
			userID:    userID,
			title:     "write report",
			wantErr:   domain.ErrEmptyTaskProjectID,
		},
		{
			name:      "missing user",
			projectID: projectID,
			userID:    uuid.Nil,
			title:     "write report",
			wantErr:   domain.ErrEmptyTaskUserID,
		},
		{
			name:      "blank title",
			projectID: projectID,
			userID:    userID,
			title:     "  ",
			wantErr:   domain.ErrEmptyTaskTitle,
		},
		{
			name:      "unknown status",
			projectID: projectID,
			userID:    userID,
			title:     "write report",
			status:    domain.TaskStatus("archived"),
			wantErr:   domain.ErrInvalidTaskStatus,
		},
		{
			name:      "unknown priority",
			projectID: projectID,
			userID:    userID,
			title:     "write report",
			priority:  domain.TaskPriority("urgent"),
			wantErr:   domain.ErrInvalidTaskPriority,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			task, err := domain.NewTask(tt.projectID, tt.userID, tt.title, "", nil, tt.priority, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, task.Status)
			assert.Equal(t, tt.priority, task.Priority)
		})
	}
}
