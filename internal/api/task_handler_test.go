package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/api"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/mocks"
	"github.com/jsaputra/taskboard-api/internal/store"
)

type taskHandlerDeps struct {
	taskStore    *mocks.MockTaskStore
	projectStore *mocks.MockProjectStore
	userStore    *mocks.MockUserStore
}

func newTaskHandler() (*api.TaskHandler, *taskHandlerDeps) {
	deps := &taskHandlerDeps{
		taskStore:    mocks.NewMockTaskStore(),
		projectStore: mocks.NewMockProjectStore(),
		userStore:    mocks.NewMockUserStore(),
	}
	return api.NewTaskHandler(deps.taskStore, deps.projectStore, deps.userStore), deps
}

func seedProject(t *testing.T, projectStore *mocks.MockProjectStore) *domain.Project {
	t.Helper()
	project, err := domain.NewProject(uuid.New(), "launch", "", nil, nil)
	require.NoError(t, err)
	require.NoError(t, projectStore.Create(context.Background(), project))
	return project
}

func TestTaskHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("task inherits the project owner", func(t *testing.T) {
		t.Parallel()

		handler, deps := newTaskHandler()
		project := seedProject(t, deps.projectStore)

		body := jsonBody(t, map[string]any{
			"title":    "ship the release",
			"priority": "high",
		})
		req := requestWithParam(http.MethodPost, "/x", "projectId", project.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var created domain.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, project.ID, created.ProjectID)
		assert.Equal(t, project.UserID, created.UserID)
		assert.Equal(t, domain.TaskPriorityHigh, created.Priority)
		assert.Equal(t, domain.TaskStatusTodo, created.Status)
	})

	t.Run("labels ride in the create call", func(t *testing.T) {
		t.Parallel()

		handler, deps := newTaskHandler()
		project := seedProject(t, deps.projectStore)

		labelID := uuid.New()
		var createdLabels []uuid.UUID
		deps.taskStore.CreateFn = func(ctx context.Context, task *domain.Task, labelIDs []uuid.UUID) error {
			createdLabels = labelIDs
			deps.taskStore.Tasks[task.ID] = task
			return nil
		}
		deps.taskStore.SetLabelsFn = func(ctx context.Context, taskID uuid.UUID, labelIDs []uuid.UUID) error {
			t.Fatal("labels must be attached by the create call itself")
			return nil
		}

		body := jsonBody(t, map[string]any{
			"title":     "tagged",
			"label_ids": []string{labelID.String()},
		})
		req := requestWithParam(http.MethodPost, "/x", "projectId", project.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, []uuid.UUID{labelID}, createdLabels)
	})

	t.Run("unknown label leaves no task behind", func(t *testing.T) {
		t.Parallel()

		handler, deps := newTaskHandler()
		project := seedProject(t, deps.projectStore)

		deps.taskStore.CreateFn = func(ctx context.Context, task *domain.Task, labelIDs []uuid.UUID) error {
			return store.ErrInvalidEntity
		}

		body := jsonBody(t, map[string]any{
			"title":     "half-written",
			"label_ids": []string{uuid.NewString()},
		})
		req := requestWithParam(http.MethodPost, "/x", "projectId", project.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, deps.taskStore.Tasks)
	})

	t.Run("unknown project is 404", func(t *testing.T) {
		t.Parallel()

		handler, _ := newTaskHandler()
		body := jsonBody(t, map[string]any{"title": "orphan"})
		req := requestWithParam(http.MethodPost, "/x", "projectId", uuid.NewString(), body)
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		t.Parallel()

		handler, deps := newTaskHandler()
		project := seedProject(t, deps.projectStore)

		body := jsonBody(t, map[string]any{"title": "bad", "status": "archived"})
		req := requestWithParam(http.MethodPost, "/x", "projectId", project.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskHandler_ListByProject(t *testing.T) {
	t.Parallel()

	handler, deps := newTaskHandler()
	project := seedProject(t, deps.projectStore)

	task, err := domain.NewTask(project.ID, project.UserID, "first", "", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, deps.taskStore.Create(context.Background(), task, nil))

	req := requestWithParam(http.MethodGet, "/x", "projectId", project.ID.String(), nil)
	rec := httptest.NewRecorder()
	handler.ListByProject(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []*domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Title)

	// Absent project is 404, not an empty list.
	req = requestWithParam(http.MethodGet, "/x", "projectId", uuid.NewString(), nil)
	rec = httptest.NewRecorder()
	handler.ListByProject(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandler_ListByUser(t *testing.T) {
	t.Parallel()

	handler, deps := newTaskHandler()
	user := seedProfileUser(t, deps.userStore)
	project := seedProject(t, deps.projectStore)

	task, err := domain.NewTask(project.ID, user.ID, "mine", "", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, deps.taskStore.Create(context.Background(), task, nil))

	req := requestWithParam(http.MethodGet, "/x", "userId", user.ID.String(), nil)
	rec := httptest.NewRecorder()
	handler.ListByUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var tasks []*domain.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)

	// Absent user is 404.
	req = requestWithParam(http.MethodGet, "/x", "userId", uuid.NewString(), nil)
	rec = httptest.NewRecorder()
	handler.ListByUser(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTaskHandler_Update(t *testing.T) {
	t.Parallel()

	handler, deps := newTaskHandler()
	project := seedProject(t, deps.projectStore)

	task, err := domain.NewTask(project.ID, project.UserID, "draft", "", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, deps.taskStore.Create(context.Background(), task, nil))

	labelID := uuid.New()
	var setLabels []uuid.UUID
	deps.taskStore.SetLabelsFn = func(ctx context.Context, taskID uuid.UUID, labelIDs []uuid.UUID) error {
		setLabels = labelIDs
		return nil
	}

	body := jsonBody(t, map[string]any{
		"title":     "final",
		"status":    "done",
		"priority":  "low",
		"label_ids": []string{labelID.String()},
	})
	req := requestWithParam(http.MethodPut, "/x", "taskId", task.ID.String(), body)
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := deps.taskStore.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)
	assert.Equal(t, []uuid.UUID{labelID}, setLabels)
}

func TestTaskHandler_Delete(t *testing.T) {
	t.Parallel()

	handler, deps := newTaskHandler()
	project := seedProject(t, deps.projectStore)

	task, err := domain.NewTask(project.ID, project.UserID, "doomed", "", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, deps.taskStore.Create(context.Background(), task, nil))

	req := requestWithParam(http.MethodDelete, "/x", "taskId", task.ID.String(), nil)
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Deleting again is 404.
	rec = httptest.NewRecorder()
	handler.Delete(rec, requestWithParam(http.MethodDelete, "/x", "taskId", task.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
