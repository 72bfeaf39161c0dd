package api

import (
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// TaskHandler handles task CRUD requests. Tasks live under a project and
// inherit the project owner.
type TaskHandler struct {
	taskStore    store.TaskStore
	projectStore store.ProjectStore
	userStore    store.UserStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(
	taskStore store.TaskStore,
	projectStore store.ProjectStore,
	userStore store.UserStore,
) *TaskHandler {
	return &TaskHandler{
		taskStore:    taskStore,
		projectStore: projectStore,
		userStore:    userStore,
	}
}

// Create handles POST /tasks/project/{projectId}. The project must exist;
// the task is owned by the project's owner.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	projectID, ok := getPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projectStore.GetByID(r.Context(), projectID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task, err := domain.NewTask(project.ID, project.UserID, req.Title, req.Description,
		req.DueDate, domain.TaskPriority(req.Priority), domain.TaskStatus(req.Status))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid task data: "+err.Error())
		return
	}

	// Task row and label attachments go in as one transaction: a bad
	// label ID leaves no task behind.
	if err := h.taskStore.Create(r.Context(), task, req.LabelIDs); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if len(req.LabelIDs) > 0 {
		task, err = h.taskStore.GetByID(r.Context(), task.ID)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// ListByProject handles GET /tasks/project/{projectId}. The project must
// exist; tasks are returned with their label names attached.
func (h *TaskHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := getPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	if _, err := h.projectStore.GetByID(r.Context(), projectID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	tasks, err := h.taskStore.ListByProject(r.Context(), projectID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// ListByUser handles GET /tasks/user/{userId}. The user must exist.
func (h *TaskHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getPathUUID(w, r, "userId")
	if !ok {
		return
	}

	if _, err := h.userStore.GetByID(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	tasks, err := h.taskStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// Get handles GET /tasks/{taskId}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "taskId")
	if !ok {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT /tasks/{taskId}. A label_ids field, when present,
// replaces the task's label set wholesale.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "taskId")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	task.Title = req.Title
	task.Description = req.Description
	task.Status = domain.TaskStatus(req.Status)
	task.Priority = domain.TaskPriority(req.Priority)
	task.DueDate = req.DueDate

	if err := task.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if req.LabelIDs != nil {
		if err := h.taskStore.SetLabels(r.Context(), task.ID, *req.LabelIDs); err != nil {
			HandleAPIError(w, r, err)
			return
		}
		task, err = h.taskStore.GetByID(r.Context(), task.ID)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{taskId}. Join rows and comments go with it
// via cascading foreign keys.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "taskId")
	if !ok {
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
