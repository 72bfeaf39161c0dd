package api

import (
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// CommentHandler handles comment CRUD requests. The author of a new comment
// is always the authenticated user.
type CommentHandler struct {
	commentStore store.CommentStore
	taskStore    store.TaskStore
	userStore    store.UserStore
}

// NewCommentHandler creates a new CommentHandler with the given dependencies.
func NewCommentHandler(
	commentStore store.CommentStore,
	taskStore store.TaskStore,
	userStore store.UserStore,
) *CommentHandler {
	return &CommentHandler{
		commentStore: commentStore,
		taskStore:    taskStore,
		userStore:    userStore,
	}
}

// Create handles POST /comments. The target task must exist.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.taskStore.GetByID(r.Context(), req.TaskID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment, err := domain.NewComment(req.TaskID, userID, req.Body)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid comment data: "+err.Error())
		return
	}

	if err := h.commentStore.Create(r.Context(), comment); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, comment)
}

// ListByTask handles GET /comments/task/{taskId}. The task must exist.
func (h *CommentHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := getPathUUID(w, r, "taskId")
	if !ok {
		return
	}

	if _, err := h.taskStore.GetByID(r.Context(), taskID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.commentStore.ListByTask(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// ListByUser handles GET /comments/user/{userId}. The user must exist.
func (h *CommentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := getPathUUID(w, r, "userId")
	if !ok {
		return
	}

	if _, err := h.userStore.GetByID(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.commentStore.ListByUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// Get handles GET /comments/{commentId}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "commentId")
	if !ok {
		return
	}

	comment, err := h.commentStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// Update handles PUT /comments/{commentId}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "commentId")
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comment, err := h.commentStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comment.Body = req.Body

	if err := h.commentStore.Update(r.Context(), comment); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, comment)
}

// Delete handles DELETE /comments/{commentId}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "commentId")
	if !ok {
		return
	}

	if err := h.commentStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
