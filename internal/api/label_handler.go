package api

import (
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// LabelHandler handles label CRUD requests.
type LabelHandler struct {
	labelStore store.LabelStore
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelStore store.LabelStore) *LabelHandler {
	return &LabelHandler{labelStore: labelStore}
}

// List handles GET /labels.
func (h *LabelHandler) List(w http.ResponseWriter, r *http.Request) {
	labels, err := h.labelStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if labels == nil {
		labels = []*domain.Label{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, labels)
}

// Create handles POST /labels. A task_id in the payload attaches the new
// label to that task in the same operation; a duplicate name yields 409 and
// an unknown task 400.
func (h *LabelHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLabelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	label, err := domain.NewLabel(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid label data: "+err.Error())
		return
	}

	if err := h.labelStore.Create(r.Context(), label, req.TaskID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, label)
}

// Get handles GET /labels/{labelId}.
func (h *LabelHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "labelId")
	if !ok {
		return
	}

	label, err := h.labelStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, label)
}

// Update handles PUT /labels/{labelId}.
func (h *LabelHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "labelId")
	if !ok {
		return
	}

	var req UpdateLabelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	label, err := h.labelStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	label.Name = req.Name

	if err := h.labelStore.Update(r.Context(), label); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, label)
}

// Delete handles DELETE /labels/{labelId}. Join rows referencing the label
// are removed by the cascading foreign key.
func (h *LabelHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "labelId")
	if !ok {
		return
	}

	if err := h.labelStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
