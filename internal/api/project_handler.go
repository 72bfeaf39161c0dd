package api

import (
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// ProjectHandler handles project CRUD requests.
type ProjectHandler struct {
	projectStore store.ProjectStore
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectStore store.ProjectStore) *ProjectHandler {
	return &ProjectHandler{projectStore: projectStore}
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if projects == nil {
		projects = []*domain.Project{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projects)
}

// Create handles POST /projects. The project is owned by the authenticated
// user.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := domain.NewProject(userID, req.Name, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid project data: "+err.Error())
		return
	}

	if err := h.projectStore.Create(r.Context(), project); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, project)
}

// Get handles GET /projects/{projectId}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	project, err := h.projectStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// Update handles PUT /projects/{projectId}.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	project, err := h.projectStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.StartDate = req.StartDate
	project.EndDate = req.EndDate

	if err := project.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid project data: "+err.Error())
		return
	}

	if err := h.projectStore.Update(r.Context(), project); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, project)
}

// Delete handles DELETE /projects/{projectId}. Tasks under the project are
// removed by the cascading foreign key.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "projectId")
	if !ok {
		return
	}

	if err := h.projectStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}
