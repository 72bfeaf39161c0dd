package api

import (
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// UserHandler handles profile management. Routes carry the target user ID
// as a path parameter; the ownership middleware has already verified it
// matches the authenticated user before these handlers run.
type UserHandler struct {
	userStore        store.UserStore
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	authConfig       config.AuthConfig
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	authConfig config.AuthConfig,
) *UserHandler {
	return &UserHandler{
		userStore:        userStore,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
	}
}

// GetProfile handles GET /user/profile/{id}.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateProfile handles PUT /user/profile/{id}. A username or email already
// taken by another account yields 409.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	user.Username = req.Username
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName

	if err := h.userStore.Update(r.Context(), user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// ChangePassword handles PUT /user/change-password/{id}. The current
// password must verify against the stored hash; a mismatch yields 401.
// Already-issued sessions remain valid.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.CurrentPassword); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "current password is incorrect")
		return
	}

	hashed, err := h.passwordHasher.Hash(req.NewPassword)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"failed to update password", err)
		return
	}
	user.HashedPassword = hashed

	if err := h.userStore.Update(r.Context(), user); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "password updated"})
}

// DeleteProfile handles DELETE /user/profile/{id}. Owned projects, tasks,
// comments and session tokens are removed by cascading foreign keys, and
// the session cookie is cleared.
func (h *UserHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if h.authConfig.TokenTransport == config.TransportCookie {
		clearSessionCookie(w)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "account deleted"})
}
