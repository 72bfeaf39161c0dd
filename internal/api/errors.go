package api

import (
	"errors"
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type. This is the single translation point between component
// errors and the HTTP surface; nothing crosses the boundary unmapped.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors. Invalid, expired, missing and revoked tokens
	// all collapse to 401.
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrRevokedToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrRevokedToken):
		return "invalid or expired token"
	case errors.Is(err, store.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, store.ErrProjectNotFound):
		return "project not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "task not found"
	case errors.Is(err, store.ErrLabelNotFound):
		return "label not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "comment not found"
	case errors.Is(err, store.ErrNotFound):
		return "resource not found"
	case errors.Is(err, store.ErrUserExists):
		return "username or email already exists"
	case errors.Is(err, store.ErrLabelExists):
		return "label name already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "resource already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return "referenced resource does not exist"
	default:
		return "internal server error"
	}
}

// HandleAPIError writes the mapped status and safe message for err,
// logging the underlying error for server-side failures.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
