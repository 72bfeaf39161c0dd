package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsaputra/taskboard-api/internal/api"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
	"github.com/jsaputra/taskboard-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"revoked token", auth.ErrRevokedToken, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"project not found", store.ErrProjectNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("failed to get task: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"user exists", store.ErrUserExists, http.StatusConflict},
		{"label exists", store.ErrLabelExists, http.StatusConflict},
		{"invalid reference", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverLeaksInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection refused on 10.0.0.5:5432")
	msg := api.GetSafeErrorMessage(internal)
	assert.Equal(t, "internal server error", msg)
	assert.NotContains(t, msg, "10.0.0.5")

	// Auth failures collapse to one message regardless of cause.
	assert.Equal(t,
		api.GetSafeErrorMessage(auth.ErrExpiredToken),
		api.GetSafeErrorMessage(auth.ErrInvalidToken))
}
