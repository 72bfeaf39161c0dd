package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/api"
	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/mocks"
)

// requestWithParam builds a request carrying a chi URL parameter, the way
// the router would populate it.
func requestWithParam(method, target, param, value string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func jsonBody(t *testing.T, payload any) io.Reader {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func seedProfileUser(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
	t.Helper()
	user, err := domain.NewUser("alice", "alice@example.com", "secret123", "Alice", "Anderson")
	require.NoError(t, err)
	user.HashedPassword = "hashed:secret123"
	user.Password = ""
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func newUserHandler(verifierSucceeds bool) (*api.UserHandler, *mocks.MockUserStore) {
	userStore := mocks.NewMockUserStore()
	handler := api.NewUserHandler(
		userStore,
		&mocks.MockPasswordHasher{},
		&mocks.MockPasswordVerifier{ShouldSucceed: verifierSucceeds},
		config.AuthConfig{TokenTransport: config.TransportBearer},
	)
	return handler, userStore
}

func TestUserHandler_GetProfile(t *testing.T) {
	t.Parallel()

	handler, userStore := newUserHandler(true)
	user := seedProfileUser(t, userStore)

	req := requestWithParam(http.MethodGet, "/api/user/profile/"+user.ID.String(), "id", user.ID.String(), nil)
	rec := httptest.NewRecorder()
	handler.GetProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.NotContains(t, rec.Body.String(), "hashed:secret123")

	// Unknown profile is 404.
	unknown := requestWithParam(http.MethodGet, "/api/user/profile/x", "id", "9b8e7a66-0000-4000-8000-000000000000", nil)
	rec = httptest.NewRecorder()
	handler.GetProfile(rec, unknown)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	t.Parallel()

	handler, userStore := newUserHandler(true)
	user := seedProfileUser(t, userStore)

	body := jsonBody(t, map[string]string{
		"username":   "alice2",
		"email":      "alice2@example.com",
		"first_name": "Alice",
		"last_name":  "Anderson",
	})
	req := requestWithParam(http.MethodPut, "/api/user/profile/"+user.ID.String(), "id", user.ID.String(), body)
	rec := httptest.NewRecorder()
	handler.UpdateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := userStore.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice2@example.com", updated.Email)
}

func TestUserHandler_ChangePassword(t *testing.T) {
	t.Parallel()

	t.Run("verifies the current password first", func(t *testing.T) {
		t.Parallel()

		handler, userStore := newUserHandler(false)
		user := seedProfileUser(t, userStore)

		body := jsonBody(t, map[string]string{
			"current_password": "wrong-password",
			"new_password":     "newsecret456",
		})
		req := requestWithParam(http.MethodPut, "/x", "id", user.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		unchanged, err := userStore.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hashed:secret123", unchanged.HashedPassword)
	})

	t.Run("stores the new hash on success", func(t *testing.T) {
		t.Parallel()

		handler, userStore := newUserHandler(true)
		user := seedProfileUser(t, userStore)

		body := jsonBody(t, map[string]string{
			"current_password": "secret123",
			"new_password":     "newsecret456",
		})
		req := requestWithParam(http.MethodPut, "/x", "id", user.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		updated, err := userStore.GetByID(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hashed:newsecret456", updated.HashedPassword)
	})

	t.Run("rejects a short new password", func(t *testing.T) {
		t.Parallel()

		handler, userStore := newUserHandler(true)
		user := seedProfileUser(t, userStore)

		body := jsonBody(t, map[string]string{
			"current_password": "secret123",
			"new_password":     "short",
		})
		req := requestWithParam(http.MethodPut, "/x", "id", user.ID.String(), body)
		rec := httptest.NewRecorder()
		handler.ChangePassword(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_DeleteProfile(t *testing.T) {
	t.Parallel()

	handler, userStore := newUserHandler(true)
	user := seedProfileUser(t, userStore)

	req := requestWithParam(http.MethodDelete, "/x", "id", user.ID.String(), nil)
	rec := httptest.NewRecorder()
	handler.DeleteProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err := userStore.GetByID(context.Background(), user.ID)
	assert.Error(t, err)
}
