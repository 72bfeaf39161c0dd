package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/api"
	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/mocks"
	"github.com/jsaputra/taskboard-api/internal/store"
)

func bearerAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-secret-key-thats-at-least-32-chars",
		TokenLifetimeMinutes: 60,
		TokenTransport:       config.TransportBearer,
		PersistTokens:        true,
	}
}

type authHandlerDeps struct {
	userStore  *mocks.MockUserStore
	tokenStore *mocks.MockTokenStore
	jwtService *mocks.MockJWTService
	verifier   *mocks.MockPasswordVerifier
}

func newAuthHandler(t *testing.T, cfg config.AuthConfig) (*api.AuthHandler, *authHandlerDeps) {
	t.Helper()

	deps := &authHandlerDeps{
		userStore:  mocks.NewMockUserStore(),
		tokenStore: mocks.NewMockTokenStore(),
		jwtService: &mocks.MockJWTService{
			Token:     "signed.session.token",
			ExpiresAt: time.Now().Add(time.Hour),
		},
		verifier: &mocks.MockPasswordVerifier{ShouldSucceed: true},
	}

	handler := api.NewAuthHandler(
		deps.userStore,
		deps.tokenStore,
		deps.jwtService,
		&mocks.MockPasswordHasher{},
		deps.verifier,
		cfg,
	)
	return handler, deps
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func validRegisterPayload() map[string]string {
	return map[string]string{
		"username":   "alice",
		"email":      "alice@example.com",
		"password":   "secret123",
		"first_name": "Alice",
		"last_name":  "Anderson",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates user and issues session", func(t *testing.T) {
		t.Parallel()

		handler, deps := newAuthHandler(t, bearerAuthConfig())
		rec := postJSON(t, handler.Register, "/api/auth/register", validRegisterPayload())

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.session.token", resp.Token)
		assert.NotEqual(t, uuid.Nil, resp.UserID)

		// The created account rides along with the session.
		require.NotNil(t, resp.User)
		assert.Equal(t, resp.UserID, resp.User.ID)
		assert.Equal(t, "alice", resp.User.Username)
		assert.Equal(t, "alice@example.com", resp.User.Email)
		assert.Equal(t, "Alice", resp.User.FirstName)
		assert.Equal(t, "Anderson", resp.User.LastName)

		// The raw body carries the account object and no password material.
		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		require.Contains(t, raw, "user")
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "secret123")
		assert.NotContains(t, rec.Body.String(), "hashed:")

		created, err := deps.userStore.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", created.Username)
		assert.Equal(t, "hashed:secret123", created.HashedPassword)
		assert.Empty(t, created.Password)

		// The issued token was persisted for later revocation.
		record, err := deps.tokenStore.GetByToken(context.Background(), "signed.session.token")
		require.NoError(t, err)
		assert.Equal(t, created.ID, record.UserID)
	})

	t.Run("duplicate username or email conflicts", func(t *testing.T) {
		t.Parallel()

		handler, deps := newAuthHandler(t, bearerAuthConfig())
		existing, err := domain.NewUser("alice", "alice@example.com", "secret123", "A", "A")
		require.NoError(t, err)
		require.NoError(t, deps.userStore.Create(context.Background(), existing))

		rec := postJSON(t, handler.Register, "/api/auth/register", validRegisterPayload())

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "already exists")
	})

	t.Run("concurrent duplicate surfaces from the unique constraint", func(t *testing.T) {
		t.Parallel()

		handler, deps := newAuthHandler(t, bearerAuthConfig())
		// The fast-path check misses; the insert itself reports the
		// violation, as it does when two registrations race.
		deps.userStore.ExistsByUsernameOrEmailFn = func(ctx context.Context, username, email string) (bool, error) {
			return false, nil
		}
		deps.userStore.CreateFn = func(ctx context.Context, user *domain.User) error {
			return store.ErrUserExists
		}

		rec := postJSON(t, handler.Register, "/api/auth/register", validRegisterPayload())

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			mutate func(map[string]string)
		}{
			{
				name:   "short password",
				mutate: func(p map[string]string) { p["password"] = "short" },
			},
			{
				name:   "bad email",
				mutate: func(p map[string]string) { p["email"] = "not-an-email" },
			},
			{
				name:   "missing username",
				mutate: func(p map[string]string) { delete(p, "username") },
			},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				handler, _ := newAuthHandler(t, bearerAuthConfig())
				payload := validRegisterPayload()
				tt.mutate(payload)

				rec := postJSON(t, handler.Register, "/api/auth/register", payload)
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Parallel()

	seedUser := func(t *testing.T, deps *authHandlerDeps) *domain.User {
		t.Helper()
		user, err := domain.NewUser("alice", "alice@example.com", "secret123", "A", "A")
		require.NoError(t, err)
		user.HashedPassword = "hashed:secret123"
		user.Password = ""
		require.NoError(t, deps.userStore.Create(context.Background(), user))
		return user
	}

	t.Run("valid credentials issue a session", func(t *testing.T) {
		t.Parallel()

		handler, deps := newAuthHandler(t, bearerAuthConfig())
		user := seedUser(t, deps)

		rec := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.UserID)
		assert.Equal(t, "signed.session.token", resp.Token)
		assert.False(t, resp.ExpiresAt.IsZero())
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		t.Parallel()

		handler, deps := newAuthHandler(t, bearerAuthConfig())
		seedUser(t, deps)
		deps.verifier.ShouldSucceed = false

		unknownEmail := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "nobody@example.com",
			"password": "secret123",
		})
		wrongPassword := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "wrong-password",
		})

		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)

		var a, b shared.ErrorResponse
		require.NoError(t, json.Unmarshal(unknownEmail.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(wrongPassword.Body.Bytes(), &b))
		assert.Equal(t, a.Error, b.Error)
		assert.Equal(t, "invalid credentials", a.Error)
	})

	t.Run("cookie transport sets the session cookie", func(t *testing.T) {
		t.Parallel()

		cfg := bearerAuthConfig()
		cfg.TokenTransport = config.TransportCookie
		handler, deps := newAuthHandler(t, cfg)
		seedUser(t, deps)

		rec := postJSON(t, handler.Login, "/api/auth/login", map[string]string{
			"email":    "alice@example.com",
			"password": "secret123",
		})

		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, "signed.session.token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		// The raw token travels in the cookie only.
		var resp api.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Token)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Parallel()

	t.Run("revokes the presented token", func(t *testing.T) {
		t.Parallel()

		handler, deps := newAuthHandler(t, bearerAuthConfig())
		userID := uuid.New()
		record, err := domain.NewSessionToken(userID, "signed.session.token", time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, deps.tokenStore.Create(context.Background(), record))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		ctx := context.WithValue(req.Context(), shared.SessionTokenContextKey, "signed.session.token")
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()

		handler.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		stored, err := deps.tokenStore.GetByToken(context.Background(), "signed.session.token")
		require.NoError(t, err)
		assert.True(t, stored.Revoked)
	})

	t.Run("idempotent without an active session", func(t *testing.T) {
		t.Parallel()

		handler, _ := newAuthHandler(t, bearerAuthConfig())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		handler.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("clears the cookie on the cookie transport", func(t *testing.T) {
		t.Parallel()

		cfg := bearerAuthConfig()
		cfg.TokenTransport = config.TransportCookie
		handler, _ := newAuthHandler(t, cfg)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		handler.Logout(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})
}
