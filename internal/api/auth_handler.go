package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsaputra/taskboard-api/internal/api/middleware"
	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// msgInvalidCredentials is returned for both unknown-email and
// wrong-password failures so the response does not reveal which one
// occurred.
const msgInvalidCredentials = "invalid credentials"

// AuthHandler handles registration, login and logout requests.
type AuthHandler struct {
	userStore        store.UserStore
	tokenStore       store.TokenStore // nil when token persistence is disabled
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	authConfig       config.AuthConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// tokenStore may be nil, in which case issued tokens are not persisted and
// logout only clears the client-side cookie.
func NewAuthHandler(
	userStore store.UserStore,
	tokenStore store.TokenStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	authConfig config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		tokenStore:       tokenStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		authConfig:       authConfig,
	}
}

// Register handles the /auth/register endpoint. A duplicate username or
// email yields 409; the unique constraints in the database are the
// authoritative signal, the existence pre-check only short-circuits the
// common case.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	exists, err := h.userStore.ExistsByUsernameOrEmail(r.Context(), req.Username, req.Email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if exists {
		shared.RespondWithError(w, r, http.StatusConflict, "username or email already exists")
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid user data: "+err.Error())
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"failed to create user", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "username or email already exists")
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	h.issueSession(w, r, user, http.StatusCreated, true)
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	h.issueSession(w, r, user, http.StatusOK, false)
}

// Logout handles the /auth/logout endpoint. It is idempotent: the session
// cookie is cleared and the persisted token record, if any, is revoked.
// Logging out an already-revoked session still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.authConfig.TokenTransport == config.TransportCookie {
		clearSessionCookie(w)
	}

	if h.tokenStore != nil {
		if token, ok := middleware.GetSessionToken(r); ok {
			if err := h.tokenStore.Revoke(r.Context(), token); err != nil &&
				!errors.Is(err, store.ErrTokenNotFound) {
				HandleAPIError(w, r, err)
				return
			}
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "logged out"})
}

// issueSession generates a JWT for the user, persists it when a token store
// is configured, and delivers it on the configured transport. Registration
// passes includeAccount to return the created account alongside the session;
// the user's JSON shape redacts both password fields.
func (h *AuthHandler) issueSession(
	w http.ResponseWriter,
	r *http.Request,
	user *domain.User,
	status int,
	includeAccount bool,
) {
	token, expiresAt, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"failed to generate authentication token", err)
		return
	}

	if h.tokenStore != nil {
		record, err := domain.NewSessionToken(user.ID, token, expiresAt)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"failed to create session", err)
			return
		}
		if err := h.tokenStore.Create(r.Context(), record); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"failed to create session", err)
			return
		}
	}

	resp := AuthResponse{
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if includeAccount {
		resp.User = user
	}

	switch h.authConfig.TokenTransport {
	case config.TransportCookie:
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.TokenCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	default:
		resp.Token = token
	}

	slog.Debug("session issued", "user_id", user.ID, "transport", h.authConfig.TokenTransport)
	shared.RespondWithJSON(w, r, status, resp)
}

// clearSessionCookie expires the session cookie on the client.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
