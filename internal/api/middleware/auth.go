package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jsaputra/taskboard-api/internal/api/shared"
	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/platform/logger"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
	"github.com/jsaputra/taskboard-api/internal/store"
)

// TokenCookieName is the cookie carrying the session token when the
// deployment uses the cookie transport.
const TokenCookieName = "token"

// Rejection messages. Expired, malformed, tampered, and revoked tokens all
// share one message so the response cannot be used as an oracle for which
// check failed.
const (
	msgMissingToken = "authentication required"
	msgInvalidToken = "invalid or expired token"
)

// AuthMiddleware provides session authentication for routes. The token
// transport (bearer header or HTTP-only cookie) is fixed per deployment
// by configuration; exactly one is consulted.
type AuthMiddleware struct {
	jwtService auth.JWTService
	tokenStore store.TokenStore // nil when token persistence is disabled
	transport  string
	timeFunc   func() time.Time
}

// NewAuthMiddleware creates a new AuthMiddleware. tokenStore may be nil,
// in which case tokens are verified by signature and expiry alone and
// logout cannot revoke them server-side.
func NewAuthMiddleware(
	jwtService auth.JWTService,
	tokenStore store.TokenStore,
	transport string,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		transport:  transport,
		timeFunc:   time.Now,
	}
}

// Authenticate validates the session token from the configured transport
// and adds the user ID to the request context for authorized requests.
// Requests without a valid token are rejected before any handler runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.ExtractToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgMissingToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken), errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
			default:
				logger.FromContext(r.Context()).Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "authentication error")
			}
			return
		}

		// With persistence enabled, the durable record must still exist,
		// be unrevoked, and be unexpired. Same response as a bad signature.
		if m.tokenStore != nil {
			if err := m.checkTokenRecord(r.Context(), token); err != nil {
				if errors.Is(err, auth.ErrRevokedToken) {
					shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidToken)
					return
				}
				logger.FromContext(r.Context()).Error("failed to check token record", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "authentication error")
				return
			}
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, shared.SessionTokenContextKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// checkTokenRecord verifies the server-side record for the token.
// Returns auth.ErrRevokedToken when the record is missing, revoked, or
// expired; other errors are store failures.
func (m *AuthMiddleware) checkTokenRecord(ctx context.Context, token string) error {
	record, err := m.tokenStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return auth.ErrRevokedToken
		}
		return err
	}
	if record.Revoked || record.Expired(m.timeFunc()) {
		return auth.ErrRevokedToken
	}
	return nil
}

// ExtractToken pulls the raw token string from the configured transport.
// Returns auth.ErrMissingToken when no token was supplied.
func (m *AuthMiddleware) ExtractToken(r *http.Request) (string, error) {
	switch m.transport {
	case config.TransportCookie:
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil || cookie.Value == "" {
			return "", auth.ErrMissingToken
		}
		return cookie.Value, nil
	default:
		// Bearer token: second whitespace-separated field of the
		// Authorization header.
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			return "", auth.ErrMissingToken
		}
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", auth.ErrMissingToken
		}
		return parts[1], nil
	}
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}

// GetSessionToken extracts the raw session token the request
// authenticated with, when available.
func GetSessionToken(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(shared.SessionTokenContextKey).(string)
	return token, ok
}
