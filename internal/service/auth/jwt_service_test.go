package auth_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/config"
	"github.com/jsaputra/taskboard-api/internal/service/auth"
)

const testSecret = "test-secret-key-thats-at-least-32-chars"

func TestNewJWTService_SecretValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{
			name:    "valid secret",
			secret:  testSecret,
			wantErr: false,
		},
		{
			name:    "empty secret",
			secret:  "",
			wantErr: true,
		},
		{
			name:    "short secret",
			secret:  "too-short",
			wantErr: true,
		},
		{
			name:    "exactly 32 chars",
			secret:  strings.Repeat("a", 32),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, err := auth.NewJWTService(config.AuthConfig{
				JWTSecret:            tt.secret,
				TokenLifetimeMinutes: 60,
			})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc := auth.NewJWTServiceForTest(testSecret, time.Hour, nil)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(context.Background(), userID, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_TokenIDsAreUnique(t *testing.T) {
	t.Parallel()

	svc := auth.NewJWTServiceForTest(testSecret, time.Hour, nil)
	userID := uuid.New()

	first, _, err := svc.GenerateToken(context.Background(), userID, "a@example.com")
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(context.Background(), userID, "a@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Expiry(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	svc := auth.NewJWTServiceForTest(testSecret, time.Hour, func() time.Time { return now })

	token, expiresAt, err := svc.GenerateToken(context.Background(), uuid.New(), "")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(time.Hour), expiresAt)

	// Just before expiry the token still validates.
	now = issuedAt.Add(59 * time.Minute)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.NoError(t, err)

	// At or after expiry it does not.
	now = issuedAt.Add(time.Hour + time.Second)
	_, err = svc.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestJWTService_ClockSkewFromConfig(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt

	// Default configuration carries no leeway, so expiry is absolute: the
	// token is rejected at the expiry instant itself.
	strict, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	restore := auth.SetTimeFunc(strict, func() time.Time { return now })
	defer restore()

	token, expiresAt, err := strict.GenerateToken(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	now = expiresAt
	_, err = strict.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)

	// A configured skew tolerates drift up to the window, no further.
	lenient, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
		ClockSkewSeconds:     120,
	})
	require.NoError(t, err)
	restoreLenient := auth.SetTimeFunc(lenient, func() time.Time { return now })
	defer restoreLenient()

	now = expiresAt.Add(time.Minute)
	_, err = lenient.ValidateToken(context.Background(), token)
	assert.NoError(t, err)

	now = expiresAt.Add(3 * time.Minute)
	_, err = lenient.ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	t.Parallel()

	svc := auth.NewJWTServiceForTest(testSecret, time.Hour, nil)

	valid, _, err := svc.GenerateToken(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	otherSvc := auth.NewJWTServiceForTest(strings.Repeat("b", 32), time.Hour, nil)
	foreign, _, err := otherSvc.GenerateToken(context.Background(), uuid.New(), "")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "malformed token",
			token: "not-a-jwt",
		},
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "tampered payload",
			token: tamper(t, valid),
		},
		{
			name:  "signed with a different key",
			token: foreign,
		},
		{
			name:  "unsigned alg none token",
			token: "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJhYmMifQ.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

// tamper flips a character in the payload segment of a JWT so the signature
// no longer matches.
func tamper(t *testing.T, token string) string {
	t.Helper()

	parts := strings.SplitN(token, ".", 3)
	require.Len(t, parts, 3)

	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	parts[1] = string(payload)

	return strings.Join(parts, ".")
}
