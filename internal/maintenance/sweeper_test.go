package maintenance_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsaputra/taskboard-api/internal/domain"
	"github.com/jsaputra/taskboard-api/internal/maintenance"
	"github.com/jsaputra/taskboard-api/internal/mocks"
)

func TestTokenSweeper_DeletesExpiredTokens(t *testing.T) {
	t.Parallel()

	tokenStore := mocks.NewMockTokenStore()

	expired, err := domain.NewSessionToken(uuid.New(), "expired.token", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.NoError(t, tokenStore.Create(context.Background(), expired))

	live, err := domain.NewSessionToken(uuid.New(), "live.token", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, tokenStore.Create(context.Background(), live))

	sweeper := maintenance.NewTokenSweeper(tokenStore, 5*time.Millisecond, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	// Wait for at least one sweep to remove the expired record.
	assert.Eventually(t, func() bool {
		_, err := tokenStore.GetByToken(context.Background(), "expired.token")
		return err != nil
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancellation")
	}

	_, err = tokenStore.GetByToken(context.Background(), "live.token")
	assert.NoError(t, err, "live tokens must survive the sweep")
}
