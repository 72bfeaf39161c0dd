package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsaputra/taskboard-api/internal/store"
)

// TokenSweeper periodically deletes expired session token rows so the table
// does not grow without bound. Revocation correctness does not depend on it;
// expired tokens are rejected by the verifier regardless.
type TokenSweeper struct {
	tokenStore store.TokenStore
	interval   time.Duration
	logger     *slog.Logger
	timeFunc   func() time.Time
}

// NewTokenSweeper creates a sweeper that runs every interval.
func NewTokenSweeper(tokenStore store.TokenStore, interval time.Duration, logger *slog.Logger) *TokenSweeper {
	return &TokenSweeper{
		tokenStore: tokenStore,
		interval:   interval,
		logger:     logger,
		timeFunc:   time.Now,
	}
}

// Run sweeps on the configured interval until ctx is cancelled. It blocks;
// callers start it in its own goroutine.
func (s *TokenSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("token sweeper started", "interval", s.interval.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *TokenSweeper) sweep(ctx context.Context) {
	deleted, err := s.tokenStore.DeleteExpired(ctx, s.timeFunc().UTC())
	if err != nil {
		s.logger.Error("failed to delete expired session tokens", "error", err)
		return
	}
	if deleted > 0 {
		s.logger.Debug("deleted expired session tokens", "count", deleted)
	}
}
