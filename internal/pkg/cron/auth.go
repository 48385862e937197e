package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/auth"
)

type AuthJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
}

func NewAuthJobs(refreshTokenRepo auth.RefreshTokenRepository) *AuthJobs {
	return &AuthJobs{refreshTokenRepo: refreshTokenRepo}
}

func (j *AuthJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", 24*time.Hour, j.PurgeExpiredRefreshTokens)
}

// PurgeExpiredRefreshTokens deletes refresh tokens past their expiry.
// Expired tokens are already unusable; this just keeps the table small.
func (j *AuthJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}

	if deleted > 0 {
		slog.Info("Cron: Purged expired refresh tokens", "count", deleted)
	}
	return nil
}
