package profiler

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/Harish-SS56/Ai-Verse-Hackathon/internal/models"
)

// WaitHealthy polls p.HealthCheck with exponential backoff until it succeeds,
// ctx is done or maxElapsed has passed.
func WaitHealthy(ctx context.Context, p Profiler, maxElapsed time.Duration, logger *zap.Logger) (models.Health, error) {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = 200 * time.Millisecond
	expo.MaxInterval = 5 * time.Second
	expo.MaxElapsedTime = maxElapsed

	var health models.Health
	attempt := 0
	op := func() error {
		attempt++
		h, err := p.HealthCheck(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			logger.Warn("Profiler not ready", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		health = h
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(expo, ctx)); err != nil {
		return models.Health{}, fmt.Errorf("profiler not healthy after %d attempts: %w", attempt, err)
	}
	logger.Info("Profiler ready",
		zap.String("status", health.Status),
		zap.String("agent", health.Agent),
		zap.String("version", health.Version))
	return health, nil
}
