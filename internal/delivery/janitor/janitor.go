// Package janitor periodically removes expired sessions.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"koostory/config"
	"koostory/internal/delivery"
	"koostory/internal/domain/lifecycle"
	"koostory/internal/usecase"
	"koostory/internal/util"

	"go.uber.org/fx"
)

type janitor struct {
	sessions usecase.SessionUsecase
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// JanitorParams holds dependencies for the session janitor, injected by Fx.
type JanitorParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Sessions usecase.SessionUsecase
}

// New creates the janitor. It runs as one of the process deliveries and stops with the app.
func New(params JanitorParams) delivery.Delivery {
	j := newJanitor(params.Sessions, params.Config.Session.CleanupInterval, params.Logger)

	params.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

func newJanitor(sessions usecase.SessionUsecase, interval time.Duration, logger *slog.Logger) *janitor {
	return &janitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Serve sweeps once per interval until stopped. A failed sweep is logged and retried
// on the next tick.
func (j *janitor) Serve(ctx context.Context) error {
	defer close(j.doneCh)

	j.logger.Info("Starting session janitor", slog.String("interval", util.FormatDuration(j.interval)))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stopCh:
			return nil
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *janitor) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := j.sessions.CleanupExpired(sweepCtx); err != nil {
		j.logger.Warn("Session sweep failed", slog.Any("error", err))
	}
}

func (j *janitor) stop(ctx context.Context) error {
	j.stopOnce.Do(func() { close(j.stopCh) })

	select {
	case <-j.doneCh:
	case <-ctx.Done():
	}
	j.logger.Info("Session janitor stopped")

	return nil
}
