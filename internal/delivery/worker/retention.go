// Package worker contains background servers that run alongside the HTTP delivery.
package worker

import (
	"context"
	"log/slog"
	"time"

	"fitmarket/config"
	"fitmarket/internal/delivery"
	"fitmarket/internal/domain/repository"

	"go.uber.org/fx"
)

const (
	defaultPurgeInterval = time.Hour
	defaultRetentionDays = 30
)

// retentionWorker periodically deletes refresh token rows past the retention
// window, revoked or not. Validity never depends on this worker; FindValidByToken
// filters expiry and revocation on its own.
type retentionWorker struct {
	logger      *slog.Logger
	refreshRepo repository.RefreshTokenRepository

	interval  time.Duration
	retention time.Duration
	done      chan struct{}
}

// RetentionParams holds dependencies for the retention worker
type RetentionParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	RefreshRepo repository.RefreshTokenRepository
}

// NewRetentionWorker creates the token retention worker
func NewRetentionWorker(params RetentionParams) (delivery.Delivery, error) {
	interval := defaultPurgeInterval
	retentionDays := defaultRetentionDays
	if params.Config.Auth != nil {
		if params.Config.Auth.TokenPurgeInterval > 0 {
			interval = params.Config.Auth.TokenPurgeInterval
		}
		if params.Config.Auth.RefreshRetentionDays > 0 {
			retentionDays = params.Config.Auth.RefreshRetentionDays
		}
	}

	w := &retentionWorker{
		logger:      params.Logger,
		refreshRepo: params.RefreshRepo,
		interval:    interval,
		retention:   time.Duration(retentionDays) * 24 * time.Hour,
		done:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(w.done)

			return nil
		},
	})

	return w, nil
}

// Serve runs the purge loop until the worker is stopped.
func (w *retentionWorker) Serve(ctx context.Context) error {
	w.logger.Info("Starting token retention worker",
		slog.Duration("interval", w.interval),
		slog.Duration("retention", w.retention),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.purge(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.done:
			w.logger.Info("Stopping token retention worker")

			return nil
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *retentionWorker) purge(ctx context.Context) {
	cutoff := time.Now().Add(-w.retention)

	deleted, err := w.refreshRepo.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		w.logger.Error("Token retention purge failed", slog.Any("error", err))

		return
	}

	if deleted > 0 {
		w.logger.Info("Purged refresh tokens past retention",
			slog.Int64("deleted", deleted),
			slog.Time("cutoff", cutoff),
		)
	}
}
