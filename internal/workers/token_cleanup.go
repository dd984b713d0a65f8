package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

const defaultCleanupInterval = time.Hour

// TokenCleanupWorker periodically removes auth token rows whose JWT lifetime
// has already passed. Expired tokens fail signature verification anyway, so
// the sweep only reclaims storage; it never changes authentication outcomes.
type TokenCleanupWorker struct {
	tokens   store.TokenRepository
	tokenTTL time.Duration
	interval time.Duration
	logger   *logger.Logger

	now func() time.Time
}

// NewTokenCleanupWorker creates a worker that sweeps tokens older than
// tokenTTL every interval. A non-positive interval falls back to one hour.
func NewTokenCleanupWorker(tokens store.TokenRepository, tokenTTL, interval time.Duration, logger *logger.Logger) *TokenCleanupWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	return &TokenCleanupWorker{
		tokens:   tokens,
		tokenTTL: tokenTTL,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run implements [Worker]. It starts the sweep loop in a background goroutine
// and returns immediately. The loop runs for the lifetime of the process.
func (w *TokenCleanupWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Dur("token_ttl", w.tokenTTL).Msg("starting token cleanup worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.sweep()
		}
	}()
}

func (w *TokenCleanupWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := w.now().Add(-w.tokenTTL)

	removed, err := w.tokens.DeleteExpiredTokens(ctx, cutoff)
	if err != nil {
		w.logger.Err(err).Str("func", "*TokenCleanupWorker.sweep").Msg("error sweeping expired tokens")
		return
	}

	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Time("cutoff", cutoff).Msg("swept expired tokens")
	}
}
