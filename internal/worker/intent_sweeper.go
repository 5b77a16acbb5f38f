// Package worker holds the background loops that keep process state tidy.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/eggypro/storefront-gateway/internal/application"
)

// IntentSweeper reclaims payment intents that were created but never
// confirmed. Abandoned checkouts would otherwise accumulate in the
// registry for the life of the process.
type IntentSweeper struct {
	registry application.IntentRegistry
	interval time.Duration
	ttl      time.Duration
	logger   *slog.Logger
}

func NewIntentSweeper(
	registry application.IntentRegistry,
	interval time.Duration,
	ttl time.Duration,
	logger *slog.Logger,
) *IntentSweeper {
	return &IntentSweeper{
		registry: registry,
		interval: interval,
		ttl:      ttl,
		logger:   logger,
	}
}

func (w *IntentSweeper) Start(ctx context.Context) {
	w.logger.Info("intent sweeper started", "interval", w.interval, "ttl", w.ttl)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("intent sweeper stopping")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *IntentSweeper) sweep() {
	cutoff := time.Now().Add(-w.ttl)

	purged := w.registry.PurgeOlderThan(cutoff)
	if purged > 0 {
		w.logger.Info("purged abandoned payment intents", "count", purged)
	}
}
