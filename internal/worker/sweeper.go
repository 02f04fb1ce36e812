package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/veerendra4401/hookwatch/internal/retention"
	"github.com/veerendra4401/hookwatch/internal/store"
)

// Sweeper purges stale events on a fixed interval. The read path already
// purges inline; the sweeper keeps the table bounded when nobody is reading.
type Sweeper struct {
	store    store.EventStore
	interval time.Duration
}

func NewSweeper(s store.EventStore, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	return &Sweeper{store: s, interval: interval}
}

func (w *Sweeper) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := retention.Purge(ctx, w.store, time.Now()); err != nil {
				slog.Error("retention sweep failed", "error", err)
			} else {
				slog.Debug("retention sweep complete")
			}
		}
	}
}
