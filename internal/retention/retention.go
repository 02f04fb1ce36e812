// Package retention bounds stored history to a fixed horizon.
package retention

import (
	"context"
	"time"

	"github.com/veerendra4401/hookwatch/internal/store"
)

// Horizon is how long an event stays queryable after ingestion.
const Horizon = 24 * time.Hour

// Cutoff returns the RFC 3339 UTC instant before which events are stale.
func Cutoff(now time.Time) string {
	return now.UTC().Add(-Horizon).Format(time.RFC3339)
}

// Purge deletes every event older than the horizon. It runs inline on the
// read path and is idempotent: with no new inserts a second call is a no-op.
func Purge(ctx context.Context, s store.EventStore, now time.Time) error {
	return s.DeleteOlderThan(ctx, Cutoff(now))
}
