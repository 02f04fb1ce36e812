// Package store persists canonical events. Records are immutable: the only
// operations are insert, newest-first listing and age-based deletion.
package store

import (
	"context"

	"github.com/veerendra4401/hookwatch/internal/event"
)

// EventStore is the gateway handlers and workers depend on. It is injected,
// never a package-level handle, so tests can substitute a double.
type EventStore interface {
	// Insert persists ev and returns it with the store-assigned ID filled in.
	Insert(ctx context.Context, ev event.Event) (event.Event, error)

	// ListNewestFirst returns all stored events ordered by timestamp descending.
	ListNewestFirst(ctx context.Context) ([]event.Event, error)

	// DeleteOlderThan removes every event whose timestamp sorts strictly
	// before cutoff (an RFC 3339 UTC string).
	DeleteOlderThan(ctx context.Context, cutoff string) error
}
