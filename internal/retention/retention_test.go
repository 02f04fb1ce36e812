package retention

import (
	"context"
	"testing"
	"time"

	"github.com/veerendra4401/hookwatch/internal/event"
)

type memStore struct {
	events []event.Event
}

func (m *memStore) Insert(_ context.Context, ev event.Event) (event.Event, error) {
	m.events = append(m.events, ev)
	return ev, nil
}

func (m *memStore) ListNewestFirst(_ context.Context) ([]event.Event, error) {
	return m.events, nil
}

func (m *memStore) DeleteOlderThan(_ context.Context, cutoff string) error {
	kept := m.events[:0]
	for _, ev := range m.events {
		if ev.Timestamp >= cutoff {
			kept = append(kept, ev)
		}
	}
	m.events = kept
	return nil
}

func TestPurge_RemovesOnlyStaleEvents(t *testing.T) {
	now := time.Date(2021, time.April, 2, 12, 0, 0, 0, time.UTC)
	s := &memStore{events: []event.Event{
		{ID: "stale", Timestamp: now.Add(-25 * time.Hour).Format(time.RFC3339)},
		{ID: "edge", Timestamp: now.Add(-Horizon).Format(time.RFC3339)},
		{ID: "fresh", Timestamp: now.Add(-1 * time.Hour).Format(time.RFC3339)},
	}}

	if err := Purge(context.Background(), s, now); err != nil {
		t.Fatalf("Purge failed: %v", err)
	}

	if len(s.events) != 2 {
		t.Fatalf("expected 2 surviving events, got %d", len(s.events))
	}
	if s.events[0].ID != "edge" || s.events[1].ID != "fresh" {
		t.Fatalf("wrong events survived: %+v", s.events)
	}
}

func TestPurge_Idempotent(t *testing.T) {
	now := time.Date(2021, time.April, 2, 12, 0, 0, 0, time.UTC)
	s := &memStore{events: []event.Event{
		{ID: "stale", Timestamp: now.Add(-48 * time.Hour).Format(time.RFC3339)},
		{ID: "fresh", Timestamp: now.Format(time.RFC3339)},
	}}

	if err := Purge(context.Background(), s, now); err != nil {
		t.Fatalf("first Purge failed: %v", err)
	}
	first := len(s.events)

	if err := Purge(context.Background(), s, now); err != nil {
		t.Fatalf("second Purge failed: %v", err)
	}
	if len(s.events) != first {
		t.Fatalf("second purge changed the set: %d -> %d", first, len(s.events))
	}
}

func TestCutoff_Is24HoursBeforeNowInUTC(t *testing.T) {
	now := time.Date(2021, time.April, 2, 12, 0, 0, 0, time.UTC)
	if got, want := Cutoff(now), "2021-04-01T12:00:00Z"; got != want {
		t.Fatalf("Cutoff = %q, want %q", got, want)
	}
}
