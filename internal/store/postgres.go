package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veerendra4401/hookwatch/internal/event"
)

// Postgres implements EventStore on a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) Insert(ctx context.Context, ev event.Event) (event.Event, error) {
	if s == nil || s.pool == nil {
		return event.Event{}, fmt.Errorf("event store not configured")
	}

	ev.ID = uuid.NewString()
	_, err := s.pool.Exec(ctx, `
INSERT INTO events (id, request_id, author, action, from_branch, to_branch, repository, event_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, ev.ID, ev.RequestID, ev.Author, string(ev.Action), ev.FromBranch, ev.ToBranch, ev.Repository, ev.Timestamp)
	if err != nil {
		return event.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return ev, nil
}

func (s *Postgres) ListNewestFirst(ctx context.Context) ([]event.Event, error) {
	if s == nil || s.pool == nil {
		return nil, fmt.Errorf("event store not configured")
	}

	rows, err := s.pool.Query(ctx, `
SELECT id, request_id, author, action, from_branch, to_branch, repository, event_time
FROM events
ORDER BY event_time DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []event.Event
	for rows.Next() {
		var ev event.Event
		var action string
		if err := rows.Scan(&ev.ID, &ev.RequestID, &ev.Author, &action, &ev.FromBranch, &ev.ToBranch, &ev.Repository, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Action = event.Action(action)
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

func (s *Postgres) DeleteOlderThan(ctx context.Context, cutoff string) error {
	if s == nil || s.pool == nil {
		return fmt.Errorf("event store not configured")
	}

	_, err := s.pool.Exec(ctx, `DELETE FROM events WHERE event_time < $1`, cutoff)
	if err != nil {
		return fmt.Errorf("purge events: %w", err)
	}
	return nil
}
