package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/veerendra4401/hookwatch/internal/event"
	"github.com/veerendra4401/hookwatch/internal/retention"
	"github.com/veerendra4401/hookwatch/internal/store"
)

type EventsHandler struct {
	store store.EventStore

	Now func() time.Time
}

func NewEventsHandler(s store.EventStore) *EventsHandler {
	return &EventsHandler{store: s, Now: time.Now}
}

// List serves the stored events newest first, each with its rendered message.
// Stale events are purged inline before the query.
func (h *EventsHandler) List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if h.store == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "store_not_configured"})
		}

		if err := retention.Purge(c.Context(), h.store, h.Now()); err != nil {
			slog.Error("retention purge failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "store_unavailable"})
		}

		events, err := h.store.ListNewestFirst(c.Context())
		if err != nil {
			slog.Error("event list failed", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "store_unavailable"})
		}

		out := make([]fiber.Map, 0, len(events))
		for _, ev := range events {
			out = append(out, fiber.Map{
				"id":                ev.ID,
				"request_id":        ev.RequestID,
				"author":            ev.Author,
				"action":            ev.Action.Lower(),
				"from_branch":       ev.FromBranch,
				"to_branch":         ev.ToBranch,
				"repository":        ev.Repository,
				"timestamp":         ev.Timestamp,
				"formatted_message": event.FormatMessage(ev),
			})
		}
		return c.Status(fiber.StatusOK).JSON(out)
	}
}
