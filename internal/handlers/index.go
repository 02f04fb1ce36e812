package handlers

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/veerendra4401/hookwatch/internal/event"
	"github.com/veerendra4401/hookwatch/internal/retention"
	"github.com/veerendra4401/hookwatch/internal/store"
)

type IndexHandler struct {
	store store.EventStore

	Now func() time.Time
}

func NewIndexHandler(s store.EventStore) *IndexHandler {
	return &IndexHandler{store: s, Now: time.Now}
}

type indexRow struct {
	Action  string
	Message string
}

// Page renders the activity page. A store outage degrades to an empty page
// with an error banner instead of a failed render.
func (h *IndexHandler) Page() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []indexRow
		var pageErr string

		if h.store == nil {
			pageErr = "event store not configured"
			return c.Render("views/index", fiber.Map{"Events": rows, "Error": pageErr})
		}

		if err := retention.Purge(c.Context(), h.store, h.Now()); err != nil {
			slog.Error("retention purge failed", "error", err)
			pageErr = "event store unavailable"
			return c.Render("views/index", fiber.Map{"Events": rows, "Error": pageErr})
		}

		events, err := h.store.ListNewestFirst(c.Context())
		if err != nil {
			slog.Error("event list failed", "error", err)
			pageErr = "event store unavailable"
			return c.Render("views/index", fiber.Map{"Events": rows, "Error": pageErr})
		}

		for _, ev := range events {
			rows = append(rows, indexRow{
				Action:  ev.Action.Lower(),
				Message: event.FormatMessage(ev),
			})
		}
		return c.Render("views/index", fiber.Map{"Events": rows, "Error": pageErr})
	}
}
