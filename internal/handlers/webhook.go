package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/veerendra4401/hookwatch/internal/bus"
	"github.com/veerendra4401/hookwatch/internal/config"
	"github.com/veerendra4401/hookwatch/internal/event"
	"github.com/veerendra4401/hookwatch/internal/signature"
	"github.com/veerendra4401/hookwatch/internal/store"
)

type WebhookHandler struct {
	cfg   config.Config
	store store.EventStore
	bus   bus.Bus

	// Now supplies the ingestion timestamp; overridable in tests.
	Now func() time.Time
}

func NewWebhookHandler(cfg config.Config, s store.EventStore, b bus.Bus) *WebhookHandler {
	return &WebhookHandler{cfg: cfg, store: s, bus: b, Now: time.Now}
}

// Receive handles one GitHub webhook delivery: verify the HMAC signature,
// normalize the payload into a canonical event, persist it, then notify the
// bus best-effort. Unrecognized events are acknowledged and dropped.
func (h *WebhookHandler) Receive() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := c.Body()
		delivery := strings.TrimSpace(c.Get("X-GitHub-Delivery"))
		eventType := strings.TrimSpace(c.Get("X-GitHub-Event"))
		sig := strings.TrimSpace(c.Get("X-Hub-Signature"))

		slog.Info("webhook delivery received",
			"delivery_id", delivery,
			"event", eventType,
			"body_size", len(body),
			"signature_present", sig != "",
		)

		if !signature.Verify(h.cfg.GitHubWebhookSecret, body, sig) {
			slog.Warn("webhook signature rejected",
				"delivery_id", delivery,
				"event", eventType,
				"secret_configured", h.cfg.GitHubWebhookSecret != "",
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_signature"})
		}

		ev, err := event.Normalize(eventType, body, h.Now())
		if err != nil {
			if errors.Is(err, event.ErrMalformedPayload) {
				slog.Warn("webhook payload malformed", "delivery_id", delivery, "event", eventType)
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed_payload"})
			}
			slog.Error("webhook normalization failed", "delivery_id", delivery, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "normalize_failed"})
		}

		// Not an error to the sender: GitHub delivers event types and PR
		// actions we do not track (ping, labeled, assigned, ...).
		if ev.Action == event.ActionUnknown {
			slog.Info("webhook event ignored", "delivery_id", delivery, "event", eventType)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ignored", "event": eventType})
		}

		if h.store == nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "store_not_configured"})
		}

		stored, err := h.store.Insert(c.Context(), ev)
		if err != nil {
			slog.Error("event insert failed", "delivery_id", delivery, "action", ev.Action.Lower(), "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "store_unavailable"})
		}

		slog.Info("event stored",
			"delivery_id", delivery,
			"event_id", stored.ID,
			"action", stored.Action.Lower(),
			"repository", stored.Repository,
		)

		h.notify(c, stored)

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "success",
			"action": stored.Action.Lower(),
		})
	}
}

// notify publishes the stored event for live consumers. Failures are logged
// and swallowed: the record is already durable.
func (h *WebhookHandler) notify(c *fiber.Ctx, ev event.Event) {
	if h.bus == nil {
		return
	}

	msg := bus.EventStored{
		ID:         ev.ID,
		RequestID:  ev.RequestID,
		Author:     ev.Author,
		Action:     ev.Action.Lower(),
		FromBranch: ev.FromBranch,
		ToBranch:   ev.ToBranch,
		Repository: ev.Repository,
		Timestamp:  ev.Timestamp,
	}
	b, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal stored-event notification", "event_id", ev.ID, "error", err)
		return
	}
	if err := h.bus.Publish(c.Context(), bus.SubjectEventStored, b); err != nil {
		slog.Error("publish stored-event notification", "event_id", ev.ID, "error", err)
	}
}
