package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/veerendra4401/hookwatch/internal/bus"
)

// StoredEventConsumer tails the stored-event fanout so operators can watch
// repository activity from the worker logs without hitting the API.
type StoredEventConsumer struct {
	Sub *nats.Subscription
}

func (c *StoredEventConsumer) Subscribe(ctx context.Context, nc *nats.Conn, queue string) error {
	if nc == nil {
		return nil
	}
	if queue == "" {
		queue = "hookwatch-workers"
	}

	sub, err := nc.QueueSubscribe(bus.SubjectEventStored, queue, func(msg *nats.Msg) {
		var e bus.EventStored
		if err := json.Unmarshal(msg.Data, &e); err != nil {
			slog.Error("bad stored-event notification", "error", err)
			return
		}
		slog.Info("event stored",
			"event_id", e.ID,
			"action", e.Action,
			"author", e.Author,
			"repository", e.Repository,
			"to_branch", e.ToBranch,
		)
	})
	if err != nil {
		return err
	}
	c.Sub = sub

	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
	}()

	return nil
}
