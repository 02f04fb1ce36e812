package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/veerendra4401/hookwatch/internal/bus/natsbus"
	"github.com/veerendra4401/hookwatch/internal/config"
	"github.com/veerendra4401/hookwatch/internal/db"
	"github.com/veerendra4401/hookwatch/internal/store"
	"github.com/veerendra4401/hookwatch/internal/worker"
)

func main() {
	config.LoadDotenv()
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.DBURL == "" {
		slog.Error("DB_URL is required")
		os.Exit(1)
	}
	d, err := db.Connect(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer d.Close()

	eventStore := store.NewPostgres(d.Pool)

	// Hourly sweep; the API purges inline on reads, this covers idle periods.
	sweeper := worker.NewSweeper(eventStore, 1*time.Hour)
	go func() { _ = sweeper.Run(ctx) }()

	// Tail stored-event notifications when NATS is configured.
	if cfg.NATSURL != "" {
		b, err := natsbus.Connect(cfg.NATSURL)
		if err != nil {
			slog.Error("nats connect failed", "error", err)
			os.Exit(1)
		}
		defer b.Close()

		consumer := &worker.StoredEventConsumer{}
		if err := consumer.Subscribe(ctx, b.Conn(), "hookwatch-workers"); err != nil {
			slog.Error("subscribe failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("worker started")

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("worker shutting down")
	cancel()
	time.Sleep(300 * time.Millisecond)
}
