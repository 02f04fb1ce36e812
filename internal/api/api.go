package api

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"github.com/veerendra4401/hookwatch/internal/bus"
	"github.com/veerendra4401/hookwatch/internal/config"
	"github.com/veerendra4401/hookwatch/internal/db"
	"github.com/veerendra4401/hookwatch/internal/handlers"
	"github.com/veerendra4401/hookwatch/internal/store"
	"github.com/veerendra4401/hookwatch/web"
)

type Deps struct {
	DB    *db.DB
	Store store.EventStore
	Bus   bus.Bus
}

func New(cfg config.Config, deps Deps) *fiber.App {
	engine := html.NewFileSystem(http.FS(web.Views), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "hookwatch",
		Views:        engine,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Baseline middleware.
	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(logger.New())

	// Routes.
	app.Get("/health", handlers.Health())
	app.Get("/ready", handlers.Ready(deps.DB))

	webhook := handlers.NewWebhookHandler(cfg, deps.Store, deps.Bus)
	app.Post("/webhook", webhook.Receive())

	events := handlers.NewEventsHandler(deps.Store)
	app.Get("/events", events.List())

	index := handlers.NewIndexHandler(deps.Store)
	app.Get("/", index.Page())

	return app
}
