package handler

import (
	"page-assist/internal/config"
	"page-assist/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Relay     *RelayHandler
	Bookmarks *BookmarkHandler
	Health    *HealthHandler
}

// NewApp builds the Fiber application with middleware and routes.
func NewApp(cfg config.ServerConfig, h Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept," + middleware.HeaderClientID,
		MaxAge:       300,
	}))

	app.Use(middleware.RequestLogger())
	vm := middleware.NewValidationMiddleware()
	app.Use(vm.ValidateClientID())

	app.Get("/healthz", h.Health.Health)

	api := app.Group("/api")
	api.Post("/relay", h.Relay.Relay)
	api.Post("/render", h.Relay.Render)

	api.Get("/bookmarks", h.Bookmarks.ListFolders)
	api.Post("/bookmarks", h.Bookmarks.AddBookmark)
	api.Delete("/bookmarks/:folderId/:bookmarkId", vm.ValidateBookmarkPath(), h.Bookmarks.DeleteBookmark)
	api.Post("/folders", h.Bookmarks.CreateFolder)

	return app
}
