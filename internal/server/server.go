package server

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// New builds the fiber application serving mgr's games.
//
// Routes:
//
//	POST   /api/games             create a game
//	GET    /api/games             list game IDs
//	GET    /api/games/:id         game view
//	DELETE /api/games/:id         remove a game
//	GET    /api/games/:id/moves   legal moves, optionally ?square=e2
//	POST   /api/games/:id/moves   play {"move":"e2-e4"}
//	GET    /ws/games/:id          live game channel
func New(cfg *config.Config, mgr *Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chess-server",
		ReadTimeout:           cfg.Server.ReadTimeout,
		DisableStartupMessage: cfg.Verbosity < 2,
	})

	app.Use(recover.New())
	if cfg.Server.LogRequests && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))

	h := &handlers{mgr: mgr}
	api := app.Group("/api")
	games := api.Group("/games")
	games.Post("/", h.createGame)
	games.Get("/", h.listGames)
	games.Get("/:id", h.getGame)
	games.Delete("/:id", h.deleteGame)
	games.Get("/:id/moves", h.legalMoves)
	games.Post("/:id/moves", h.playMove)

	var logMu sync.Mutex
	logw := cfg.LogFile
	if cfg.Verbosity < 2 {
		logw = nil
	}
	app.Use("/ws", requireUpgrade())
	app.Get("/ws/games/:id", websocket.New(liveGame(mgr, logw, &logMu)))

	return app
}
