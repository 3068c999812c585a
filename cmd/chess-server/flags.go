// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Server options
	addr         = flag.String("addr", ":8080", "Listen address")
	allowOrigins = flag.String("origins", "*", "Comma-separated CORS origins")
	readTimeout  = flag.Duration("read-timeout", 10*time.Second, "Maximum time to read a request")
	maxGames     = flag.Int("maxgames", 0, "Maximum number of hosted games (0 = unlimited)")

	// Game view options
	showBoard = flag.Bool("board", false, "Include rendered board lines in game views")
	noMoves   = flag.Bool("nomoves", false, "Don't list legal moves in game views")

	// Logging
	logFile    = flag.String("l", "", "Write request and diagnostic logs to file")
	noRequests = flag.Bool("norequestlog", false, "Don't log requests")
	verbose    = flag.Bool("v", false, "Log WebSocket diagnostics")

	// Other options
	help = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *allowOrigins
	cfg.Server.ReadTimeout = *readTimeout
	cfg.Server.MaxGames = *maxGames
	cfg.Server.LogRequests = !*noRequests

	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowMoves = !*noMoves

	if *verbose {
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}
