// chess-server hosts chess games over HTTP and WebSocket.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/server"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	app := server.New(cfg, server.NewManager(cfg))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		fmt.Fprintln(cfg.LogFile, "shutting down")
		_ = app.Shutdown()
	}()

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "listening on %s\n", cfg.Server.Addr)
	}
	if err := app.Listen(cfg.Server.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Host chess games over HTTP and WebSocket.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRoutes:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games            create a game\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games            list games\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id        game view\n")
	fmt.Fprintf(os.Stderr, "  DELETE /api/games/:id        remove a game\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/moves  legal moves (?square=e2)\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/moves  play {\"move\":\"e2-e4\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /ws/games/:id         live game channel\n")
}
