// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Mode
	selfPlay = flag.Bool("selfplay", false, "Play random games in batch instead of the interactive loop")

	// Self-play options
	games     = flag.Int("games", 1, "Number of self-play games")
	workers   = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	seed      = flag.Int64("seed", 1, "Random seed; game i uses seed+i")
	maxPlies  = flag.Int("maxplies", 500, "End a self-play game as unfinished after N plies")
	promoteTo = flag.String("promote", "q", "Promotion piece for random moves: q, r, n or b")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress self-play games that repeat an earlier game's final position")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered final positions (0 = unlimited)")

	// Output options
	outputFile   = flag.String("o", "", "Output file for self-play games (default: stdout)")
	outputFormat = flag.String("format", "text", "Self-play output format: text or json")
	lineLength   = flag.Int("w", 80, "Maximum line length of move text")
	noBoard      = flag.Bool("noboard", false, "Don't render boards")
	noMoves      = flag.Bool("nomoves", false, "Don't list legal moves in JSON views")
	indent       = flag.Bool("indent", false, "Pretty-print JSON output")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Report each finished self-play game")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no summary)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applySelfPlayFlags(cfg); err != nil {
		return err
	}

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) error {
	format, ok := config.ParseOutputFormat(*outputFormat)
	if !ok {
		return fmt.Errorf("unknown output format %q: %w", *outputFormat, errors.ErrInvalidConfig)
	}
	cfg.Output.Format = format
	cfg.Output.MaxLineLength = uint(max(*lineLength, 0))
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowMoves = !*noMoves
	cfg.Output.Indent = *indent
	return nil
}

// applySelfPlayFlags configures batch self-play.
func applySelfPlayFlags(cfg *config.Config) error {
	kind, err := parsePromotion(*promoteTo)
	if err != nil {
		return err
	}
	cfg.SelfPlay.Games = *games
	cfg.SelfPlay.Workers = *workers
	cfg.SelfPlay.Seed = *seed
	cfg.SelfPlay.MaxPlies = *maxPlies
	cfg.SelfPlay.Promotion = kind
	cfg.SelfPlay.SkipDuplicates = *suppressDuplicates
	cfg.SelfPlay.DuplicateCapacity = *duplicateCapacity
	return nil
}

// parsePromotion reads a one-letter piece name in either case.
func parsePromotion(s string) (chess.Kind, error) {
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind.CanPromoteTo() {
			return kind, nil
		}
	}
	return chess.NoKind, fmt.Errorf("bad promotion piece %q: %w", s, errors.ErrInvalidPromotion)
}
