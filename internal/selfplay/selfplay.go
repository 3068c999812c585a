package selfplay

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Reasons a game stopped.
const (
	ReasonCheckmate    = "checkmate"
	ReasonStalemate    = "stalemate"
	ReasonInsufficient = "insufficient material"
	ReasonPlyLimit     = "ply limit"
)

// PlayGame plays one game from the initial position until it is decided,
// neither side can mate, or the ply limit is reached.
func PlayGame(ctx context.Context, cfg config.SelfPlayConfig, seed int64) (*output.Record, error) {
	g := engine.NewGame()
	player := NewPlayer(seed, cfg.Promotion)
	rec := &output.Record{Game: g}

	for {
		if err := ctx.Err(); err != nil {
			return rec, err
		}
		switch g.Status(g.CurrentTurn()) {
		case chess.Checkmate:
			rec.Result, rec.Reason = output.ResultOf(g), ReasonCheckmate
			return rec, nil
		case chess.Stalemate:
			rec.Result, rec.Reason = output.ResultOf(g), ReasonStalemate
			return rec, nil
		}
		if g.Board().HasInsufficientMaterial() {
			rec.Result, rec.Reason = "1/2-1/2", ReasonInsufficient
			return rec, nil
		}
		if g.Plies() >= cfg.MaxPlies {
			rec.Result, rec.Reason = "*", ReasonPlyLimit
			return rec, nil
		}

		m, err := player.Step(g)
		if err != nil {
			return rec, fmt.Errorf("ply %d: %w", g.Plies()+1, err)
		}
		rec.Moves = append(rec.Moves, m)
	}
}

// Run plays cfg.SelfPlay.Games games across the worker pool. Game i is
// seeded with cfg.SelfPlay.Seed+i and given the ID i+1, so a batch is
// reproducible regardless of the worker count.
func Run(ctx context.Context, cfg *config.Config) []worker.Result {
	sp := cfg.SelfPlay
	jobs := make([]worker.Job, sp.Games)
	for i := range jobs {
		jobs[i] = worker.Job{Index: i, Seed: sp.Seed + int64(i)}
	}

	var logMu sync.Mutex
	play := func(ctx context.Context, job worker.Job) worker.Result {
		rec, err := PlayGame(ctx, sp, job.Seed)
		rec.ID = strconv.Itoa(job.Index + 1)
		if cfg.Verbosity > 1 && err == nil {
			logMu.Lock()
			fmt.Fprintf(cfg.LogFile, "game %s: %s after %d plies\n", rec.ID, rec.Reason, len(rec.Moves))
			logMu.Unlock()
		}
		return worker.Result{Index: job.Index, Record: rec, Err: err}
	}

	var opts []worker.Option
	if sp.Workers > 0 {
		opts = append(opts, worker.WithWorkers(sp.Workers))
	}
	return worker.Run(ctx, play, jobs, opts...)
}

// Tally counts game outcomes. Duplicates are counted apart from the
// outcomes and not included in Total.
type Tally struct {
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
	Duplicates int
}

// Add counts one game by its result string.
func (t *Tally) Add(result string) {
	switch result {
	case "1-0":
		t.WhiteWins++
	case "0-1":
		t.BlackWins++
	case "1/2-1/2":
		t.Draws++
	default:
		t.Unfinished++
	}
}

// Total returns the number of games counted.
func (t Tally) Total() int {
	return t.WhiteWins + t.BlackWins + t.Draws + t.Unfinished
}

// String formats the tally as a one-line summary.
func (t Tally) String() string {
	s := fmt.Sprintf("%d games: %d white wins, %d black wins, %d draws, %d unfinished",
		t.Total(), t.WhiteWins, t.BlackWins, t.Draws, t.Unfinished)
	if t.Duplicates > 0 {
		s += fmt.Sprintf(" (%d duplicates skipped)", t.Duplicates)
	}
	return s
}
