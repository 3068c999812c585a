// batch.go - Batch self-play output
package main

import (
	"context"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/selfplay"
)

// runSelfPlay plays the configured batch, writes every finished game in
// index order and returns the outcome tally. With duplicate skipping on, a
// game whose final position and length match an earlier game is counted
// but not written.
func runSelfPlay(ctx context.Context, cfg *config.Config) (selfplay.Tally, error) {
	var tally selfplay.Tally
	w := output.NewWriter(cfg.OutputFile, cfg)

	var detector *hashing.DuplicateDetector
	if cfg.SelfPlay.SkipDuplicates {
		detector = hashing.NewDuplicateDetector(true, cfg.SelfPlay.DuplicateCapacity)
	}

	for _, res := range selfplay.Run(ctx, cfg) {
		if res.Err != nil {
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "game %d: %v\n", res.Index+1, res.Err)
			}
			continue
		}
		if detector != nil && detector.CheckAndAdd(res.Record.Game) {
			tally.Duplicates++
			continue
		}
		tally.Add(res.Record.Result)
		if err := w.WriteGame(res.Record); err != nil {
			return tally, err
		}
	}
	if err := w.Close(); err != nil {
		return tally, err
	}
	return tally, ctx.Err()
}
