// Package output writes games as rendered boards with move text, or as JSON
// game views.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Record is a game together with the moves that produced it.
type Record struct {
	ID     string
	Game   *engine.Game
	Moves  []chess.Move
	Result string // "1-0", "0-1", "1/2-1/2" or "*"; empty means ResultOf(Game)
	Reason string // why play stopped, e.g. "checkmate" or "ply limit"
}

// result returns the recorded result, falling back to the position.
func (r *Record) result() string {
	if r.Result != "" {
		return r.Result
	}
	return ResultOf(r.Game)
}

// ResultOf scores the position for the side to move.
func ResultOf(g *engine.Game) string {
	turn := g.CurrentTurn()
	switch g.Status(turn) {
	case chess.Checkmate:
		if turn == chess.White {
			return "0-1"
		}
		return "1-0"
	case chess.Stalemate:
		return "1/2-1/2"
	}
	return "*"
}

// Describe summarises the position in one line for a prompt.
func Describe(g *engine.Game) string {
	turn := g.CurrentTurn()
	switch g.Status(turn) {
	case chess.Checkmate:
		return fmt.Sprintf("Checkmate. %v wins.", turn.Opposite())
	case chess.Stalemate:
		return "Stalemate."
	case chess.Check:
		return fmt.Sprintf("%v to move, in check.", turn)
	}
	return fmt.Sprintf("%v to move.", turn)
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game to cfg.OutputFile in text form.
func OutputGame(rec *Record, cfg *config.Config) {
	WriteText(cfg.OutputFile, rec, cfg)
}

// WriteText writes an optional header, the board and the numbered move
// text followed by the result.
func WriteText(w io.Writer, rec *Record, cfg *config.Config) {
	if rec.ID != "" {
		fmt.Fprintf(w, "Game %s\n", rec.ID)
	}
	if cfg.Output.ShowBoard {
		fmt.Fprint(w, rec.Game.Render())
	}
	outputMoves(rec, cfg, w)
	if rec.Reason != "" {
		fmt.Fprintf(w, "(%s)\n", rec.Reason)
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// outputMoves writes "1. e2-e4 e7-e5 2. ..." wrapped to the line limit.
func outputMoves(rec *Record, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	for i, m := range rec.Moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(m.String())
	}
	ow.Write(rec.result())
	ow.NewLine()
}
