// repl.go - Interactive play loop
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/selfplay"
)

const banner = `Commands:
x#-x#		move
end		resign and exit
moves		show moves
moves x#	show moves at x#
rand		make a random move

`

// repl drives one game from text commands. The board is printed before the
// first prompt and after every move that lands.
type repl struct {
	game      *engine.Game
	player    *selfplay.Player
	in        *bufio.Scanner
	out       io.Writer
	showBoard bool
}

func newREPL(g *engine.Game, player *selfplay.Player, in io.Reader, out io.Writer, showBoard bool) *repl {
	return &repl{
		game:      g,
		player:    player,
		in:        bufio.NewScanner(in),
		out:       out,
		showBoard: showBoard,
	}
}

// run reads commands until the game ends, the side to move resigns or the
// input runs out.
func (r *repl) run() {
	fmt.Fprint(r.out, banner)
	show := true
	for {
		if show {
			if r.showBoard {
				fmt.Fprintf(r.out, "%s\n", r.game.Render())
			}
			status := r.game.Status(r.game.CurrentTurn())
			if status.IsOver() {
				fmt.Fprintln(r.out, output.Describe(r.game))
				return
			}
			if status == chess.Check {
				fmt.Fprintln(r.out, output.Describe(r.game))
			}
			fmt.Fprintf(r.out, "Enter move for %s:\n", strings.ToLower(r.game.CurrentTurn().String()))
			show = false
		}

		line, ok := r.readLine()
		if !ok {
			return
		}
		switch {
		case line == "":
		case line == "end":
			fmt.Fprintf(r.out, "\n%s resigns.\n\n", r.game.CurrentTurn())
			return
		case line == "moves":
			r.printMoves(r.game.LegalMoves(r.game.CurrentTurn()))
		case strings.HasPrefix(line, "moves "):
			r.movesAt(strings.TrimSpace(line[len("moves "):]))
		case line == "rand":
			show = r.random()
		default:
			show = r.play(line)
		}
	}
}

func (r *repl) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *repl) movesAt(text string) {
	sq, err := chess.ParseSquare(text)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return
	}
	r.printMoves(r.game.LegalMovesFrom(sq))
}

func (r *repl) printMoves(moves []chess.Move) {
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	fmt.Fprintf(r.out, "%s\n\n", strings.Join(texts, " "))
}

func (r *repl) random() bool {
	m, err := r.player.Step(r.game)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return false
	}
	fmt.Fprintf(r.out, "%s plays %s\n", r.game.CurrentTurn().Opposite(), m)
	return true
}

// play submits a typed move, asking for the promotion piece when a pawn
// reaches the last rank without one.
func (r *repl) play(text string) bool {
	m, err := chess.ParseMove(text)
	if err != nil {
		fmt.Fprintln(r.out, err)
		return false
	}
	if !m.IsPromotion() && r.game.NeedsPromotion(m) && r.legal(m.WithPromotion(chess.Queen)) {
		m = m.WithPromotion(r.askPromotion())
	}
	if err := r.game.Play(m); err != nil {
		fmt.Fprintln(r.out, err)
		return false
	}
	return true
}

func (r *repl) legal(m chess.Move) bool {
	p := r.game.PieceAt(m.From)
	if p == nil || p.Colour() != r.game.CurrentTurn() {
		return false
	}
	for _, lm := range r.game.LegalMovesFrom(m.From) {
		if lm == m {
			return true
		}
	}
	return false
}

// askPromotion prompts for Q, R, N or B. Anything else, including end of
// input, promotes to a queen.
func (r *repl) askPromotion() chess.Kind {
	fmt.Fprintln(r.out, "You have moved a pawn to the end of the board!")
	fmt.Fprintln(r.out, "What do you want to promote it to? (Q, R, N, B)")
	line, ok := r.readLine()
	if !ok || line == "" {
		return chess.Queen
	}
	if kind := chess.KindFromLetter(line[0]); kind.CanPromoteTo() {
		return kind
	}
	return chess.Queen
}
