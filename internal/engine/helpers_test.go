package engine

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// kiwipete is the well known move generation test position.
const kiwipete = "ra8 ke8 rh8 pa7 pc7 pd7 qe7 pf7 bg7 ba6 nb6 pe6 nf6 pg6 " +
	"Pd5 Ne5 pb4 Pe4 Nc3 Qf3 ph3 Pa2 Pb2 Pc2 Bd2 Be2 Pf2 Pg2 Ph2 Ra1 Ke1 Rh1"

func sq(s string) chess.Square { return chess.MustParseSquare(s) }

// setup builds a rules-enabled game from placements such as "Ke1 ra8 Pe2".
// Upper case letters are White and lower case are Black. Every piece starts
// unmoved; use markMoved to take away castling rights.
func setup(t testing.TB, turn chess.Colour, placements string) *Game {
	t.Helper()
	b := NewEmptyBoard()
	for _, f := range strings.Fields(placements) {
		if len(f) != 3 {
			t.Fatalf("setup: bad placement %q", f)
		}
		kind := chess.KindFromLetter(f[0])
		if kind == chess.NoKind {
			t.Fatalf("setup: bad piece letter in %q", f)
		}
		colour := chess.Black
		if unicode.IsUpper(rune(f[0])) {
			colour = chess.White
		}
		at, err := chess.ParseSquare(f[1:])
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		if b.PieceAt(at) != nil {
			t.Fatalf("setup: %v placed twice", at)
		}
		b.PlaceAt(at, NewPiece(kind, colour, chess.SideOfFile(at.File), 0))
	}
	return NewGameFromBoard(b, turn)
}

// markMoved flags the king or rook on each square as having moved.
func markMoved(t testing.TB, g *Game, squares ...string) {
	t.Helper()
	for _, s := range squares {
		switch p := g.PieceAt(sq(s)).(type) {
		case *King:
			p.MarkMoved()
		case *Rook:
			p.MarkMoved()
		default:
			t.Fatalf("markMoved: no king or rook on %s", s)
		}
	}
}

// snapshot describes every piece with its square, binding and flags so two
// board states can be compared as text.
func snapshot(b *Board) string {
	var sb strings.Builder
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := b.squares[rank][file]
			if p == nil {
				continue
			}
			c := p.core()
			fmt.Fprintf(&sb, "%s@%v", p.ID(), c.sq)
			if c.board != b {
				sb.WriteString("!unbound")
			}
			switch v := p.(type) {
			case *Pawn:
				fmt.Fprintf(&sb, " moved=%t ep=%t", v.moved, v.enPassant)
			case *Rook:
				fmt.Fprintf(&sb, " moved=%t", v.moved)
			case *King:
				fmt.Fprintf(&sb, " moved=%t", v.moved)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// playAll plays a whitespace or comma separated list of moves, failing the
// test on the first one rejected.
func playAll(t testing.TB, g *Game, moves string) {
	t.Helper()
	for _, m := range chess.MustParseMoves(moves) {
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%v) error: %v", m, err)
		}
	}
}

// moveStrings renders moves as sorted text for order-insensitive comparison.
func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func containsMove(moves []chess.Move, text string) bool {
	for _, m := range moves {
		if m.String() == text {
			return true
		}
	}
	return false
}
