package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Common positions for tests.
const (
	// FoolsMate is the shortest possible checkmate, Black mating White.
	FoolsMate = "f2-f3 e7-e5 g2-g4 d8-h4"

	// Stalemate has Black to move with no legal moves and not in check.
	Stalemate = "kh8 Qf7 Kg6"

	// Promotion has a White pawn one step from promoting on e8.
	Promotion = "ka8 Pe7 Ke1"
)

// NewTestGame returns a rules-enabled game with turn to move. The pieces are
// placements such as "Ke1 ra8": upper case for White, lower case for Black.
// An empty placement list gives the standard starting position.
func NewTestGame(t testing.TB, turn chess.Colour, pieces string) *engine.Game {
	t.Helper()
	if pieces == "" {
		return engine.NewGame()
	}
	b := engine.NewEmptyBoard()
	for _, f := range strings.Fields(pieces) {
		kind := chess.KindFromLetter(f[0])
		at, err := chess.ParseSquare(f[1:])
		if kind == chess.NoKind || err != nil {
			t.Fatalf("NewTestGame: bad placement %q", f)
		}
		colour := chess.White
		if f[0] >= 'a' {
			colour = chess.Black
		}
		b.PlaceAt(at, engine.NewPiece(kind, colour, chess.SideOfFile(at.File), 0))
	}
	return engine.NewGameFromBoard(b, turn)
}

// MustPlay plays a space or comma separated move list.
// It calls t.Fatal on the first move the game rejects.
func MustPlay(t testing.TB, g *engine.Game, moves string) {
	t.Helper()
	for _, m := range chess.MustParseMoves(moves) {
		if err := g.Play(m); err != nil {
			t.Fatalf("MustPlay: %v", err)
		}
	}
}

// MoveTexts renders moves in their text form.
func MoveTexts(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}
