package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var benchPositions = map[string]string{
	"Endgame":  "kf7 Kf2 Re1",
	"Complex":  kiwipete,
	"Castling": "ra8 ke8 rh8 pa7 pb7 pc7 pd7 pe7 pf7 pg7 ph7 Pa2 Pb2 Pc2 Pd2 Pe2 Pf2 Pg2 Ph2 Ra1 Ke1 Rh1",
}

func BenchmarkNewGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewGame()
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	b.Run("Initial", func(b *testing.B) {
		g := NewGame()
		for i := 0; i < b.N; i++ {
			g.LegalMoves(chess.White)
		}
	})
	for name, pieces := range benchPositions {
		b.Run(name, func(b *testing.B) {
			g := setup(b, chess.White, pieces)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.LegalMoves(chess.White)
			}
		})
	}
}

func BenchmarkStatus(b *testing.B) {
	g := setup(b, chess.White, kiwipete)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Status(chess.White)
	}
}

func BenchmarkRender(b *testing.B) {
	g := NewGame()
	for i := 0; i < b.N; i++ {
		g.Render()
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := chess.MustParseMoves("e2-e4 e7-e5 g1-f3 b8-c6 f1-c4 f8-c5 c2-c3 g8-f6 d2-d4 e5-d4 c3-d4 c5-b4")
	for i := 0; i < b.N; i++ {
		g := NewGame()
		for _, m := range moves {
			g.Play(m)
		}
	}
}
