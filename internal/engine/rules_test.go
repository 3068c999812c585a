package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name   string
		pieces string
		want   bool // true = insufficient material
	}{
		{"K vs K", "ke8 Ke1", true},
		{"K+B vs K", "ke8 Ke1 Bf1", true},
		{"K+N vs K", "ke8 Ke1 Nf1", true},
		{"K vs K+b", "ke8 bg8 Ke1", true},
		{"K vs K+n", "ke8 ng8 Ke1", true},
		{"K+B vs K+B same colour", "ke8 bf8 Bc1 Ke1", true},
		{"K+R vs K", "ke8 Ke1 Rf1", false},
		{"K+Q vs K", "ke8 Ke1 Qf1", false},
		{"K+P vs K", "ke8 Pe2 Ke1", false},
		{"K+B vs K+B opposite colour", "ke8 bf8 Bd1 Ke1", false},
		{"K+B+B vs K", "ke8 Bc1 Ke1 Bf1", false},
		{"K+N vs K+N", "ke8 nf8 Ke1 Nf1", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := setup(t, chess.White, tt.pieces)
			if got := g.Board().HasInsufficientMaterial(); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasInsufficientMaterial_Start(t *testing.T) {
	if NewBoard().HasInsufficientMaterial() {
		t.Error("HasInsufficientMaterial() = true for the starting position")
	}
}

func TestMaterial(t *testing.T) {
	b := NewBoard()
	if got := b.Material(chess.White); got != 39 {
		t.Errorf("Material(White) = %d, want 39", got)
	}

	g := NewGame()
	playAll(t, g, "e2-e4, d7-d5, e4-d5")
	if got := g.Board().Material(chess.Black); got != 38 {
		t.Errorf("Material(Black) after exd5 = %d, want 38", got)
	}
}
