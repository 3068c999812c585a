package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

const castlingPieces = "ra8 ke8 rh8 Ra1 Ke1 Rh1"

func TestCastling_Kingside(t *testing.T) {
	g := setup(t, chess.White, castlingPieces)
	king := g.PieceAt(sq("e1")).(*King)
	rook := g.PieceAt(sq("h1")).(*Rook)

	playAll(t, g, "e1-g1")

	if g.PieceAt(sq("g1")) != king || g.PieceAt(sq("f1")) != rook {
		t.Fatalf("after O-O: g1=%v f1=%v; want king and rook", g.PieceAt(sq("g1")), g.PieceAt(sq("f1")))
	}
	if g.PieceAt(sq("e1")) != nil || g.PieceAt(sq("h1")) != nil {
		t.Error("e1 and h1 should be empty after O-O")
	}
	if !king.HasMoved() || !rook.HasMoved() {
		t.Error("king and rook should both be marked moved")
	}
	if rook.Square() != sq("f1") {
		t.Errorf("rook.Square() = %v; want f1", rook.Square())
	}
}

func TestCastling_Queenside(t *testing.T) {
	tests := []struct {
		moves   string
		colour  chess.Colour
		king    string
		rook    string
		emptied []string
	}{
		{"e1-c1", chess.White, "c1", "d1", []string{"a1", "b1", "e1"}},
		{"e1-g1, e8-c8", chess.Black, "c8", "d8", []string{"a8", "b8", "e8"}},
	}

	for _, tt := range tests {
		t.Run(tt.colour.String(), func(t *testing.T) {
			g := setup(t, chess.White, castlingPieces)
			playAll(t, g, tt.moves)

			if p := g.PieceAt(sq(tt.king)); p == nil || p.Kind() != chess.King || p.Colour() != tt.colour {
				t.Errorf("PieceAt(%s) = %v; want %v king", tt.king, p, tt.colour)
			}
			if p := g.PieceAt(sq(tt.rook)); p == nil || p.Kind() != chess.Rook || p.Colour() != tt.colour {
				t.Errorf("PieceAt(%s) = %v; want %v rook", tt.rook, p, tt.colour)
			}
			for _, s := range tt.emptied {
				if g.PieceAt(sq(s)) != nil {
					t.Errorf("PieceAt(%s) should be empty", s)
				}
			}
		})
	}
}

func TestCastling_InMoveList(t *testing.T) {
	g := setup(t, chess.White, castlingPieces)
	moves := g.LegalMovesFrom(sq("e1"))
	for _, want := range []string{"e1-g1", "e1-c1"} {
		if !containsMove(moves, want) {
			t.Errorf("LegalMovesFrom(e1) = %v; missing %s", moves, want)
		}
	}
	if got := len(moves); got != 7 {
		t.Errorf("len(LegalMovesFrom(e1)) = %d; want 7", got)
	}
}

func TestCastling_Restrictions(t *testing.T) {
	tests := []struct {
		name      string
		pieces    string
		moved     []string
		kingside  bool
		queenside bool
	}{
		{"both available", castlingPieces, nil, true, true},
		{"king moved", castlingPieces, []string{"e1"}, false, false},
		{"kingside rook moved", castlingPieces, []string{"h1"}, false, true},
		{"queenside rook moved", castlingPieces, []string{"a1"}, true, false},
		{"bishop on f1", castlingPieces + " Bf1", nil, false, true},
		{"knight on g1", castlingPieces + " Ng1", nil, false, true},
		{"queen on d1", castlingPieces + " Qd1", nil, true, false},
		{"knight on b1", castlingPieces + " Nb1", nil, true, false},
		{"king in check", castlingPieces + " re5", nil, false, false},
		{"passes through attacked f1", "ra8 ke8 rf8 Ra1 Ke1 Rh1", nil, false, true},
		{"lands on attacked g1", "ra8 ke8 rg8 Ra1 Ke1 Rh1", nil, false, true},
		{"passes through attacked d1", "ra8 rd8 ke8 Ra1 Ke1 Rh1", nil, true, false},
		{"attacked b1 is fine", "rb8 ke8 rh8 Ra1 Ke1 Rh1", nil, true, true},
		{"rook missing", "ra8 ke8 rh8 Ke1 Rh1", nil, true, false},
		{"enemy piece in corner", "ra8 ke8 rh8 na1 Ke1 Rh1", nil, true, false},
		{"king off its home square", "ra8 ke8 rh8 Ra1 Kd1 Rh1", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := setup(t, chess.White, tt.pieces)
			markMoved(t, g, tt.moved...)
			king := g.Board().King(chess.White)
			from := king.Square()
			kingside := from.Offset(0, 2)
			queenside := from.Offset(0, -2)
			if got := king.CanMove(kingside); got != tt.kingside {
				t.Errorf("CanMove(%v) = %v; want %v", kingside, got, tt.kingside)
			}
			if got := king.CanMove(queenside); got != tt.queenside {
				t.Errorf("CanMove(%v) = %v; want %v", queenside, got, tt.queenside)
			}
		})
	}
}

func TestCastling_AfterKingMoved(t *testing.T) {
	g := setup(t, chess.White, castlingPieces)
	playAll(t, g, "e1-f1, e8-f8, f1-e1, f8-e8")

	king := g.PieceAt(sq("e1"))
	if king.CanMove(sq("g1")) || king.CanMove(sq("c1")) {
		t.Error("king that has moved should not castle")
	}
	if containsMove(g.LegalMovesFrom(sq("e1")), "e1-g1") {
		t.Error("castling listed for a moved king")
	}
}

func TestCastling_AfterRookMoved(t *testing.T) {
	g := setup(t, chess.White, castlingPieces)
	playAll(t, g, "h1-h2, h8-h7, h2-h1, h7-h8")

	king := g.PieceAt(sq("e1"))
	if king.CanMove(sq("g1")) {
		t.Error("castling with a rook that has moved should be illegal")
	}
	if !king.CanMove(sq("c1")) {
		t.Error("queenside castling should still be legal")
	}
}

func TestCastling_ChecksLeaveBoardIntact(t *testing.T) {
	g := setup(t, chess.White, "ra8 ke8 rf8 Ra1 Ke1 Rh1")
	before := snapshot(g.Board())
	g.LegalMoves(chess.White)
	if diff := cmp.Diff(before, snapshot(g.Board())); diff != "" {
		t.Errorf("move generation changed the position (-before +after):\n%s", diff)
	}
}
