package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestNewMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to Square
		wantNull bool
	}{
		{"a1 to h8", Sq(0, 0), Sq(7, 7), false},
		{"e2 to e4", Sq(1, 4), Sq(3, 4), false},
		{"same square", Sq(3, 3), Sq(3, 3), false},
		{"from rank below board", Sq(-1, 0), Sq(0, 0), true},
		{"to file past board", Sq(0, 0), Sq(0, 8), true},
		{"to rank past board", Sq(0, 0), Sq(8, 0), true},
		{"from file below board", Sq(0, -1), Sq(0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMove(tt.from, tt.to)
			if m.IsNull() != tt.wantNull {
				t.Fatalf("NewMove(%v, %v).IsNull() = %v; want %v", tt.from, tt.to, m.IsNull(), tt.wantNull)
			}
			if tt.wantNull {
				if m != NoMove {
					t.Errorf("NewMove(%v, %v) = %+v; want NoMove", tt.from, tt.to, m)
				}
				return
			}
			if m.From != tt.from || m.To != tt.to {
				t.Errorf("NewMove(%v, %v) = %v -> %v; want round trip", tt.from, tt.to, m.From, m.To)
			}
		})
	}
}

func TestNewPromotionMove(t *testing.T) {
	from, to := Sq(6, 0), Sq(7, 0)
	tests := []struct {
		kind Kind
		want Kind
	}{
		{Queen, Queen},
		{Rook, Rook},
		{Knight, Knight},
		{Bishop, Bishop},
		{King, NoKind},
		{Pawn, NoKind},
		{NoKind, NoKind},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			m := NewPromotionMove(from, to, tt.kind)
			if m.Promotion != tt.want {
				t.Errorf("NewPromotionMove(%v).Promotion = %v; want %v", tt.kind, m.Promotion, tt.want)
			}
		})
	}

	if m := NewPromotionMove(Sq(9, 0), to, Queen); m != NoMove {
		t.Errorf("NewPromotionMove(off board) = %+v; want NoMove", m)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(Sq(1, 4), Sq(3, 4)), "e2-e4"},
		{NewMove(Sq(0, 0), Sq(1, 1)), "a1-b2"},
		{NewMove(Sq(7, 7), Sq(0, 0)), "h8-a1"},
		{NewPromotionMove(Sq(6, 4), Sq(7, 4), Queen), "e7-e8q"},
		{NewPromotionMove(Sq(1, 0), Sq(0, 1), Knight), "a2-b1n"},
		{NewPromotionMove(Sq(6, 2), Sq(7, 2), Rook), "c7-c8r"},
		{NewPromotionMove(Sq(6, 2), Sq(7, 3), Bishop), "c7-d8b"},
		{NoMove, "END"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.move.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want Move
	}{
		{"a1-b2", NewMove(Sq(0, 0), Sq(1, 1))},
		{"a1b2", NewMove(Sq(0, 0), Sq(1, 1))},
		{"a1 b2", NewMove(Sq(0, 0), Sq(1, 1))},
		{"e2-e4", NewMove(Sq(1, 4), Sq(3, 4))},
		{"  e2e4\n", NewMove(Sq(1, 4), Sq(3, 4))},
		{"E2-E4", NewMove(Sq(1, 4), Sq(3, 4))},
		{"e7-e8q", NewPromotionMove(Sq(6, 4), Sq(7, 4), Queen)},
		{"e7e8N", NewPromotionMove(Sq(6, 4), Sq(7, 4), Knight)},
		{"b2-a1r", NewPromotionMove(Sq(1, 1), Sq(0, 0), Rook)},
		{"h7h8b", NewPromotionMove(Sq(6, 7), Sq(7, 7), Bishop)},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %v; want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseMove_RoundTrip(t *testing.T) {
	for _, text := range []string{"a1-h8", "g1-f3", "e7-e8q", "d2-c1n"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		if m.String() != text {
			t.Errorf("ParseMove(%q).String() = %q", text, m.String())
		}
	}
}

func TestParseMove_Malformed(t *testing.T) {
	for _, text := range []string{
		"",
		"e2",
		"e2-",
		"e2-e",
		"i2-e4",
		"e9-e4",
		"e2-e0",
		"e2xe4",
		"e2-e4k",
		"e7-e8p",
		"e7-e8qq",
		"11-22",
	} {
		t.Run(text, func(t *testing.T) {
			m, err := ParseMove(text)
			if err == nil {
				t.Fatalf("ParseMove(%q) = %v; want error", text, m)
			}
			if !errors.Is(err, chesserrors.ErrMalformedMoveText) {
				t.Errorf("ParseMove(%q) error = %v; want ErrMalformedMoveText", text, err)
			}
			var perr *chesserrors.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("ParseMove(%q) error is not a *ParseError", text)
			}
			if m != NoMove {
				t.Errorf("ParseMove(%q) move = %v; want NoMove", text, m)
			}
		})
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	if err != nil {
		t.Fatalf("ParseSquare(e4) error: %v", err)
	}
	if sq != Sq(3, 4) {
		t.Errorf("ParseSquare(e4) = %+v; want rank 3 file 4", sq)
	}
	for _, bad := range []string{"", "e", "e44", "j1", "a9"} {
		if _, err := ParseSquare(bad); !errors.Is(err, chesserrors.ErrMalformedMoveText) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrMalformedMoveText", bad, err)
		}
	}
}

func TestSquare(t *testing.T) {
	if got := Sq(0, 0).String(); got != "a1" {
		t.Errorf("Sq(0,0).String() = %q; want a1", got)
	}
	if got := Sq(7, 7).String(); got != "h8" {
		t.Errorf("Sq(7,7).String() = %q; want h8", got)
	}
	if got := Sq(8, 0).String(); got != "-" {
		t.Errorf("off-board String() = %q; want -", got)
	}
	if Sq(0, 0).IsLight() {
		t.Error("a1 should be dark")
	}
	if !Sq(0, 7).IsLight() {
		t.Error("h1 should be light")
	}
	if got := Sq(1, 4).Offset(2, -1); got != Sq(3, 3) {
		t.Errorf("Offset = %v; want d4", got)
	}
}

func TestMustParseMoves(t *testing.T) {
	got := MustParseMoves("e2-e4, e7-e5\ng1-f3")
	want := []Move{
		NewMove(Sq(1, 4), Sq(3, 4)),
		NewMove(Sq(6, 4), Sq(4, 4)),
		NewMove(Sq(0, 6), Sq(2, 5)),
	}
	if len(got) != len(want) {
		t.Fatalf("MustParseMoves len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MustParseMoves[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}
