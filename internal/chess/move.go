package chess

import (
	"fmt"
	"strings"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square identifies a board square. Rank 0 is White's back rank and file 0
// is the a-file.
type Square struct {
	Rank int
	File int
}

// Sq builds a square from rank and file indices.
func Sq(rank, file int) Square {
	return Square{Rank: rank, File: file}
}

// InBounds reports whether the square lies on the board.
func (s Square) InBounds() bool {
	return s.Rank >= 0 && s.Rank < BoardSize && s.File >= 0 && s.File < BoardSize
}

// Offset returns the square shifted by the given rank and file deltas.
// The result may be off the board.
func (s Square) Offset(dRank, dFile int) Square {
	return Square{Rank: s.Rank + dRank, File: s.File + dFile}
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.Rank+s.File)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.InBounds() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &chesserrors.ParseError{Err: chesserrors.ErrMalformedMoveText, Got: fmt.Sprintf("%q", text), Expected: "square"}
	}
	sq, ok := squareFromBytes(text[0], text[1])
	if !ok {
		return Square{}, &chesserrors.ParseError{Err: chesserrors.ErrMalformedMoveText, Got: fmt.Sprintf("%q", text), Expected: "square"}
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for literals in tests and tables.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

func squareFromBytes(file, rank byte) (Square, bool) {
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < FileBase || file >= FileBase+BoardSize || rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, false
	}
	return Square{Rank: int(rank - RankBase), File: int(file - FileBase)}, true
}

// Move is a single from/to displacement with an optional promotion kind.
// Moves are plain values; two moves are equal when all fields match.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// NoMove is the null move. Constructors return it for out-of-range input.
var NoMove = Move{From: Square{-1, -1}, To: Square{-1, -1}}

// NewMove creates a move between two squares, or NoMove if either square is
// off the board.
func NewMove(from, to Square) Move {
	if !from.InBounds() || !to.InBounds() {
		return NoMove
	}
	return Move{From: from, To: to}
}

// NewPromotionMove creates a move that promotes to kind on arrival.
// Kinds that are not promotion choices are dropped.
func NewPromotionMove(from, to Square, kind Kind) Move {
	m := NewMove(from, to)
	if !m.IsNull() && kind.CanPromoteTo() {
		m.Promotion = kind
	}
	return m
}

// IsNull returns true if this is the null move.
func (m Move) IsNull() bool {
	return !m.From.InBounds() || !m.To.InBounds()
}

// IsPromotion returns true if the move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// WithPromotion returns a copy of the move promoting to kind.
func (m Move) WithPromotion(kind Kind) Move {
	return NewPromotionMove(m.From, m.To, kind)
}

// String returns the long algebraic form, e.g. "e2-e4" or "e7-e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "END"
	}
	s := m.From.String() + "-" + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses "e2-e4", "e2e4" or "e2 e4", with an optional trailing
// promotion letter ("e7-e8q").
func ParseMove(text string) (Move, error) {
	s := strings.TrimSpace(text)
	malformed := func() (Move, error) {
		return NoMove, &chesserrors.ParseError{
			Err:      chesserrors.ErrMalformedMoveText,
			Expected: "move like e2-e4",
			Got:      fmt.Sprintf("%q", text),
		}
	}
	if len(s) < 4 {
		return malformed()
	}

	from, ok := squareFromBytes(s[0], s[1])
	if !ok {
		return malformed()
	}
	rest := s[2:]
	if rest[0] == '-' || rest[0] == ' ' {
		rest = rest[1:]
	}
	if len(rest) < 2 {
		return malformed()
	}
	to, ok := squareFromBytes(rest[0], rest[1])
	if !ok {
		return malformed()
	}

	m := NewMove(from, to)
	switch len(rest) {
	case 2:
		return m, nil
	case 3:
		kind := KindFromLetter(rest[2])
		if !kind.CanPromoteTo() {
			return malformed()
		}
		m.Promotion = kind
		return m, nil
	default:
		return malformed()
	}
}

// MustParseMove is like ParseMove but panics on malformed input.
func MustParseMove(text string) Move {
	m, err := ParseMove(text)
	if err != nil {
		panic(err)
	}
	return m
}

// MustParseMoves parses a whitespace or comma separated move list.
func MustParseMoves(text string) []Move {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t'
	})
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		moves = append(moves, MustParseMove(f))
	}
	return moves
}
