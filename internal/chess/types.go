// Package chess provides the value types shared by the rules engine and its
// callers: colours, piece kinds, squares and moves.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns 'W' or 'B'.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // No piece, or no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the conventional material value of the kind.
// It is not used by any legality decision.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	default:
		return 0
	}
}

// CanPromoteTo reports whether a pawn may be promoted to k.
func (k Kind) CanPromoteTo() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// PromotionKinds lists the promotion choices in the order move lists emit them.
var PromotionKinds = [...]Kind{Queen, Rook, Knight, Bishop}

// KindFromLetter converts a piece letter (either case) to a Kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	}
	return NoKind
}

// Side is the half of the board a piece started on. It only feeds piece
// identity strings.
type Side int

const (
	Queenside Side = iota
	Kingside
)

// Letter returns 'K' or 'Q'.
func (s Side) Letter() byte {
	if s == Kingside {
		return 'K'
	}
	return 'Q'
}

// SideOfFile returns the side a file belongs to.
func SideOfFile(file int) Side {
	if file > 3 {
		return Kingside
	}
	return Queenside
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// BackRank returns the rank a colour's pieces start on.
func BackRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnRank returns the rank a colour's pawns start on.
func PawnRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which a colour's pawns promote.
func PromotionRank(colour Colour) int {
	return BackRank(colour.Opposite())
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// Status describes the state of the side to move.
type Status int

const (
	Active Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "active"
	}
}

// IsOver reports whether no further moves can be made.
func (s Status) IsOver() bool {
	return s == Checkmate || s == Stalemate
}
