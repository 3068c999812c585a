package engine

import (
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Piece is a chess piece living on a Board. The set of implementations is
// closed: *Pawn, *Knight, *Bishop, *Rook, *Queen and *King.
//
// A piece stores no board state of its own beyond a cached square, which the
// Board keeps current on every placement and displacement.
type Piece interface {
	Kind() chess.Kind
	Colour() chess.Colour
	Side() chess.Side
	Index() int
	ID() string
	Square() chess.Square
	Value() int

	// CanMove reports whether moving to the square is legal, including the
	// requirement that the mover's own king is not left attacked.
	CanMove(to chess.Square) bool

	// Moves lists every legal move of the piece.
	Moves() []chess.Move

	// Move performs a legal move and its bookkeeping. It returns false and
	// leaves the board untouched when the move is illegal.
	Move(to chess.Square) bool

	// attacks reports pure geometric reach of a capture onto the square,
	// ignoring what stands there and whether the own king would be exposed.
	attacks(to chess.Square) bool

	// pseudoLegal is attacks plus the destination and quiet-move rules,
	// without the self-check test.
	pseudoLegal(to chess.Square) bool

	core() *pieceCore
}

// pieceCore holds the attributes every piece kind shares.
type pieceCore struct {
	kind   chess.Kind
	colour chess.Colour
	side   chess.Side
	index  int
	board  *Board
	sq     chess.Square
}

func newCore(kind chess.Kind, colour chess.Colour, side chess.Side, index int) pieceCore {
	return pieceCore{kind: kind, colour: colour, side: side, index: index, sq: chess.Sq(-1, -1)}
}

func (c *pieceCore) Kind() chess.Kind      { return c.kind }
func (c *pieceCore) Colour() chess.Colour  { return c.colour }
func (c *pieceCore) Side() chess.Side      { return c.side }
func (c *pieceCore) Index() int            { return c.index }
func (c *pieceCore) Square() chess.Square  { return c.sq }
func (c *pieceCore) Value() int            { return c.kind.Value() }
func (c *pieceCore) core() *pieceCore      { return c }
func (c *pieceCore) onBoard() bool         { return c.board != nil && c.sq.InBounds() }
func (c *pieceCore) isOwn(sq chess.Square) bool {
	other := c.board.PieceAt(sq)
	return other != nil && other.Colour() == c.colour
}

// ID returns the display identity: colour, kind, origin side and index,
// e.g. "WPK3" for White's g-pawn.
func (c *pieceCore) ID() string {
	id := []byte{c.colour.Letter(), c.kind.Letter(), c.side.Letter()}
	if c.index >= 0 && c.index <= 9 {
		id = strconv.AppendInt(id, int64(c.index), 10)
	}
	return string(id)
}

// NewPiece constructs an unplaced piece of the given kind.
// It returns nil for NoKind.
func NewPiece(kind chess.Kind, colour chess.Colour, side chess.Side, index int) Piece {
	switch kind {
	case chess.Pawn:
		return NewPawn(colour, side, index)
	case chess.Knight:
		return NewKnight(colour, side, index)
	case chess.Bishop:
		return NewBishop(colour, side, index)
	case chess.Rook:
		return NewRook(colour, side, index)
	case chess.Queen:
		return NewQueen(colour, side, index)
	case chess.King:
		return NewKing(colour)
	default:
		return nil
	}
}

var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps  = [][2]int{{1, 2}, {1, -2}, {-1, 2}, {-1, -2}, {2, 1}, {2, -1}, {-2, 1}, {-2, -1}}
	kingSteps    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Knight is a knight.
type Knight struct {
	pieceCore
}

// NewKnight creates an unplaced knight.
func NewKnight(colour chess.Colour, side chess.Side, index int) *Knight {
	return &Knight{pieceCore: newCore(chess.Knight, colour, side, index)}
}

func (n *Knight) attacks(to chess.Square) bool {
	dr, df := abs(to.Rank-n.sq.Rank), abs(to.File-n.sq.File)
	return (dr == 1 && df == 2) || (dr == 2 && df == 1)
}

func (n *Knight) pseudoLegal(to chess.Square) bool {
	return to.InBounds() && !n.isOwn(to) && n.attacks(to)
}

// CanMove implements Piece.
func (n *Knight) CanMove(to chess.Square) bool { return canMove(n, to) }

// Moves implements Piece.
func (n *Knight) Moves() []chess.Move { return jumpMoves(n, knightJumps) }

// Move implements Piece.
func (n *Knight) Move(to chess.Square) bool { return displaceIfLegal(n, to) }

// Bishop is a bishop.
type Bishop struct {
	pieceCore
}

// NewBishop creates an unplaced bishop.
func NewBishop(colour chess.Colour, side chess.Side, index int) *Bishop {
	return &Bishop{pieceCore: newCore(chess.Bishop, colour, side, index)}
}

func (b *Bishop) attacks(to chess.Square) bool {
	return isDiagonal(b.sq, to) && b.board.pathClear(b.sq, to)
}

func (b *Bishop) pseudoLegal(to chess.Square) bool {
	return to.InBounds() && !b.isOwn(to) && b.attacks(to)
}

// CanMove implements Piece.
func (b *Bishop) CanMove(to chess.Square) bool { return canMove(b, to) }

// Moves implements Piece.
func (b *Bishop) Moves() []chess.Move { return slideMoves(b, diagonalDirs) }

// Move implements Piece.
func (b *Bishop) Move(to chess.Square) bool { return displaceIfLegal(b, to) }

// Rook is a rook. It remembers whether it has moved, for castling.
type Rook struct {
	pieceCore
	moved bool
}

// NewRook creates an unplaced, unmoved rook.
func NewRook(colour chess.Colour, side chess.Side, index int) *Rook {
	return &Rook{pieceCore: newCore(chess.Rook, colour, side, index)}
}

// HasMoved reports whether the rook has ever moved.
func (r *Rook) HasMoved() bool { return r.moved }

// MarkMoved records that the rook has moved.
func (r *Rook) MarkMoved() { r.moved = true }

func (r *Rook) attacks(to chess.Square) bool {
	return isStraight(r.sq, to) && r.board.pathClear(r.sq, to)
}

func (r *Rook) pseudoLegal(to chess.Square) bool {
	return to.InBounds() && !r.isOwn(to) && r.attacks(to)
}

// CanMove implements Piece.
func (r *Rook) CanMove(to chess.Square) bool { return canMove(r, to) }

// Moves implements Piece.
func (r *Rook) Moves() []chess.Move { return slideMoves(r, straightDirs) }

// Move implements Piece.
func (r *Rook) Move(to chess.Square) bool {
	if !displaceIfLegal(r, to) {
		return false
	}
	r.MarkMoved()
	return true
}

// Queen is a queen: the union of rook and bishop movement.
type Queen struct {
	pieceCore
}

// NewQueen creates an unplaced queen.
func NewQueen(colour chess.Colour, side chess.Side, index int) *Queen {
	return &Queen{pieceCore: newCore(chess.Queen, colour, side, index)}
}

func (q *Queen) attacks(to chess.Square) bool {
	return (isStraight(q.sq, to) || isDiagonal(q.sq, to)) && q.board.pathClear(q.sq, to)
}

func (q *Queen) pseudoLegal(to chess.Square) bool {
	return to.InBounds() && !q.isOwn(to) && q.attacks(to)
}

// CanMove implements Piece.
func (q *Queen) CanMove(to chess.Square) bool { return canMove(q, to) }

// Moves implements Piece.
func (q *Queen) Moves() []chess.Move {
	return append(slideMoves(q, straightDirs), slideMoves(q, diagonalDirs)...)
}

// Move implements Piece.
func (q *Queen) Move(to chess.Square) bool { return displaceIfLegal(q, to) }
