// Package engine implements the chess rules: pieces, the board that owns
// them, and the game that enforces turn order around them.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Board is an 8x8 grid of optional pieces. It is the single owner of the
// pieces placed on it; each piece knows its square and its board.
type Board struct {
	squares [chess.BoardSize][chess.BoardSize]Piece // [rank][file]
}

// NewEmptyBoard returns a board with no pieces.
func NewEmptyBoard() *Board {
	return &Board{}
}

// backRankKinds is the initial order of pieces along a back rank, a to h.
var backRankKinds = [chess.BoardSize]chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// NewBoard returns a board set up in the standard initial position.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		back := chess.BackRank(colour)
		for file, kind := range backRankKinds {
			b.PlaceAt(chess.Sq(back, file), NewPiece(kind, colour, chess.SideOfFile(file), 0))
		}
		pawns := chess.PawnRank(colour)
		for file := 0; file < chess.BoardSize; file++ {
			b.PlaceAt(chess.Sq(pawns, file), NewPawn(colour, chess.SideOfFile(file), pawnIndex(file)))
		}
	}
	return b
}

// pawnIndex numbers pawns outward from the centre: d and e are 1, a and h are 4.
func pawnIndex(file int) int {
	if file < 4 {
		return 4 - file
	}
	return file - 3
}

// PieceAt returns the piece on the square, or nil when the square is empty
// or off the board.
func (b *Board) PieceAt(sq chess.Square) Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.squares[sq.Rank][sq.File]
}

// Displace moves whatever stands on m.From to m.To without any rule checks.
// It returns the piece that was evicted from m.To, or nil. An empty origin,
// a null move or an off-board square leaves the board unchanged.
func (b *Board) Displace(m chess.Move) Piece {
	if !m.From.InBounds() || !m.To.InBounds() || m.From == m.To {
		return nil
	}
	p := b.squares[m.From.Rank][m.From.File]
	if p == nil {
		return nil
	}
	evicted := b.squares[m.To.Rank][m.To.File]
	if evicted != nil {
		evicted.core().board = nil
	}
	b.squares[m.To.Rank][m.To.File] = p
	b.squares[m.From.Rank][m.From.File] = nil
	p.core().sq = m.To
	return evicted
}

// PlaceAt puts p on the square, replacing any occupant. A nil piece clears
// the square. A piece already standing on a board, this one or another, is
// lifted from its old square first, so a piece never stands on two squares.
func (b *Board) PlaceAt(sq chess.Square, p Piece) {
	if !sq.InBounds() {
		return
	}
	if old := b.squares[sq.Rank][sq.File]; old != nil && old != p {
		old.core().board = nil
	}
	if p != nil {
		c := p.core()
		if prev := c.board; prev != nil && c.sq.InBounds() && (prev != b || c.sq != sq) &&
			prev.squares[c.sq.Rank][c.sq.File] == p {
			prev.squares[c.sq.Rank][c.sq.File] = nil
		}
		c.board = b
		c.sq = sq
	}
	b.squares[sq.Rank][sq.File] = p
}

// Remove clears the square and returns the piece that stood there.
func (b *Board) Remove(sq chess.Square) Piece {
	p := b.PieceAt(sq)
	if p == nil {
		return nil
	}
	b.squares[sq.Rank][sq.File] = nil
	p.core().board = nil
	return p
}

// Pieces returns the pieces of a colour in rank then file order.
func (b *Board) Pieces(colour chess.Colour) []Piece {
	var pieces []Piece
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if p := b.squares[rank][file]; p != nil && p.Colour() == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Count returns the number of pieces on the board.
func (b *Board) Count() int {
	n := 0
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if b.squares[rank][file] != nil {
				n++
			}
		}
	}
	return n
}
