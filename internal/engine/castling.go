package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// King is a king. Only the king can castle, so the castling rules live here.
type King struct {
	pieceCore
	moved bool
}

// kingFile is the only file a king may castle from.
const kingFile = 4

// NewKing creates an unplaced, unmoved king.
func NewKing(colour chess.Colour) *King {
	return &King{pieceCore: newCore(chess.King, colour, chess.Kingside, 0)}
}

// HasMoved reports whether the king has ever moved.
func (k *King) HasMoved() bool { return k.moved }

// MarkMoved records that the king has moved.
func (k *King) MarkMoved() { k.moved = true }

// InCheck reports whether the king is attacked. A king that is not on a
// board counts as in check.
func (k *King) InCheck() bool {
	if !k.onBoard() {
		return true
	}
	return k.board.IsSquareAttacked(k.sq, k.colour.Opposite())
}

func (k *King) attacks(to chess.Square) bool {
	if to == k.sq {
		return false
	}
	return abs(to.Rank-k.sq.Rank) <= 1 && abs(to.File-k.sq.File) <= 1
}

func (k *King) pseudoLegal(to chess.Square) bool {
	if !to.InBounds() || k.isOwn(to) {
		return false
	}
	if k.attacks(to) {
		return true
	}
	_, ok := k.castlingRook(to)
	return ok
}

// isCastle reports whether to is two files sideways from the king.
func (k *King) isCastle(to chess.Square) bool {
	return to.Rank == k.sq.Rank && abs(to.File-k.sq.File) == 2
}

// castlingRook checks the static castling conditions towards to and returns
// the rook that would take part. Attack conditions are checked separately.
func (k *King) castlingRook(to chess.Square) (*Rook, bool) {
	if k.moved || !k.isCastle(to) {
		return nil, false
	}
	if k.sq.File != kingFile || k.sq.Rank != chess.BackRank(k.colour) {
		return nil, false
	}

	dir := sign(to.File - k.sq.File)
	rookFile := chess.BoardSize - 1
	if dir < 0 {
		rookFile = 0
	}
	rookSq := chess.Sq(k.sq.Rank, rookFile)
	rook, ok := k.board.PieceAt(rookSq).(*Rook)
	if !ok || rook.colour != k.colour || rook.moved {
		return nil, false
	}
	if !k.board.pathClear(k.sq, rookSq) {
		return nil, false
	}
	return rook, true
}

// castlePathSafe checks that the king is not in check and does not pass
// through an attacked square. The destination is covered by canMove.
func (k *King) castlePathSafe(to chess.Square) bool {
	if k.InCheck() {
		return false
	}
	step := k.sq.Offset(0, sign(to.File-k.sq.File))
	return k.board.speculate(chess.NewMove(k.sq, step), noSquare, func() bool {
		return !k.InCheck()
	})
}

// CanMove implements Piece.
func (k *King) CanMove(to chess.Square) bool {
	if !canMove(k, to) {
		return false
	}
	if k.isCastle(to) {
		return k.castlePathSafe(to)
	}
	return true
}

// Moves implements Piece. Castling moves are included when legal.
func (k *King) Moves() []chess.Move {
	moves := jumpMoves(k, kingSteps)
	if !k.onBoard() || k.moved {
		return moves
	}
	for _, df := range []int{2, -2} {
		to := k.sq.Offset(0, df)
		if to.InBounds() && k.CanMove(to) {
			moves = append(moves, chess.NewMove(k.sq, to))
		}
	}
	return moves
}

// Move implements Piece. Castling also relocates the rook beside the king.
func (k *King) Move(to chess.Square) bool {
	from := k.sq
	castling := k.isCastle(to)
	if !k.CanMove(to) {
		return false
	}
	rook, _ := k.castlingRook(to)
	k.board.Displace(chess.NewMove(from, to))
	k.moved = true
	if castling && rook != nil {
		rookTo := from.Offset(0, sign(to.File-from.File))
		k.board.Displace(chess.NewMove(rook.sq, rookTo))
		rook.MarkMoved()
	}
	return true
}
