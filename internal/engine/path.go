package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isStraight reports whether to shares a rank or file with from.
func isStraight(from, to chess.Square) bool {
	if from == to {
		return false
	}
	return from.Rank == to.Rank || from.File == to.File
}

// isDiagonal reports whether to lies on a diagonal through from.
func isDiagonal(from, to chess.Square) bool {
	if from == to {
		return false
	}
	return abs(to.Rank-from.Rank) == abs(to.File-from.File)
}

// pathClear checks that every square strictly between from and to is empty.
// The squares must be aligned on a rank, file or diagonal.
func (b *Board) pathClear(from, to chess.Square) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	for sq := from.Offset(rankDir, fileDir); sq != to; sq = sq.Offset(rankDir, fileDir) {
		if !sq.InBounds() {
			return false
		}
		if b.PieceAt(sq) != nil {
			return false
		}
	}
	return true
}

// slideMoves walks each direction until blocked, keeping the legal targets.
// A capture ends the ray.
func slideMoves(p Piece, dirs [][2]int) []chess.Move {
	c := p.core()
	if !c.onBoard() {
		return nil
	}
	var moves []chess.Move
	from := c.sq
	for _, d := range dirs {
		for to := from.Offset(d[0], d[1]); to.InBounds(); to = to.Offset(d[0], d[1]) {
			if p.CanMove(to) {
				moves = append(moves, chess.NewMove(from, to))
			}
			if c.board.PieceAt(to) != nil {
				break
			}
		}
	}
	return moves
}

// jumpMoves tries a fixed set of offsets from the piece's square.
func jumpMoves(p Piece, offsets [][2]int) []chess.Move {
	c := p.core()
	if !c.onBoard() {
		return nil
	}
	var moves []chess.Move
	from := c.sq
	for _, d := range offsets {
		to := from.Offset(d[0], d[1])
		if to.InBounds() && p.CanMove(to) {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
