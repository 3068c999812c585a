package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Pawn is a pawn. Besides its moved flag it carries the en-passant flag,
// which is set by a double step and cleared by the Game once the opponent
// has had their one chance to capture.
type Pawn struct {
	pieceCore
	moved     bool
	enPassant bool
}

// NewPawn creates an unplaced, unmoved pawn.
func NewPawn(colour chess.Colour, side chess.Side, index int) *Pawn {
	return &Pawn{pieceCore: newCore(chess.Pawn, colour, side, index)}
}

// HasMoved reports whether the pawn has ever moved.
func (p *Pawn) HasMoved() bool { return p.moved }

// EnPassant reports whether the pawn may currently be captured en passant.
func (p *Pawn) EnPassant() bool { return p.enPassant }

// SetEnPassant sets or clears the en-passant flag.
func (p *Pawn) SetEnPassant(v bool) { p.enPassant = v }

// enPassantRank is the rank a capturing pawn must stand on.
func enPassantRank(colour chess.Colour) int {
	if colour == chess.White {
		return 4
	}
	return 3
}

func (p *Pawn) attacks(to chess.Square) bool {
	return to.Rank-p.sq.Rank == chess.ColourOffset(p.colour) && abs(to.File-p.sq.File) == 1
}

func (p *Pawn) pseudoLegal(to chess.Square) bool {
	if !to.InBounds() {
		return false
	}
	dir := chess.ColourOffset(p.colour)
	dr, df := to.Rank-p.sq.Rank, to.File-p.sq.File
	target := p.board.PieceAt(to)

	switch {
	case df == 0 && dr == dir:
		return target == nil
	case df == 0 && dr == 2*dir:
		return target == nil &&
			!p.moved &&
			p.sq.Rank == chess.PawnRank(p.colour) &&
			p.board.PieceAt(p.sq.Offset(dir, 0)) == nil
	case abs(df) == 1 && dr == dir:
		if target != nil {
			return target.Colour() != p.colour
		}
		_, ok := p.enPassantCapture(to)
		return ok
	}
	return false
}

// enPassantCapture returns the square of the pawn that moving to `to` would
// capture en passant, if that move is an en-passant capture.
func (p *Pawn) enPassantCapture(to chess.Square) (chess.Square, bool) {
	if !p.attacks(to) || p.board.PieceAt(to) != nil {
		return noSquare, false
	}
	if p.sq.Rank != enPassantRank(p.colour) {
		return noSquare, false
	}
	victimSq := chess.Sq(p.sq.Rank, to.File)
	victim, ok := p.board.PieceAt(victimSq).(*Pawn)
	if !ok || victim.colour == p.colour || !victim.enPassant {
		return noSquare, false
	}
	return victimSq, true
}

// CanMove implements Piece.
func (p *Pawn) CanMove(to chess.Square) bool { return canMove(p, to) }

// Moves implements Piece. A move onto the last rank is listed once for each
// promotion kind, queen first.
func (p *Pawn) Moves() []chess.Move {
	if !p.onBoard() {
		return nil
	}
	dir := chess.ColourOffset(p.colour)
	from := p.sq
	targets := []chess.Square{
		from.Offset(dir, 0),
		from.Offset(2*dir, 0),
		from.Offset(dir, -1),
		from.Offset(dir, 1),
	}

	var moves []chess.Move
	for _, to := range targets {
		if !to.InBounds() || !p.CanMove(to) {
			continue
		}
		if to.Rank == chess.PromotionRank(p.colour) {
			for _, kind := range chess.PromotionKinds {
				moves = append(moves, chess.NewPromotionMove(from, to, kind))
			}
			continue
		}
		moves = append(moves, chess.NewMove(from, to))
	}
	return moves
}

// Move implements Piece. It removes a pawn taken en passant and flags this
// pawn after a double step. Promotion is left to the Game.
func (p *Pawn) Move(to chess.Square) bool {
	victim, ep := p.enPassantCapture(to)
	from := p.sq
	if !displaceIfLegal(p, to) {
		return false
	}
	if ep {
		p.board.Remove(victim)
	}
	p.moved = true
	if abs(to.Rank-from.Rank) == 2 {
		p.enPassant = true
	}
	return true
}
