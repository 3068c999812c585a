package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsSquareAttacked returns true if any piece of byColour attacks the square.
// Attacks are pure geometry: pawns attack diagonally whether or not the
// square is occupied, and a king attacks only by stepping.
func (b *Board) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	if !sq.InBounds() {
		return false
	}
	for _, p := range b.Pieces(byColour) {
		if p.attacks(sq) {
			return true
		}
	}
	return false
}

// IsKingInCheck returns true if the colour's king is attacked. A colour
// with no king on the board counts as in check.
func (b *Board) IsKingInCheck(colour chess.Colour) bool {
	k := b.King(colour)
	if k == nil {
		return true
	}
	return b.IsSquareAttacked(k.sq, colour.Opposite())
}

// King finds the king of the given colour, or nil.
func (b *Board) King(colour chess.Colour) *King {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if k, ok := b.squares[rank][file].(*King); ok && k.colour == colour {
				return k
			}
		}
	}
	return nil
}
