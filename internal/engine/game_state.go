package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns every legal move for a colour.
func (g *Game) LegalMoves(colour chess.Colour) []chess.Move {
	return g.board.LegalMoves(colour)
}

// LegalMovesFrom returns the legal moves of the piece on sq, regardless of
// whose turn it is. An empty square yields no moves.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	p := g.board.PieceAt(sq)
	if p == nil {
		return nil
	}
	return p.Moves()
}

// InCheck reports whether the colour's king is attacked.
func (g *Game) InCheck(colour chess.Colour) bool {
	return g.board.IsKingInCheck(colour)
}

// IsCheckmate returns true if the colour is in check with no legal moves.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return g.InCheck(colour) && !g.board.HasLegalMoves(colour)
}

// IsStalemate returns true if the colour is not in check but has no legal
// moves.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	return !g.InCheck(colour) && !g.board.HasLegalMoves(colour)
}

// Status summarises the position from the colour's point of view.
func (g *Game) Status(colour chess.Colour) chess.Status {
	check := g.InCheck(colour)
	moves := g.board.HasLegalMoves(colour)
	switch {
	case check && !moves:
		return chess.Checkmate
	case !moves:
		return chess.Stalemate
	case check:
		return chess.Check
	default:
		return chess.Active
	}
}
