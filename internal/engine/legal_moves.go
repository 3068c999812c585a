package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

var noSquare = chess.Sq(-1, -1)

// canMove is the shared legality test: the move must be pseudo-legal and,
// once played on the board, must not leave the mover's king attacked.
func canMove(p Piece, to chess.Square) bool {
	c := p.core()
	if !c.onBoard() || !to.InBounds() {
		return false
	}
	if !p.pseudoLegal(to) {
		return false
	}
	lift := noSquare
	if pawn, ok := p.(*Pawn); ok {
		if victim, ok := pawn.enPassantCapture(to); ok {
			lift = victim
		}
	}
	colour := c.colour
	return c.board.speculate(chess.NewMove(c.sq, to), lift, func() bool {
		return !c.board.IsKingInCheck(colour)
	})
}

// displaceIfLegal moves p when the move is legal.
func displaceIfLegal(p Piece, to chess.Square) bool {
	if !p.CanMove(to) {
		return false
	}
	c := p.core()
	c.board.Displace(chess.NewMove(c.sq, to))
	return true
}

// speculate plays m on the board, evaluates probe, and restores the board
// to exactly its previous state before returning. A piece standing on lift
// is also removed for the duration.
func (b *Board) speculate(m chess.Move, lift chess.Square, probe func() bool) bool {
	var lifted Piece
	if lift.InBounds() {
		lifted = b.Remove(lift)
	}
	evicted := b.Displace(m)
	defer func() {
		b.Displace(chess.Move{From: m.To, To: m.From})
		if evicted != nil {
			b.PlaceAt(m.To, evicted)
		}
		if lifted != nil {
			b.PlaceAt(lift, lifted)
		}
	}()
	return probe()
}

// LegalMoves returns every legal move for the colour, scanning pieces in
// rank then file order.
func (b *Board) LegalMoves(colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, p := range b.Pieces(colour) {
		moves = append(moves, p.Moves()...)
	}
	return moves
}

// HasLegalMoves reports whether the colour has at least one legal move.
func (b *Board) HasLegalMoves(colour chess.Colour) bool {
	for _, p := range b.Pieces(colour) {
		if len(p.Moves()) > 0 {
			return true
		}
	}
	return false
}
