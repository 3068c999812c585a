package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// Game wraps a Board with turn order, the rules switch and promotion
// bookkeeping. It is not safe for concurrent use.
type Game struct {
	board      *Board
	rules      bool
	turn       chess.Colour
	plies      int
	promotions [2]int // per colour, for promoted piece indices
	last       chess.Move
}

// NewGame returns a game in the standard initial position, White to move,
// with rules enabled.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), chess.White)
}

// NewGameFromBoard returns a rules-enabled game over an existing board.
func NewGameFromBoard(b *Board, turn chess.Colour) *Game {
	return &Game{
		board: b,
		rules: true,
		turn:  turn,
		last:  chess.NoMove,
	}
}

// Board returns the underlying board.
func (g *Game) Board() *Board { return g.board }

// CurrentTurn returns the side to move.
func (g *Game) CurrentTurn() chess.Colour { return g.turn }

// Plies returns the number of moves played under the rules.
func (g *Game) Plies() int { return g.plies }

// LastMove returns the most recently applied move, or chess.NoMove.
func (g *Game) LastMove() chess.Move { return g.last }

// RulesEnabled reports whether moves are being validated.
func (g *Game) RulesEnabled() bool { return g.rules }

// SetRulesEnabled turns rule enforcement on or off. With rules off, moves
// are applied as raw displacements and the turn does not change.
func (g *Game) SetRulesEnabled(on bool) { g.rules = on }

// PieceAt returns the piece on a square, or nil.
func (g *Game) PieceAt(sq chess.Square) Piece { return g.board.PieceAt(sq) }

// PlaceAt puts a piece on a square, or clears it when p is nil. It is only
// allowed while rules are disabled.
func (g *Game) PlaceAt(sq chess.Square, p Piece) error {
	if g.rules {
		return chesserrors.ErrRulesEnabled
	}
	g.board.PlaceAt(sq, p)
	return nil
}

// SubmitMove applies m if it is legal and reports whether it was applied.
func (g *Game) SubmitMove(m chess.Move) bool {
	return g.Play(m) == nil
}

// Play applies m. With rules enabled the piece on m.From must belong to the
// side to move and the move must be legal; on success the turn passes and
// the new mover's en-passant flags expire. A pawn reaching the last rank is
// promoted to m.Promotion, or to a queen when none is given.
func (g *Game) Play(m chess.Move) error {
	if !g.rules {
		g.board.Displace(m)
		g.last = m
		return nil
	}

	p := g.board.PieceAt(m.From)
	if p == nil {
		return g.moveError(m, chesserrors.ErrNoPiece)
	}
	if p.Colour() != g.turn {
		return g.moveError(m, chesserrors.ErrNotYourTurn)
	}
	if !p.Move(m.To) {
		return g.moveError(m, chesserrors.ErrIllegalMove)
	}

	mover := g.turn
	if p.Kind() == chess.Pawn && m.To.Rank == chess.PromotionRank(mover) {
		kind := m.Promotion
		if !kind.CanPromoteTo() {
			kind = chess.Queen
		}
		if err := g.Promote(m.To, kind); err != nil {
			return g.moveError(m, err)
		}
	}

	g.turn = mover.Opposite()
	g.plies++
	g.expireEnPassant(g.turn)
	g.last = m
	return nil
}

func (g *Game) moveError(m chess.Move, err error) error {
	return &chesserrors.MoveError{
		Err:    err,
		Move:   m.String(),
		Colour: g.turn.String(),
		PlyNum: g.plies + 1,
	}
}

// expireEnPassant clears the en-passant flag on every pawn of the colour.
// Called for the side about to move: their pawns' chance has passed.
func (g *Game) expireEnPassant(colour chess.Colour) {
	for _, p := range g.board.Pieces(colour) {
		if pawn, ok := p.(*Pawn); ok {
			pawn.SetEnPassant(false)
		}
	}
}

// NeedsPromotion reports whether m, if legal, moves a pawn onto its
// promotion rank.
func (g *Game) NeedsPromotion(m chess.Move) bool {
	p := g.board.PieceAt(m.From)
	return p != nil && p.Kind() == chess.Pawn && m.To.Rank == chess.PromotionRank(p.Colour())
}

// Promote replaces the pawn on sq, which must stand on its promotion rank,
// with a new piece of the given kind. The replacement goes through the
// rules-disabled placement path.
func (g *Game) Promote(sq chess.Square, kind chess.Kind) error {
	pawn, ok := g.board.PieceAt(sq).(*Pawn)
	if !ok || sq.Rank != chess.PromotionRank(pawn.colour) || !kind.CanPromoteTo() {
		return chesserrors.ErrInvalidPromotion
	}

	colour := pawn.colour
	g.promotions[colour]++
	piece := NewPiece(kind, colour, chess.SideOfFile(sq.File), g.promotions[colour])

	prev := g.rules
	g.rules = false
	err := g.PlaceAt(sq, piece)
	g.rules = prev
	return err
}
