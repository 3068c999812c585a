// Package selfplay plays games by picking uniformly among the legal moves of
// the side to move.
package selfplay

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Player picks random legal moves. A Player is not safe for concurrent use;
// give each goroutine its own.
type Player struct {
	rng       *rand.Rand
	promotion chess.Kind
}

// NewPlayer returns a player seeded with seed that promotes pawns to
// promotion, or to a queen when promotion is not a promotable kind.
func NewPlayer(seed int64, promotion chess.Kind) *Player {
	if !promotion.CanPromoteTo() {
		promotion = chess.Queen
	}
	return &Player{
		rng:       rand.New(rand.NewSource(seed)),
		promotion: promotion,
	}
}

// Choose picks a legal move for the side to move. It reports false when
// there is none. Each pawn advance to the last rank counts once, as a
// promotion to the player's kind.
func (p *Player) Choose(g *engine.Game) (chess.Move, bool) {
	all := g.LegalMoves(g.CurrentTurn())
	moves := all[:0:0]
	for _, m := range all {
		if m.IsPromotion() && m.Promotion != p.promotion {
			continue
		}
		moves = append(moves, m)
	}
	if len(moves) == 0 {
		return chess.NoMove, false
	}
	return moves[p.rng.Intn(len(moves))], true
}

// Step plays one random move and returns it. It returns ErrGameOver,
// leaving the game untouched, when the side to move has no legal move.
func (p *Player) Step(g *engine.Game) (chess.Move, error) {
	m, ok := p.Choose(g)
	if !ok {
		return chess.NoMove, errors.ErrGameOver
	}
	if err := g.Play(m); err != nil {
		return chess.NoMove, err
	}
	return m, nil
}
