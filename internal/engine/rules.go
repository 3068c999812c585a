package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func (b *Board) HasInsufficientMaterial() bool {
	var minors [2][]chess.Kind
	var bishopOnLight [2]bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			p := b.squares[rank][file]
			if p == nil || p.Kind() == chess.King {
				continue
			}
			switch p.Kind() {
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			case chess.Bishop:
				bishopOnLight[p.Colour()] = chess.Sq(rank, file).IsLight()
			}
			minors[p.Colour()] = append(minors[p.Colour()], p.Kind())
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// Material returns the summed piece values of a colour.
func (b *Board) Material(colour chess.Colour) int {
	total := 0
	for _, p := range b.Pieces(colour) {
		total += p.Value()
	}
	return total
}
