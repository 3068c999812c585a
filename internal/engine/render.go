package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Text board geometry: each square is a 5x4 cell sharing its borders with
// its neighbours, giving 33 rows of 41 columns.
const (
	cellWidth  = 5
	cellHeight = 4
	renderRows = chess.BoardSize*cellHeight + 1
	renderCols = chess.BoardSize*cellWidth + 1

	lightFill = 'X'
	darkFill  = ' '
)

const fileLetters = "abcdefgh"

// Render draws the board as text with rank 8 at the top. Light squares are
// filled with 'X', and an occupied square shows the first two characters of
// its piece's ID in its middle row.
func (b *Board) Render() string {
	var sb strings.Builder
	sb.Grow(renderRows * (renderCols + 1))

	for i := 0; i < renderRows; i++ {
		rank := chess.BoardSize - 1 - i/cellHeight
		for j := 0; j < renderCols; j++ {
			sb.WriteByte(b.renderCell(i, j, rank))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) renderCell(i, j, rank int) byte {
	if i%cellHeight == 0 {
		switch {
		case j%cellWidth == 0:
			return '+'
		case i == 0 || i == renderRows-1:
			return fileLetters[j/cellWidth]
		default:
			return '-'
		}
	}

	if j%cellWidth == 0 {
		if j == 0 || j == renderCols-1 {
			return byte(chess.RankBase + rank)
		}
		return '|'
	}

	file := j / cellWidth
	fill := byte(darkFill)
	if chess.Sq(rank, file).IsLight() {
		fill = lightFill
	}
	p := b.squares[rank][file]
	if p == nil {
		return fill
	}

	col := j % cellWidth
	if i%cellHeight == cellHeight/2 {
		switch col {
		case 2:
			return p.ID()[0]
		case 3:
			return p.ID()[1]
		default:
			return ' '
		}
	}
	if col == 1 || col == 4 {
		return fill
	}
	return ' '
}

// Render draws the game's board.
func (g *Game) Render() string {
	return g.board.Render()
}
