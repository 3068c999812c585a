package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// JSONGame is the JSON view of a game.
type JSONGame struct {
	ID         string      `json:"id,omitempty"`
	Turn       string      `json:"turn"`
	Status     string      `json:"status"`
	Result     string      `json:"result"`
	Reason     string      `json:"reason,omitempty"`
	PlyCount   int         `json:"plyCount"`
	Hash       string      `json:"hash"`
	LastMove   string      `json:"lastMove,omitempty"`
	Moves      []string    `json:"moves,omitempty"`
	LegalMoves []string    `json:"legalMoves,omitempty"`
	Pieces     []JSONPiece `json:"pieces"`
	Board      []string    `json:"board,omitempty"`
}

// JSONPiece is one piece of a JSONGame.
type JSONPiece struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Colour string `json:"colour"`
	Square string `json:"square"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON outputs a single game in JSON format.
func OutputGameJSON(rec *Record, cfg *config.Config) error {
	return encode(cfg.OutputFile, GameToJSON(rec, cfg), cfg)
}

// OutputGamesJSON outputs multiple games as a JSON array.
func OutputGamesJSON(recs []*Record, cfg *config.Config, w io.Writer) error {
	out := &JSONOutput{Games: make([]*JSONGame, len(recs))}
	for i, rec := range recs {
		out.Games[i] = GameToJSON(rec, cfg)
	}
	return encode(w, out, cfg)
}

func encode(w io.Writer, v interface{}, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	if cfg.Output.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// GameToJSON converts a game record to its JSON view. Legal moves are those
// of the side to move and are left out once the game is over or when
// cfg.Output.ShowMoves is off.
func GameToJSON(rec *Record, cfg *config.Config) *JSONGame {
	g := rec.Game
	turn := g.CurrentTurn()
	status := g.Status(turn)

	jg := &JSONGame{
		ID:       rec.ID,
		Turn:     colourName(turn),
		Status:   status.String(),
		Result:   rec.result(),
		Reason:   rec.Reason,
		PlyCount: g.Plies(),
		Hash:     fmt.Sprintf("%016x", hashing.PositionHash(g.Board(), turn)),
		Moves:    moveTexts(rec.Moves),
		Pieces:   convertPieces(g.Board()),
	}
	if last := g.LastMove(); !last.IsNull() {
		jg.LastMove = last.String()
	}
	if cfg.Output.ShowMoves && !status.IsOver() {
		jg.LegalMoves = moveTexts(g.LegalMoves(turn))
	}
	if cfg.Output.ShowBoard {
		jg.Board = strings.Split(strings.TrimSuffix(g.Render(), "\n"), "\n")
	}
	return jg
}

// convertPieces lists White's pieces, then Black's, each in board order.
func convertPieces(b *engine.Board) []JSONPiece {
	pieces := make([]JSONPiece, 0, b.Count())
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range b.Pieces(colour) {
			pieces = append(pieces, JSONPiece{
				ID:     p.ID(),
				Kind:   strings.ToLower(p.Kind().String()),
				Colour: colourName(colour),
				Square: p.Square().String(),
			})
		}
	}
	return pieces
}

func moveTexts(moves []chess.Move) []string {
	if len(moves) == 0 {
		return nil
	}
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
