// Package server hosts chess games over HTTP and WebSocket.
package server

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// Conn is the write side of a live connection. *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v interface{}) error
}

// hostedGame is one game plus its live subscribers. mu guards the engine,
// which is not safe for concurrent use, and every write to the subscribers.
type hostedGame struct {
	mu          sync.Mutex
	id          string
	game        *engine.Game
	moves       []chess.Move
	subscribers map[Conn]struct{}
}

func (h *hostedGame) view(cfg *config.Config) *output.JSONGame {
	return output.GameToJSON(&output.Record{ID: h.id, Game: h.game, Moves: h.moves}, cfg)
}

// broadcast sends msg to every subscriber, dropping the ones that fail.
// The caller holds h.mu.
func (h *hostedGame) broadcast(msg Message) {
	for conn := range h.subscribers {
		if err := conn.WriteJSON(msg); err != nil {
			delete(h.subscribers, conn)
		}
	}
}

// Manager owns the hosted games.
type Manager struct {
	cfg   *config.Config
	mu    sync.RWMutex
	games map[string]*hostedGame
}

// NewManager returns an empty manager. Views are shaped by cfg.Output and
// the number of games is capped by cfg.Server.MaxGames.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		cfg:   cfg,
		games: make(map[string]*hostedGame),
	}
}

// Create starts a new game from the initial position and returns its ID.
func (m *Manager) Create() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limit := m.cfg.Server.MaxGames; limit > 0 && len(m.games) >= limit {
		return "", errors.ErrGameLimit
	}
	id := uuid.New().String()
	m.games[id] = &hostedGame{
		id:          id,
		game:        engine.NewGame(),
		subscribers: make(map[Conn]struct{}),
	}
	return id, nil
}

// IDs returns the hosted game IDs in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Delete removes a game. Subscribers stay connected but receive nothing more.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.games[id]; !ok {
		return errors.ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *Manager) get(id string) (*hostedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	h, ok := m.games[id]
	if !ok {
		return nil, errors.ErrGameNotFound
	}
	return h, nil
}

// View returns the JSON view of a game.
func (m *Manager) View(id string) (*output.JSONGame, error) {
	h, err := m.get(id)
	if err != nil {
		return nil, err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view(m.cfg), nil
}

// Moves lists legal moves as text. With an empty square it lists the moves
// of the side to move; otherwise the moves of whichever piece stands on the
// square, regardless of turn.
func (m *Manager) Moves(id, square string) ([]string, error) {
	h, err := m.get(id)
	if err != nil {
		return nil, err
	}
	var from chess.Square
	if square != "" {
		if from, err = chess.ParseSquare(square); err != nil {
			return nil, err
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var moves []chess.Move
	if square == "" {
		moves = h.game.LegalMoves(h.game.CurrentTurn())
	} else {
		moves = h.game.LegalMovesFrom(from)
	}
	texts := make([]string, len(moves))
	for i, mv := range moves {
		texts[i] = mv.String()
	}
	return texts, nil
}

// Play parses and plays a move for the side to move, then broadcasts the
// new view to the game's subscribers.
func (m *Manager) Play(id, text string) (*output.JSONGame, error) {
	h, err := m.get(id)
	if err != nil {
		return nil, err
	}
	mv, err := chess.ParseMove(text)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.game.Status(h.game.CurrentTurn()).IsOver() {
		return nil, errors.Wrapf(errors.ErrGameOver, "game %s", id)
	}
	if err := h.game.Play(mv); err != nil {
		return nil, err
	}
	h.moves = append(h.moves, mv)

	view := h.view(m.cfg)
	h.broadcast(stateMessage(view))
	return view, nil
}

// Subscribe registers conn for the game's updates and sends it the current
// view.
func (m *Manager) Subscribe(id string, conn Conn) error {
	h, err := m.get(id)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := conn.WriteJSON(stateMessage(h.view(m.cfg))); err != nil {
		return err
	}
	h.subscribers[conn] = struct{}{}
	return nil
}

// Unsubscribe stops updates to conn. Unknown games and connections are
// ignored.
func (m *Manager) Unsubscribe(id string, conn Conn) {
	h, err := m.get(id)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, conn)
}

// Notify writes msg to a single connection, serialised with the game's
// broadcasts. If the game is gone the message is written directly.
func (m *Manager) Notify(id string, conn Conn, msg Message) error {
	h, err := m.get(id)
	if err != nil {
		return conn.WriteJSON(msg)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return conn.WriteJSON(msg)
}
