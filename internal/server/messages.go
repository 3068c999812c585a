package server

import "encoding/json"

// MessageType names a WebSocket message.
type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope for every WebSocket message in either direction.
// A move carries its text as a JSON string, a game state carries the game
// view and an error carries its text as a JSON string.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newMessage(t MessageType, payload interface{}) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw, _ = json.Marshal(err.Error())
		t = MessageTypeError
	}
	return Message{Type: t, Payload: raw}
}

func stateMessage(view interface{}) Message {
	return newMessage(MessageTypeGameState, view)
}

func errorMessage(text string) Message {
	return newMessage(MessageTypeError, text)
}
