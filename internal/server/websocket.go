package server

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// requireUpgrade rejects plain HTTP requests to the WebSocket routes.
func requireUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	}
}

// liveGame serves one WebSocket connection for the game named in the route.
// Incoming move messages are played; the resulting view reaches the sender
// through the broadcast like every other subscriber. Failures go back to the
// sender alone as error messages.
func liveGame(mgr *Manager, logw io.Writer, logMu *sync.Mutex) func(*websocket.Conn) {
	logf := func(format string, args ...interface{}) {
		if logw == nil {
			return
		}
		logMu.Lock()
		defer logMu.Unlock()
		fmt.Fprintf(logw, format+"\n", args...)
	}

	return func(c *websocket.Conn) {
		id := c.Params("id")
		if err := mgr.Subscribe(id, c); err != nil {
			_ = c.WriteJSON(errorMessage(err.Error()))
			_ = c.Close()
			return
		}
		defer mgr.Unsubscribe(id, c)

		for {
			mt, data, err := c.ReadMessage()
			if err != nil {
				logf("ws %s: read: %v", id, err)
				return
			}
			if mt != websocket.TextMessage {
				continue
			}
			if err := handleMessage(mgr, id, data); err != nil {
				if werr := mgr.Notify(id, c, errorMessage(err.Error())); werr != nil {
					logf("ws %s: write: %v", id, werr)
					return
				}
			}
		}
	}
}

func handleMessage(mgr *Manager, id string, data []byte) error {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	switch msg.Type {
	case MessageTypeMove:
		var text string
		if err := json.Unmarshal(msg.Payload, &text); err != nil {
			return fmt.Errorf("invalid move payload: %w", err)
		}
		_, err := mgr.Play(id, text)
		return err
	default:
		return fmt.Errorf("unknown message type: %q", msg.Type)
	}
}
