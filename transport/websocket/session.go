package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

// session is one client connection and the game its cookie is bound to.
type session struct {
	id     string
	conn   *websocket.Conn
	logger *slog.Logger

	writeMutex sync.Mutex
	gameID     string
}

func newSession(id string, conn *websocket.Conn, logger *slog.Logger) *session {
	return &session{
		id:     id,
		conn:   conn,
		logger: logger,
	}
}

// keepAlive pings the client, drops it when pongs stop arriving and closes the
// connection once ctx is done. The returned function stops it.
func (that *session) keepAlive(ctx context.Context) func() {
	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				_ = that.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
					time.Now().Add(writeWait))
				_ = that.conn.Close()
				return
			case <-ticker.C:
				if err := that.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					that.logger.Debug("failed to ping client", "error", err)
					return
				}
			}
		}
	}()

	return func() {
		close(done)
	}
}

func (that *session) sendMessage(action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	that.writeMutex.Lock()
	defer that.writeMutex.Unlock()

	_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err = that.conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *session) sendGame(action string, game *entity.Game) error {
	that.gameID = game.ID

	model := gomoku.BuildDisplayModel(game)

	return that.sendMessage(action, ResponsePayload{Game: &model})
}

func (that *session) sendError(action, message string) error {
	return that.sendMessage(action, ResponsePayload{Error: message})
}
