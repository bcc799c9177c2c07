package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

const (
	actionConnect = "connect"
	actionNewGame = "game:new"
	actionTurn    = "game:turn"
	actionJump    = "game:jump"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type GameRef struct {
	ID string `json:"id"`
}

type RequestPayload struct {
	Game *GameRef `json:"game,omitempty"`
	Cell *int     `json:"cell,omitempty"`
	Move *int     `json:"move,omitempty"`
}

type ResponsePayload struct {
	Game  *gomoku.DisplayModel `json:"game,omitempty"`
	Error string               `json:"error,omitempty"`
}

func (that *RequestPayload) gameID() string {
	if that.Game == nil {
		return ""
	}
	return that.Game.ID
}
