package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/ntictactoe-backend/internal/entity"
)

const (
	actionConnect    = "connect"
	actionGameWatch  = "game:watch"
	actionGameJoin   = "game:join"
	actionGameTurn   = "game:turn"
	actionGameUpdate = "game:update"
)

// Message is one JSON frame exchanged with a client.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries both requests and responses; unused fields are omitted.
type Payload struct {
	Token  string `json:"token,omitempty"`
	GameID string `json:"game_id,omitempty"`
	Row    *int   `json:"row,omitempty"`
	Col    *int   `json:"col,omitempty"`

	PlayerID     string            `json:"player_id,omitempty"`
	Game         *entity.GameState `json:"game,omitempty"`
	Error        string            `json:"error,omitempty"`
	NextPlayerID string            `json:"next_player_id,omitempty"`
}

func encode(action string, payload Payload) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: raw})
}
