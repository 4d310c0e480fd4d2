package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
)

const (
	ActionInit    = "game:init"
	ActionTurn    = "game:turn"
	ActionGiveUp  = "game:give_up"
	ActionRestart = "game:restart"
	ActionState   = "game:state"
	ActionError   = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	ID      string          `json:"id,omitempty"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type Payload struct {
	Event *entity.Event `json:"event,omitempty"`
	Game  *entity.Game  `json:"game,omitempty"`
	Error string        `json:"error,omitempty"`
}

type TurnRequest struct {
	Count uint32 `json:"count"`
}

type GameConfigRequest struct {
	PebblesCount      uint32 `json:"pebbles_count"`
	MaxPebblesPerTurn uint32 `json:"max_pebbles_per_turn"`
	Difficulty        string `json:"difficulty"`
}

func newMessage(id, action string, payload *Payload) *Message {
	return &Message{
		ID:      id,
		Action:  action,
		Payload: json.RawMessage(mustMarshal(payload)),
	}
}

func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func (that *Server) sendMessage(ctx context.Context, conn *websocket.Conn, message *Message) error {
	if err := wsjson.Write(ctx, conn, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
