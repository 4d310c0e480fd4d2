package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
)

func TestNewMessage(t *testing.T) {
	// Given: a counter turn reply
	event := entity.CounterTurnEvent(2)
	game := &entity.Game{PebblesCount: 10, MaxPebblesPerTurn: 3, PebblesRemaining: 7, OpponentLastMove: 2}

	// When: wrapping it into a message
	message := newMessage("msg-1", ActionTurn, &Payload{Event: &event, Game: game})

	// Then: the envelope keeps the id and action and the payload decodes back
	assert.Equal(t, "msg-1", message.ID)
	assert.Equal(t, ActionTurn, message.Action)

	var payload Payload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))
	assert.Equal(t, &event, payload.Event)
	assert.Equal(t, game, payload.Game)
	assert.Empty(t, payload.Error)
}
