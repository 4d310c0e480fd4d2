package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
	"github.com/rocketscienceinc/pebbles-backend/internal/repository"
	"github.com/rocketscienceinc/pebbles-backend/internal/usecase"
)

type client struct {
	t    *testing.T
	ctx  context.Context
	conn *websocket.Conn
}

func newClient(t *testing.T) *client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), 7)

	srv := httptest.NewServer(New(logger, manager).Handler())
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		conn.Close(websocket.StatusNormalClosure, "")
	})

	return &client{t: t, ctx: ctx, conn: conn}
}

func (that *client) send(message any) (*Message, *Payload) {
	that.t.Helper()

	require.NoError(that.t, wsjson.Write(that.ctx, that.conn, message))

	var response Message
	require.NoError(that.t, wsjson.Read(that.ctx, that.conn, &response))

	var payload Payload
	require.NoError(that.t, json.Unmarshal(response.Payload, &payload))

	return &response, &payload
}

func TestServer_GameFlow(t *testing.T) {
	c := newClient(t)

	// Given: nothing was initialized yet
	_, payload := c.send(Message{Action: ActionState})
	require.Empty(t, payload.Error)
	assert.Equal(t, &entity.Game{}, payload.Game)

	// When: the game is initialized
	response, payload := c.send(map[string]any{
		"id":      "init-1",
		"action":  ActionInit,
		"payload": map[string]any{"pebbles_count": 101, "max_pebbles_per_turn": 3, "difficulty": "easy"},
	})

	// Then: the reply carries the same id, the event and the game
	require.Empty(t, payload.Error)
	assert.Equal(t, "init-1", response.ID)
	assert.Equal(t, ActionInit, response.Action)
	require.NotNil(t, payload.Event)
	require.NotNil(t, payload.Game)
	assert.Equal(t, uint32(101), payload.Game.PebblesCount)
	remaining := payload.Game.PebblesRemaining

	// When: the user takes one pebble
	_, payload = c.send(map[string]any{"action": ActionTurn, "payload": map[string]any{"count": 1}})

	// Then: the opponent answered with a counter turn
	require.Empty(t, payload.Error)
	assert.Equal(t, entity.EventCounterTurn, payload.Event.Kind)
	assert.Equal(t, remaining-1-payload.Game.OpponentLastMove, payload.Game.PebblesRemaining)
	remaining = payload.Game.PebblesRemaining

	// When: the user gives up the turn
	_, payload = c.send(Message{Action: ActionGiveUp})

	// Then: only the opponent took pebbles
	require.Empty(t, payload.Error)
	assert.Equal(t, remaining-payload.Game.OpponentLastMove, payload.Game.PebblesRemaining)

	// When: the game is restarted
	_, payload = c.send(map[string]any{
		"action":  ActionRestart,
		"payload": map[string]any{"pebbles_count": 50, "max_pebbles_per_turn": 3, "difficulty": "hard"},
	})
	require.Empty(t, payload.Error)

	// Then: the state reports the new configuration
	_, payload = c.send(Message{Action: ActionState})
	assert.Equal(t, uint32(50), payload.Game.PebblesCount)
	assert.Equal(t, uint32(3), payload.Game.MaxPebblesPerTurn)
	assert.Equal(t, entity.HardDifficulty, payload.Game.Difficulty)
	assert.Nil(t, payload.Game.Winner)
}

func TestServer_Errors(t *testing.T) {
	t.Run("Illegal turn keeps the connection open", func(t *testing.T) {
		c := newClient(t)

		_, payload := c.send(map[string]any{
			"action":  ActionInit,
			"payload": map[string]any{"pebbles_count": 10, "max_pebbles_per_turn": 2, "difficulty": "easy"},
		})
		require.Empty(t, payload.Error)
		before := payload.Game

		_, payload = c.send(map[string]any{"action": ActionTurn, "payload": map[string]any{"count": 3}})
		assert.Contains(t, payload.Error, "illegal move")

		_, payload = c.send(Message{Action: ActionState})
		assert.Equal(t, before, payload.Game)
	})

	t.Run("Invalid configuration", func(t *testing.T) {
		c := newClient(t)

		_, payload := c.send(map[string]any{
			"action":  ActionInit,
			"payload": map[string]any{"pebbles_count": 2, "max_pebbles_per_turn": 3, "difficulty": "easy"},
		})

		assert.Contains(t, payload.Error, "invalid game configuration")
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		c := newClient(t)

		_, payload := c.send(map[string]any{
			"action":  ActionRestart,
			"payload": map[string]any{"pebbles_count": 20, "max_pebbles_per_turn": 3, "difficulty": "medium"},
		})

		assert.Contains(t, payload.Error, "unknown difficulty")
	})

	t.Run("Missing payload", func(t *testing.T) {
		c := newClient(t)

		_, payload := c.send(Message{Action: ActionTurn})

		assert.Equal(t, ErrPayloadRequired.Error(), payload.Error)
	})

	t.Run("Unknown action", func(t *testing.T) {
		c := newClient(t)

		response, payload := c.send(Message{ID: "x", Action: "game:dance"})

		assert.Equal(t, "x", response.ID)
		assert.Contains(t, payload.Error, "unknown action")
	})

	t.Run("Malformed message", func(t *testing.T) {
		c := newClient(t)

		require.NoError(t, c.conn.Write(c.ctx, websocket.MessageText, []byte("{not json")))

		var response Message
		require.NoError(t, wsjson.Read(c.ctx, c.conn, &response))

		assert.Equal(t, ActionError, response.Action)
	})
}
