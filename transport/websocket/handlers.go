package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
)

var ErrPayloadRequired = errors.New("payload is required")

func (that *Server) handleInit(ctx context.Context, msg *Message) (*Payload, error) {
	config, err := decodeGameConfig(msg)
	if err != nil {
		return nil, err
	}

	game, event, err := that.gameManager.Initialize(ctx, msg.ID, config)
	if err != nil {
		return nil, err
	}

	return &Payload{Event: &event, Game: game}, nil
}

func (that *Server) handleTurn(ctx context.Context, msg *Message) (*Payload, error) {
	if len(msg.Payload) == 0 {
		return nil, ErrPayloadRequired
	}

	var request TurnRequest
	if err := json.Unmarshal(msg.Payload, &request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return that.applyAction(ctx, msg, entity.TurnAction(request.Count))
}

func (that *Server) handleGiveUp(ctx context.Context, msg *Message) (*Payload, error) {
	return that.applyAction(ctx, msg, entity.GiveUpAction())
}

func (that *Server) handleRestart(ctx context.Context, msg *Message) (*Payload, error) {
	config, err := decodeGameConfig(msg)
	if err != nil {
		return nil, err
	}

	return that.applyAction(ctx, msg, entity.RestartAction(config.Difficulty, config.PebblesCount, config.MaxPebblesPerTurn))
}

func (that *Server) handleState(ctx context.Context, _ *Message) (*Payload, error) {
	game, err := that.gameManager.ReadState(ctx)
	if err != nil {
		return nil, err
	}

	return &Payload{Game: game}, nil
}

func (that *Server) applyAction(ctx context.Context, msg *Message, action entity.Action) (*Payload, error) {
	game, event, err := that.gameManager.ApplyAction(ctx, msg.ID, action)
	if err != nil {
		return nil, err
	}

	return &Payload{Event: &event, Game: game}, nil
}

func decodeGameConfig(msg *Message) (entity.GameConfig, error) {
	if len(msg.Payload) == 0 {
		return entity.GameConfig{}, ErrPayloadRequired
	}

	var request GameConfigRequest
	if err := json.Unmarshal(msg.Payload, &request); err != nil {
		return entity.GameConfig{}, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	difficulty, err := entity.ParseDifficulty(request.Difficulty)
	if err != nil {
		return entity.GameConfig{}, err
	}

	return entity.GameConfig{
		PebblesCount:      request.PebblesCount,
		MaxPebblesPerTurn: request.MaxPebblesPerTurn,
		Difficulty:        difficulty,
	}, nil
}
