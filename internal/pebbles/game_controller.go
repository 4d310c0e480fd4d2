package pebbles

import (
	"fmt"

	"github.com/rocketscienceinc/pebbles-backend/internal/apperror"
	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
)

// RandomSource produces uniformly distributed 32-bit values.
type RandomSource func() uint32

// Initialize - validates the config and starts a new game, letting a coin flip decide who moves first.
func Initialize(config entity.GameConfig, rnd RandomSource) (entity.Game, entity.Event, error) {
	if err := validateConfig(config); err != nil {
		return entity.Game{}, entity.Event{}, err
	}

	game := entity.Game{
		PebblesCount:      config.PebblesCount,
		MaxPebblesPerTurn: config.MaxPebblesPerTurn,
		PebblesRemaining:  config.PebblesCount,
		Difficulty:        config.Difficulty,
	}

	event := firstPlay(&game, rnd)

	return game, event, nil
}

// ApplyAction - performs a single user action. The passed game is never modified:
// on success the next state is returned, on failure the game is returned as is.
func ApplyAction(game entity.Game, action entity.Action, rnd RandomSource) (entity.Game, entity.Event, error) {
	next := game.Clone()
	next.OpponentLastMove = 0

	switch action.Kind {
	case entity.ActionTurn:
		if err := validateTurn(&next, action.Count); err != nil {
			return game, entity.Event{}, fmt.Errorf("invalid turn: %w", err)
		}

		return next, userMove(&next, action.Count, rnd), nil
	case entity.ActionGiveUp:
		if next.PebblesRemaining == 0 {
			return game, entity.Event{}, apperror.ErrGameFinished
		}

		return next, opponentMove(&next, rnd), nil
	case entity.ActionRestart:
		if action.Config == nil {
			return game, entity.Event{}, fmt.Errorf("%w: restart without config", apperror.ErrInvalidConfiguration)
		}

		restarted, event, err := Initialize(*action.Config, rnd)
		if err != nil {
			return game, entity.Event{}, fmt.Errorf("failed to restart game: %w", err)
		}

		return restarted, event, nil
	default:
		return game, entity.Event{}, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, action.Kind)
	}
}

// ReadState - returns a snapshot of the game, or a zero-valued game when there is none yet.
func ReadState(game *entity.Game) entity.Game {
	if game == nil {
		return entity.Game{}
	}

	return game.Clone()
}

func validateConfig(config entity.GameConfig) error {
	if config.PebblesCount == 0 || config.MaxPebblesPerTurn == 0 {
		return fmt.Errorf("%w: pebbles count and max pebbles per turn must be positive", apperror.ErrInvalidConfiguration)
	}

	if config.MaxPebblesPerTurn > config.PebblesCount {
		return fmt.Errorf("%w: max pebbles per turn %d exceeds pebbles count %d",
			apperror.ErrInvalidConfiguration, config.MaxPebblesPerTurn, config.PebblesCount)
	}

	if _, err := entity.ParseDifficulty(string(config.Difficulty)); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidConfiguration, err)
	}

	return nil
}

// validateTurn - checks if the move is valid.
func validateTurn(game *entity.Game, count uint32) error {
	if game.IsFinished() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	if count < 1 || count > game.MaxPebblesPerTurn {
		return fmt.Errorf("%w: you can remove from 1 to %d pebbles, got %d",
			apperror.ErrIllegalMove, game.MaxPebblesPerTurn, count)
	}

	if count > game.PebblesRemaining {
		return fmt.Errorf("%w: only %d pebbles remaining, got %d",
			apperror.ErrIllegalMove, game.PebblesRemaining, count)
	}

	return nil
}

func userMove(game *entity.Game, count uint32, rnd RandomSource) entity.Event {
	game.PebblesRemaining -= count

	if game.PebblesRemaining == 0 {
		game.SetWinner(entity.PlayerUser)
		return entity.WonEvent(entity.PlayerUser)
	}

	return opponentMove(game, rnd)
}

func firstPlay(game *entity.Game, rnd RandomSource) entity.Event {
	if rnd()%2 == 0 {
		game.FirstPlayer = entity.PlayerUser
		return entity.TurnAcceptedEvent()
	}

	game.FirstPlayer = entity.PlayerOpponent

	return opponentMove(game, rnd)
}
