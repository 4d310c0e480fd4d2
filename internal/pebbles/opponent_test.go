package pebbles

import (
	"testing"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMove(t *testing.T) {
	t.Run("Easy draws once", func(t *testing.T) {
		// 7 % 3 + 1
		assert.Equal(t, uint32(2), GenerateMove(entity.EasyDifficulty, 3, sequence(t, 7)))
	})

	t.Run("Hard always re-rolls", func(t *testing.T) {
		// The first draw is discarded, 4 % 3 + 1 is returned.
		assert.Equal(t, uint32(2), GenerateMove(entity.HardDifficulty, 3, sequence(t, 7, 4)))
	})

	t.Run("Stays within bounds", func(t *testing.T) {
		for _, difficulty := range []entity.Difficulty{entity.EasyDifficulty, entity.HardDifficulty} {
			rnd := seeded(7)
			for maxPerTurn := uint32(1); maxPerTurn <= 10; maxPerTurn++ {
				for range 100 {
					move := GenerateMove(difficulty, maxPerTurn, rnd)
					assert.GreaterOrEqual(t, move, uint32(1))
					assert.LessOrEqual(t, move, maxPerTurn)
				}
			}
		}
	})
}

func TestCalculateOpponentMove(t *testing.T) {
	t.Run("Single pebble per turn needs no draw", func(t *testing.T) {
		game := &entity.Game{MaxPebblesPerTurn: 1, Difficulty: entity.HardDifficulty}

		assert.Equal(t, uint32(1), calculateOpponentMove(game, sequence(t)))
	})

	t.Run("Uses the difficulty policy otherwise", func(t *testing.T) {
		game := &entity.Game{MaxPebblesPerTurn: 5, Difficulty: entity.HardDifficulty}

		// 9 is discarded, 13 % 5 + 1
		assert.Equal(t, uint32(4), calculateOpponentMove(game, sequence(t, 9, 13)))
	})
}

func TestOpponentMove(t *testing.T) {
	t.Run("Counter turn keeps the game going", func(t *testing.T) {
		game := &entity.Game{PebblesCount: 20, MaxPebblesPerTurn: 4, PebblesRemaining: 10, Difficulty: entity.EasyDifficulty}

		event := opponentMove(game, sequence(t, 2))

		assert.Equal(t, entity.CounterTurnEvent(3), event)
		assert.Equal(t, uint32(7), game.PebblesRemaining)
		assert.Equal(t, uint32(3), game.OpponentLastMove)
		assert.Nil(t, game.Winner)
	})

	t.Run("Taking the last pebble wins", func(t *testing.T) {
		game := &entity.Game{PebblesCount: 20, MaxPebblesPerTurn: 4, PebblesRemaining: 1, Difficulty: entity.EasyDifficulty}

		event := opponentMove(game, sequence(t, 3))

		assert.Equal(t, entity.WonEvent(entity.PlayerOpponent), event)
		assert.Equal(t, uint32(1), game.OpponentLastMove)
		assert.Equal(t, entity.PlayerOpponent, *game.Winner)
	})
}
