package pebbles

import "github.com/rocketscienceinc/pebbles-backend/internal/entity"

// opponentMove - takes pebbles on behalf of the opponent. It never takes more than what is left.
func opponentMove(game *entity.Game, rnd RandomSource) entity.Event {
	count := min(calculateOpponentMove(game, rnd), game.PebblesRemaining)

	game.PebblesRemaining -= count
	game.OpponentLastMove = count

	if game.PebblesRemaining == 0 {
		game.SetWinner(entity.PlayerOpponent)
		return entity.WonEvent(entity.PlayerOpponent)
	}

	return entity.CounterTurnEvent(count)
}

func calculateOpponentMove(game *entity.Game, rnd RandomSource) uint32 {
	if game.MaxPebblesPerTurn == 1 {
		return 1
	}

	return GenerateMove(game.Difficulty, game.MaxPebblesPerTurn, rnd)
}

// GenerateMove - picks how many pebbles the opponent removes, in [1, maxPerTurn].
// maxPerTurn must be positive.
func GenerateMove(difficulty entity.Difficulty, maxPerTurn uint32, rnd RandomSource) uint32 {
	if difficulty == entity.HardDifficulty {
		count := rnd() % maxPerTurn
		// count < maxPerTurn, so the second draw always happens.
		if count/2 < maxPerTurn {
			count = rnd() % maxPerTurn
		}

		return count + 1
	}

	return rnd()%maxPerTurn + 1
}
