package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
)

type memoryGame struct {
	mu   sync.RWMutex
	game *entity.Game
}

// NewMemoryGameRepository - keeps the game in process memory. Snapshots are copied in and out.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{}
}

func (that *memoryGame) Save(_ context.Context, game *entity.Game) error {
	clone := game.Clone()

	that.mu.Lock()
	that.game = &clone
	that.mu.Unlock()

	return nil
}

func (that *memoryGame) Load(_ context.Context) (*entity.Game, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.game == nil {
		return nil, ErrGameNotFound
	}

	clone := that.game.Clone()

	return &clone, nil
}
