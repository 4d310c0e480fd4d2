package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/pebbles-backend/internal/entity"
	"github.com/rocketscienceinc/pebbles-backend/internal/pebbles"
	"github.com/rocketscienceinc/pebbles-backend/internal/pkg"
	"github.com/rocketscienceinc/pebbles-backend/internal/repository"
)

type gameRepo interface {
	Save(ctx context.Context, game *entity.Game) error
	Load(ctx context.Context) (*entity.Game, error)
}

// GameManager hosts the single game of the service. Messages are handled one at a time:
// each one either commits a whole transition or leaves the stored game as it was.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	seed     uint64
	// drawID names the random stream of one message. It is never taken from the client,
	// so a reused message id can't replay the opponent's moves.
	drawID func() string

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, seed uint64) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "gameManager"),
		gameRepo: gameRepo,
		seed:     seed,
		drawID:   pkg.GenerateMessageID,
	}
}

// Initialize - starts a new game, replacing whatever was stored.
func (that *GameManager) Initialize(ctx context.Context, messageID string, config entity.GameConfig) (*entity.Game, entity.Event, error) {
	log := that.logger.With("method", "Initialize", "messageID", messageID)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, event, err := pebbles.Initialize(config, that.random(log))
	if err != nil {
		log.Warn("invalid game config", "error", err)
		return nil, entity.Event{}, fmt.Errorf("failed to initialize game: %w", err)
	}

	if err = that.saveGame(ctx, &game); err != nil {
		return nil, entity.Event{}, err
	}

	log.Debug("game initialized",
		"total", game.PebblesCount,
		"maxPerTurn", game.MaxPebblesPerTurn,
		"remaining", game.PebblesRemaining,
		"firstPlayer", game.FirstPlayer)

	that.logEvent(log, &game, event)

	return &game, event, nil
}

// EnsureGame - initializes the game with the given config unless one is already stored.
func (that *GameManager) EnsureGame(ctx context.Context, config entity.GameConfig) (*entity.Game, error) {
	that.mu.Lock()
	stored, err := that.loadGame(ctx)
	that.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if stored != nil {
		that.logger.Info("resuming stored game", "remaining", stored.PebblesRemaining, "status", stored.Status())
		return stored, nil
	}

	game, _, err := that.Initialize(ctx, pkg.GenerateMessageID(), config)
	if err != nil {
		return nil, err
	}

	return game, nil
}

// ApplyAction - applies a user action to the stored game. Before any initialization
// the action runs against a zero-valued game.
func (that *GameManager) ApplyAction(ctx context.Context, messageID string, action entity.Action) (*entity.Game, entity.Event, error) {
	log := that.logger.With("method", "ApplyAction", "messageID", messageID, "action", action.Kind)

	that.mu.Lock()
	defer that.mu.Unlock()

	stored, err := that.loadGame(ctx)
	if err != nil {
		return nil, entity.Event{}, err
	}

	next, event, err := pebbles.ApplyAction(pebbles.ReadState(stored), action, that.random(log))
	if err != nil {
		log.Warn("action rejected", "error", err)
		return nil, entity.Event{}, fmt.Errorf("failed to apply %s: %w", action.Kind, err)
	}

	if err = that.saveGame(ctx, &next); err != nil {
		return nil, entity.Event{}, err
	}

	that.logEvent(log, &next, event)

	return &next, event, nil
}

// ReadState - returns a snapshot of the game, zero-valued when nothing was initialized yet.
func (that *GameManager) ReadState(ctx context.Context) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stored, err := that.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := pebbles.ReadState(stored)

	return &snapshot, nil
}

// random - must be called with the lock held.
func (that *GameManager) random(log *slog.Logger) pebbles.RandomSource {
	drawID := that.drawID()
	log.Debug("drawing opponent moves", "drawID", drawID)

	return pkg.NewDrawRandom(that.seed, drawID)
}

func (that *GameManager) loadGame(ctx context.Context) (*entity.Game, error) {
	game, err := that.gameRepo.Load(ctx)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	return game, nil
}

func (that *GameManager) saveGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.Save(ctx, game); err != nil {
		that.logger.Error("failed to save game", "error", err)
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

func (that *GameManager) logEvent(log *slog.Logger, game *entity.Game, event entity.Event) {
	switch event.Kind {
	case entity.EventWon:
		log.Info("game finished", "winner", *event.Winner)
	case entity.EventCounterTurn:
		log.Debug("counter turn", "count", event.Count, "taken", game.PebblesTaken(), "remaining", game.PebblesRemaining)
	case entity.EventTurnAccepted:
		log.Debug("waiting for user turn", "remaining", game.PebblesRemaining)
	}
}
