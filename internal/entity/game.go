package entity

import (
	"errors"
	"fmt"
)

const (
	StatusUninitialized = "uninitialized"
	StatusOngoing       = "ongoing"
	StatusFinished      = "finished"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

type Difficulty string

const (
	EasyDifficulty Difficulty = "easy"
	HardDifficulty Difficulty = "hard"
)

// ParseDifficulty - converts a string into a known difficulty level.
func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(value); d {
	case EasyDifficulty, HardDifficulty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, value)
	}
}

// GameConfig holds the parameters a game is started with.
type GameConfig struct {
	PebblesCount      uint32     `json:"pebbles_count"`
	MaxPebblesPerTurn uint32     `json:"max_pebbles_per_turn"`
	Difficulty        Difficulty `json:"difficulty"`
}

// Game is the whole state of a single pebbles game.
type Game struct {
	PebblesCount      uint32     `json:"pebbles_count"`
	MaxPebblesPerTurn uint32     `json:"max_pebbles_per_turn"`
	PebblesRemaining  uint32     `json:"pebbles_remaining"`
	OpponentLastMove  uint32     `json:"opponent_last_move"`
	Difficulty        Difficulty `json:"difficulty"`
	FirstPlayer       Player     `json:"first_player"`
	Winner            *Player    `json:"winner"`
}

func (that *Game) Status() string {
	switch {
	case that.PebblesCount == 0:
		return StatusUninitialized
	case that.Winner != nil:
		return StatusFinished
	default:
		return StatusOngoing
	}
}

func (that *Game) IsFinished() bool {
	return that.Winner != nil
}

// PebblesTaken - how many pebbles have left the pile since the game started.
func (that *Game) PebblesTaken() uint32 {
	return that.PebblesCount - that.PebblesRemaining
}

// Clone - returns a deep copy, so the winner pointer is never shared between snapshots.
func (that *Game) Clone() Game {
	clone := *that
	if that.Winner != nil {
		winner := *that.Winner
		clone.Winner = &winner
	}

	return clone
}

// SetWinner - records the winner. Only the first call has an effect.
func (that *Game) SetWinner(player Player) {
	if that.Winner != nil {
		return
	}

	that.Winner = &player
}
