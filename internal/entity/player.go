package entity

// Player identifies one of the two sides of a game.
type Player string

const (
	PlayerUser     Player = "user"
	PlayerOpponent Player = "opponent"
)
