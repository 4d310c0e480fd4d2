package entity

const (
	ActionTurn    = "turn"
	ActionGiveUp  = "give_up"
	ActionRestart = "restart"
)

const (
	EventTurnAccepted = "turn_accepted"
	EventCounterTurn  = "counter_turn"
	EventWon          = "won"
)

// Action is a single user request against the game.
// Count is only meaningful for turns, Config only for restarts.
type Action struct {
	Kind   string      `json:"kind"`
	Count  uint32      `json:"count,omitempty"`
	Config *GameConfig `json:"config,omitempty"`
}

func TurnAction(count uint32) Action {
	return Action{Kind: ActionTurn, Count: count}
}

func GiveUpAction() Action {
	return Action{Kind: ActionGiveUp}
}

func RestartAction(difficulty Difficulty, pebblesCount, maxPebblesPerTurn uint32) Action {
	return Action{
		Kind: ActionRestart,
		Config: &GameConfig{
			PebblesCount:      pebblesCount,
			MaxPebblesPerTurn: maxPebblesPerTurn,
			Difficulty:        difficulty,
		},
	}
}

// Event is the notification sent back to the user after a transition.
type Event struct {
	Kind   string  `json:"kind"`
	Count  uint32  `json:"count"`
	Winner *Player `json:"winner,omitempty"`
}

func TurnAcceptedEvent() Event {
	return Event{Kind: EventTurnAccepted}
}

func CounterTurnEvent(count uint32) Event {
	return Event{Kind: EventCounterTurn, Count: count}
}

func WonEvent(player Player) Event {
	return Event{Kind: EventWon, Winner: &player}
}
