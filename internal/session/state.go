package session

import "github.com/vovakirdan/tui-collapse/internal/grid"

// State is the controller's position in its state machine.
type State int

const (
	// StateIdle accepts selections.
	StateIdle State = iota
	// StateResolving is processing a match; selections are dropped.
	StateResolving
	// StateGameOver is terminal until Replay.
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateResolving:
		return "resolving"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	ID    ID
	State State
	Moves int
	Score int
	Board *grid.Grid // Copy; changing it does not affect the session
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		ID:    c.id,
		State: c.state,
		Moves: c.moves,
		Score: c.score,
		Board: c.grid.Clone(),
	}
}
