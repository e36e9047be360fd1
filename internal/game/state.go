// Package game provides level progression and the explore loop that plays generated dungeons.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode where the player slides through the level.
	StateExplore State = iota
	// StateLevelComplete means the player reached the exit and can descend.
	StateLevelComplete
	// StateDead means the player ran out of health.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateLevelComplete:
		return "level_complete"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four slide directions.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Valid reports whether d moves exactly one tile along one axis.
func (d Direction) Valid() bool {
	return abs(d.DX)+abs(d.DY) == 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
