package treasurehunt

import (
	"fmt"

	"github.com/samuelfneumann/treasurehunt/utils/intutils"
)

// Position is an (x, y) cell of the grid. The origin is the top-left
// cell, x grows to the right and y grows downwards.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the Manhattan distance between two positions
func (p Position) Manhattan(o Position) int {
	return intutils.Abs(p.X-o.X) + intutils.Abs(p.Y-o.Y)
}

// Move returns the position reached from p by taking action a, ignoring
// walls and grid bounds
func (p Position) Move(a Action) Position {
	d := deltas[a]
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Action is a movement in the grid. The integer values of actions are
// stable and shared with any external controller.
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
	Stay
)

// NumActions is the number of actions available in every state
const NumActions = 5

// deltas are the per-action coordinate offsets, indexed by Action
var deltas = [NumActions]Position{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Stay:  {X: 0, Y: 0},
}

// Valid returns whether a is one of the NumActions actions
func (a Action) Valid() bool {
	return a >= Up && a <= Stay
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Stay:
		return "Stay"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}
