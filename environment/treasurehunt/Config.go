package treasurehunt

import (
	"fmt"

	"github.com/samuelfneumann/treasurehunt/timestep"
)

// Default task parameters
const (
	DefaultWidth         = 5
	DefaultHeight        = 5
	DefaultStepCost      = -0.1
	DefaultHitCost       = -1.0
	DefaultTrapCost      = -10.0
	DefaultPickupReward  = 10.0
	DefaultSuccessReward = 20.0
	DefaultMaxSteps      = 200
)

// Config describes the layout and reward scheme of a TreasureHunt. A
// Config is JSON serializable so that tasks can be stored alongside
// experiment data.
type Config struct {
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Start    Position   `json:"start"`
	Goal     Position   `json:"goal"`
	Treasure Position   `json:"treasure"`
	Walls    []Position `json:"walls"`
	Traps    []Position `json:"traps"`

	StepCost      float64 `json:"step_cost"`
	HitCost       float64 `json:"hit_cost"`
	TrapCost      float64 `json:"trap_cost"`
	PickupReward  float64 `json:"pickup_reward"`
	SuccessReward float64 `json:"success_reward"`
	Shaping       bool    `json:"shaping"`
	MaxSteps      int     `json:"max_steps"`
}

// DefaultConfig returns the default 5x5 treasure hunt. Each call returns
// freshly allocated wall and trap slices.
func DefaultConfig() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Start:    Position{X: 0, Y: 4},
		Goal:     Position{X: 4, Y: 0},
		Treasure: Position{X: 2, Y: 2},
		Walls:    []Position{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 3}},
		Traps:    []Position{{X: 2, Y: 1}, {X: 3, Y: 1}},

		StepCost:      DefaultStepCost,
		HitCost:       DefaultHitCost,
		TrapCost:      DefaultTrapCost,
		PickupReward:  DefaultPickupReward,
		SuccessReward: DefaultSuccessReward,
		Shaping:       true,
		MaxSteps:      DefaultMaxSteps,
	}
}

// Validate ensures that the Config describes a well-posed task
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("grid dimensions must be positive, have (%d, %d)",
			c.Width, c.Height)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("max steps must be positive, have %d", c.MaxSteps)
	}

	walls := make(map[Position]struct{}, len(c.Walls))
	for _, w := range c.Walls {
		if !c.inBounds(w) {
			return fmt.Errorf("wall %v out of bounds", w)
		}
		walls[w] = struct{}{}
	}
	for _, trap := range c.Traps {
		if !c.inBounds(trap) {
			return fmt.Errorf("trap %v out of bounds", trap)
		}
	}

	named := []struct {
		name string
		pos  Position
	}{{"start", c.Start}, {"goal", c.Goal}, {"treasure", c.Treasure}}
	for _, n := range named {
		if !c.inBounds(n.pos) {
			return fmt.Errorf("%v %v out of bounds", n.name, n.pos)
		}
		if _, ok := walls[n.pos]; ok {
			return fmt.Errorf("%v %v is a wall", n.name, n.pos)
		}
	}
	return nil
}

// NumStates returns the number of discrete states of the task described
// by the Config
func (c Config) NumStates() int {
	return 2 * c.Width * c.Height
}

// Create returns the TreasureHunt described by the Config as well as
// its first timestep
func (c Config) Create() (*TreasureHunt, timestep.TimeStep, error) {
	return New(c)
}

func (c Config) inBounds(p Position) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height
}

// clone returns a deep copy of c
func (c Config) clone() Config {
	c.Walls = append([]Position(nil), c.Walls...)
	c.Traps = append([]Position(nil), c.Traps...)
	return c
}
