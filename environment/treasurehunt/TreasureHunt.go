// Package treasurehunt implements a 2D gridworld in which an agent must
// pick up a treasure and deliver it to a goal
package treasurehunt

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/treasurehunt/environment"
	"github.com/samuelfneumann/treasurehunt/timestep"
)

// ErrOutOfBounds is returned when encoding a position outside the grid or
// decoding an unknown state identifier
var ErrOutOfBounds = errors.New("out of bounds")

// TreasureHunt represents a treasure hunt gridworld.
//
// The grid contains walls, which block movement, traps, which penalize
// the agent every time it occupies them, a treasure and a goal. An
// episode succeeds when the agent reaches the goal carrying the
// treasure, and is cut off after a maximum number of steps.
//
// States are encoded as carrying*(width*height) + y*width + x, so that
// the state space has 2*width*height states.
type TreasureHunt struct {
	Starter
	task  *Delivery
	ender environment.Ender

	config       Config
	width        int
	height       int
	walls, traps map[Position]struct{}

	position    Position
	carrying    bool
	currentStep timestep.TimeStep
}

// New creates a new TreasureHunt described by c and returns it along with
// its first timestep
func New(c Config) (*TreasureHunt, timestep.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %w", err)
	}
	c = c.clone()

	starter, err := NewSingleStart(c.Start, c.Width, c.Height)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	walls := make(map[Position]struct{}, len(c.Walls))
	for _, w := range c.Walls {
		walls[w] = struct{}{}
	}
	traps := make(map[Position]struct{}, len(c.Traps))
	for _, trap := range c.Traps {
		traps[trap] = struct{}{}
	}

	t := &TreasureHunt{
		Starter: starter,
		task:    NewDelivery(c),
		ender:   environment.NewStepLimit(c.MaxSteps),
		config:  c,
		width:   c.Width,
		height:  c.Height,
		walls:   walls,
		traps:   traps,
	}

	return t, t.Reset(), nil
}

// Reset resets the environment to the starting position without the
// treasure and returns the first timestep of the new episode
func (t *TreasureHunt) Reset() timestep.TimeStep {
	t.position = t.Start()
	t.carrying = false

	obs, _ := t.Encode(t.position, t.carrying)
	t.currentStep = timestep.New(timestep.First, 0.0, obs, 0)
	return t.currentStep
}

// Step takes one action in the environment. Moving off the grid or into
// a wall leaves the agent in place and costs the collision penalty in
// addition to the step cost. The returned boolean indicates whether the
// episode has ended.
func (t *TreasureHunt) Step(action int) (timestep.TimeStep, bool, error) {
	a := Action(action)
	if !a.Valid() {
		return t.currentStep, false, fmt.Errorf("step: %w %d, must be in "+
			"[0, %d)", environment.ErrInvalidAction, action, NumActions)
	}

	old := t.position
	oldPotential := t.task.Potential(old, t.carrying)
	reward := t.task.stepCost
	var info timestep.Info

	next := old.Move(a)
	if !t.InBounds(next) || t.IsWall(next) {
		next = old
		reward += t.task.hitCost
	}
	t.position = next

	if t.task.CanPickup(t.position, t.carrying) {
		t.carrying = true
		reward += t.task.pickupReward
		info.Picked = true
	}

	if t.IsTrap(t.position) {
		reward += t.task.trapCost
		info.Trap = true
	}

	stepType := timestep.Mid
	if t.task.AtGoal(t.position, t.carrying) {
		reward += t.task.successReward
		stepType = timestep.Last
		info.Success = true
	}

	reward += t.task.Potential(t.position, t.carrying) - oldPotential

	obs, _ := t.Encode(t.position, t.carrying)
	step := timestep.New(stepType, reward, obs, t.currentStep.Number+1)
	step.Info = info

	// Success is checked first, the step limit only ends episodes which
	// are still running
	t.ender.End(&step)

	t.currentStep = step
	return step, step.Last(), nil
}

// Encode returns the state identifier of position p with or without the
// treasure
func (t *TreasureHunt) Encode(p Position, carrying bool) (int, error) {
	if !t.InBounds(p) {
		return -1, fmt.Errorf("encode: position %v %w", p, ErrOutOfBounds)
	}
	flag := 0
	if carrying {
		flag = 1
	}
	return flag*(t.width*t.height) + p.Y*t.width + p.X, nil
}

// Decode returns the position and carrying flag of a state identifier
func (t *TreasureHunt) Decode(state int) (Position, bool, error) {
	if state < 0 || state >= t.NumStates() {
		return Position{}, false, fmt.Errorf("decode: state %d %w", state,
			ErrOutOfBounds)
	}
	area := t.width * t.height
	carrying := state >= area
	ind := state % area
	y := ind / t.width
	x := ind - (y * t.width)
	return Position{X: x, Y: y}, carrying, nil
}

// NumStates returns the number of discrete states
func (t *TreasureHunt) NumStates() int {
	return 2 * t.width * t.height
}

// ObservationSpec returns the observation specification of the
// environment
func (t *TreasureHunt) ObservationSpec() environment.Spec {
	return environment.NewSpec(t.NumStates(), environment.Observation)
}

// ActionSpec returns the action specification of the environment
func (t *TreasureHunt) ActionSpec() environment.Spec {
	return environment.NewSpec(NumActions, environment.Action)
}

// Dims gets the width and height of the TreasureHunt
func (t *TreasureHunt) Dims() (w, h int) {
	return t.width, t.height
}

// Position returns the current position of the agent
func (t *TreasureHunt) Position() Position {
	return t.position
}

// Carrying returns whether the agent currently carries the treasure
func (t *TreasureHunt) Carrying() bool {
	return t.carrying
}

// Steps returns the number of steps taken since the last reset
func (t *TreasureHunt) Steps() int {
	return t.currentStep.Number
}

// LastTimeStep returns the most recent timestep
func (t *TreasureHunt) LastTimeStep() timestep.TimeStep {
	return t.currentStep
}

// Config returns a copy of the configuration of the environment
func (t *TreasureHunt) Config() Config {
	return t.config.clone()
}

// InBounds returns whether p lies within the grid
func (t *TreasureHunt) InBounds(p Position) bool {
	return p.X >= 0 && p.X < t.width && p.Y >= 0 && p.Y < t.height
}

// IsWall returns whether p is a wall
func (t *TreasureHunt) IsWall(p Position) bool {
	_, ok := t.walls[p]
	return ok
}

// IsTrap returns whether p is a trap
func (t *TreasureHunt) IsTrap(p Position) bool {
	_, ok := t.traps[p]
	return ok
}

func (t *TreasureHunt) String() string {
	str := "TreasureHunt | At: %v  |  Carrying: %v  |  Target: %v  |  " +
		"Bounds: (%d, %d)"

	return fmt.Sprintf(str, t.position, t.carrying,
		t.task.Target(t.carrying), t.width, t.height)
}
