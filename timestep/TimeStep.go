// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
	"strings"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// Info holds the signals an environment raises on a single step. Success
// and Timeout never occur together.
type Info struct {
	Picked  bool // treasure picked up on this step
	Trap    bool // agent occupies a trap cell after this step
	Success bool // treasure delivered to the goal, episode ends
	Timeout bool // step limit reached without success, episode ends
}

// Empty returns whether no signal was raised
func (i Info) Empty() bool {
	return !i.Picked && !i.Trap && !i.Success && !i.Timeout
}

func (i Info) String() string {
	var signals []string
	if i.Picked {
		signals = append(signals, "picked")
	}
	if i.Trap {
		signals = append(signals, "trap")
	}
	if i.Success {
		signals = append(signals, "success")
	}
	if i.Timeout {
		signals = append(signals, "timeout")
	}
	return "{" + strings.Join(signals, ", ") + "}"
}

// TimeStep packages together a single timestep in an environment.
// Observation is the discrete state identifier the environment moved to
// and Number counts the steps taken since the last reset.
type TimeStep struct {
	StepType
	Reward      float64
	Observation int
	Number      int
	Info
}

// New returns a new TimeStep
func New(t StepType, r float64, o int, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %d  |  " +
		"Step Number:  %v  |  Info: %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Observation, t.Number,
		t.Info)
}

// Transition is a single (s, a, r, s', done) transition between two
// consecutive TimeSteps
type Transition struct {
	State     int
	Action    int
	Reward    float64
	NextState int
	Done      bool
}

// NewTransition creates the transition caused by taking action in step
// and observing next
func NewTransition(step TimeStep, action int, next TimeStep) Transition {
	return Transition{
		State:     step.Observation,
		Action:    action,
		Reward:    next.Reward,
		NextState: next.Observation,
		Done:      next.Last(),
	}
}
