// Package environment outlines the interfaces and sturcts needed to implement
// concrete environments
package environment

import (
	"errors"

	"github.com/samuelfneumann/treasurehunt/timestep"
)

// ErrInvalidAction is returned when an environment is stepped with an
// action outside of its action space
var ErrInvalidAction = errors.New("invalid action")

// Environment implements a simulated environment with a finite number of
// discrete states and actions.
//
// States and actions are both encoded as non-negative integers. The
// observation of every TimeStep is the state identifier of the
// environment after the step.
type Environment interface {
	Reset() timestep.TimeStep // Resets between episodes

	// Step takes action in the environment, returning the next TimeStep
	// and whether the episode has ended. Step returns an error wrapping
	// ErrInvalidAction if the action is not in the action space.
	Step(action int) (timestep.TimeStep, bool, error)

	ObservationSpec() Spec
	ActionSpec() Spec
}

// Renderer is an Environment which can be rendered as text
type Renderer interface {
	Render() string
}

// Ender determines when episodes should end
type Ender interface {
	End(*timestep.TimeStep) bool
}
