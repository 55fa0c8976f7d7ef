// Package agent defines an agent interface
package agent

import (
	"github.com/samuelfneumann/treasurehunt/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// values the Policy acts on.
type Agent interface {
	Learner
	Policy

	// NumStates returns the number of states the Agent can learn about
	NumStates() int

	// Epsilon returns the current exploration rate of the behaviour
	// policy
	Epsilon() float64
}

// Learner implements a learning algorithm that defines how values are
// updated.
type Learner interface {
	// Update performs a single update using a transition
	Update(t timestep.Transition) error

	// EndEpisode performs cleanup at the end of an episode. It must be
	// called exactly once per completed episode.
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Agents usually have a
// target and behaviour policy. For a given agent, the Policy and Learner
// should share the same value table so that any changes the learner
// makes to the values are reflected in the actions the Policy chooses
type Policy interface {
	SelectAction(state int) (int, error)
}
