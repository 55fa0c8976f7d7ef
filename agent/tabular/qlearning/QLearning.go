// Package qlearning implements the tabular Q-Learning algorithm with an
// ε-greedy behaviour policy whose exploration rate decays geometrically
// between episodes.
package qlearning

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/treasurehunt/agent"
	"github.com/samuelfneumann/treasurehunt/agent/tabular"
	"github.com/samuelfneumann/treasurehunt/agent/tabular/policy"
)

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	*QLearner
	behaviour *policy.EGreedy
	target    *policy.EGreedy
	table     *tabular.QTable

	epsilonEnd   float64
	epsilonDecay float64
	seed         uint64
}

// New creates a new QLearning agent. The behaviour policy draws all of
// its random numbers from a source seeded with seed, so that agents
// created with equal seeds select equal actions given equal inputs.
func New(c Config, seed uint64) (*QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	table, err := tabular.NewQTable(c.NumStates, c.NumActions)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	behaviour, err := policy.NewEGreedy(c.EpsilonStart, table, seed)
	if err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	target := policy.NewGreedy(table, seed+1)
	learner := NewQLearner(table, c.LearningRate, c.Discount)

	return &QLearning{
		QLearner:     learner,
		behaviour:    behaviour,
		target:       target,
		table:        table,
		epsilonEnd:   c.EpsilonEnd,
		epsilonDecay: c.EpsilonDecay,
		seed:         seed,
	}, nil
}

// SelectAction selects an action using the ε-greedy behaviour policy
func (q *QLearning) SelectAction(state int) (int, error) {
	return q.behaviour.SelectAction(state)
}

// TargetPolicy returns the greedy policy the agent learns about
func (q *QLearning) TargetPolicy() agent.Policy {
	return q.target
}

// DecayEpsilon decays the exploration rate geometrically, never going
// below the configured floor
func (q *QLearning) DecayEpsilon() {
	e := math.Max(q.epsilonEnd, q.behaviour.Epsilon()*q.epsilonDecay)
	q.behaviour.SetEpsilon(e)
}

// EndEpisode decays the exploration rate. It should be called once per
// completed episode, never mid-episode.
func (q *QLearning) EndEpisode() {
	q.DecayEpsilon()
}

// Epsilon returns the current exploration rate
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}

// NumStates returns the number of states in the value table
func (q *QLearning) NumStates() int {
	states, _ := q.table.Dims()
	return states
}

// NumActions returns the number of actions in the value table
func (q *QLearning) NumActions() int {
	_, actions := q.table.Dims()
	return actions
}

// Values returns a copy of the action values, one row per state
func (q *QLearning) Values() *mat.Dense {
	return q.table.Values()
}

// ActionValues returns a copy of the action values in state
func (q *QLearning) ActionValues(state int) ([]float64, error) {
	row, err := q.table.Row(state)
	if err != nil {
		return nil, fmt.Errorf("actionValues: %w", err)
	}
	return append([]float64(nil), row...), nil
}

// Seed returns the seed of the agent's random source
func (q *QLearning) Seed() uint64 {
	return q.seed
}

func (q *QLearning) String() string {
	return fmt.Sprintf("QLearning | ε: %.3f  |  Values:\n%v", q.Epsilon(),
		q.table)
}
