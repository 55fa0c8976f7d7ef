package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/treasurehunt/agent/tabular"
	"github.com/samuelfneumann/treasurehunt/timestep"
)

// QLearner implements the update functionality for the Q-Learning
// algorithm.
type QLearner struct {
	table        *tabular.QTable
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// table is the table of action values of the policy to learn
func NewQLearner(table *tabular.QTable, learningRate,
	discount float64) *QLearner {
	return &QLearner{table, learningRate, discount}
}

// Update moves the value of the transition's state-action pair towards
// the bootstrapped Q-Learning target. Terminal transitions have no
// continuation value, so the next state is ignored when t.Done is set.
func (q *QLearner) Update(t timestep.Transition) error {
	current, err := q.table.At(t.State, t.Action)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	target, err := q.target(t)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	updated := current + q.learningRate*(target-current)
	return q.table.Set(t.State, t.Action, updated)
}

// TdError returns the temporal difference error of a transition
func (q *QLearner) TdError(t timestep.Transition) (float64, error) {
	current, err := q.table.At(t.State, t.Action)
	if err != nil {
		return 0, fmt.Errorf("tdError: %w", err)
	}

	target, err := q.target(t)
	if err != nil {
		return 0, fmt.Errorf("tdError: %w", err)
	}
	return target - current, nil
}

func (q *QLearner) target(t timestep.Transition) (float64, error) {
	if t.Done {
		return t.Reward, nil
	}

	maxVal, err := q.table.Max(t.NextState)
	if err != nil {
		return 0, err
	}
	return t.Reward + q.discount*maxVal, nil
}
