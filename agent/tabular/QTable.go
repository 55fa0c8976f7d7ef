// Package tabular implements action-value tables for agents acting in
// environments with discrete states and actions
package tabular

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/treasurehunt/utils/matutils"
)

// ErrOutOfRange is returned when a QTable is accessed with a state or
// action it does not hold
var ErrOutOfRange = errors.New("out of range")

// QTable stores one action value per (state, action) pair in a single
// contiguous matrix with one row per state and one column per action.
// A QTable never changes size and all values start at zero.
type QTable struct {
	values *mat.Dense
}

// NewQTable returns a new zero-valued QTable
func NewQTable(states, actions int) (*QTable, error) {
	if states < 1 {
		return nil, fmt.Errorf("newQTable: states must be positive, have %d",
			states)
	}
	if actions < 1 {
		return nil, fmt.Errorf("newQTable: actions must be positive, "+
			"have %d", actions)
	}
	return &QTable{mat.NewDense(states, actions, nil)}, nil
}

// Dims returns the number of states and actions of the table
func (q *QTable) Dims() (states, actions int) {
	return q.values.Dims()
}

// At returns the value of taking action in state
func (q *QTable) At(state, action int) (float64, error) {
	if err := q.check(state, action); err != nil {
		return 0, err
	}
	return q.values.At(state, action), nil
}

// Set sets the value of taking action in state
func (q *QTable) Set(state, action int, value float64) error {
	if err := q.check(state, action); err != nil {
		return err
	}
	q.values.Set(state, action, value)
	return nil
}

// Row returns the values of all actions in state. The returned slice
// is a view into the table and must not be modified.
func (q *QTable) Row(state int) ([]float64, error) {
	if err := q.check(state, 0); err != nil {
		return nil, err
	}
	return q.values.RawRowView(state), nil
}

// Max returns the largest action value in state
func (q *QTable) Max(state int) (float64, error) {
	if err := q.check(state, 0); err != nil {
		return 0, err
	}
	return mat.Max(q.values.RowView(state)), nil
}

// Values returns a copy of the table
func (q *QTable) Values() *mat.Dense {
	return mat.DenseCopyOf(q.values)
}

// StateValues returns the largest action value of each state
func (q *QTable) StateValues() []float64 {
	states, _ := q.values.Dims()
	values := make([]float64, states)
	for s := range values {
		values[s] = mat.Max(q.values.RowView(s))
	}
	return values
}

func (q *QTable) String() string {
	return matutils.Format(q.values)
}

func (q *QTable) check(state, action int) error {
	states, actions := q.values.Dims()
	if state < 0 || state >= states {
		return fmt.Errorf("state %d %w [0, %d)", state, ErrOutOfRange,
			states)
	}
	if action < 0 || action >= actions {
		return fmt.Errorf("action %d %w [0, %d)", action, ErrOutOfRange,
			actions)
	}
	return nil
}
