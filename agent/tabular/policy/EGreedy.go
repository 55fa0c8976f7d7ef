// Package policy implements policies acting on tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/treasurehunt/agent/tabular"
	"github.com/samuelfneumann/treasurehunt/utils/floatutils"
)

// EGreedy implements an ε-greedy policy over a QTable. Greedy actions
// are chosen uniformly at random among all actions sharing the largest
// value, so that no action is favoured when values are tied.
type EGreedy struct {
	table   *tabular.QTable
	epsilon float64
	rng     *rand.Rand
	explore distuv.Bernoulli
}

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected. All random
// numbers are drawn from a single source seeded with seed.
func NewEGreedy(e float64, table *tabular.QTable, seed uint64) (*EGreedy,
	error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon must be in [0, 1], "+
			"have %v", e)
	}

	source := rand.NewSource(seed)
	explore := distuv.Bernoulli{P: e, Src: source}

	return &EGreedy{
		table:   table,
		epsilon: e,
		rng:     rand.New(source),
		explore: explore,
	}, nil
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(state int) (int, error) {
	values, err := p.table.Row(state)
	if err != nil {
		return -1, fmt.Errorf("selectAction: %w", err)
	}

	if p.explore.Rand() == 1.0 {
		return p.rng.Intn(len(values)), nil
	}

	_, greedy := floatutils.MaxSlice(values)
	if len(greedy) == 1 {
		return greedy[0], nil
	}
	return greedy[p.rng.Intn(len(greedy))], nil
}

// Epsilon returns the probability of selecting a random action
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the probability of selecting a random action
func (p *EGreedy) SetEpsilon(e float64) {
	p.epsilon = e
	p.explore.P = e
}
