package policy

import (
	"fmt"

	"github.com/samuelfneumann/treasurehunt/agent/tabular"
)

// NewGreedy creates a new greedy policy, which breaks ties between
// greedy actions uniformly at random
func NewGreedy(table *tabular.QTable, seed uint64) *EGreedy {
	p, err := NewEGreedy(0.0, table, seed)
	if err != nil {
		panic(fmt.Sprintf("newGreedy: %v", err))
	}
	return p
}
