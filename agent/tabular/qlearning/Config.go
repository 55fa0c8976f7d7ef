package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/treasurehunt/agent"
	"github.com/samuelfneumann/treasurehunt/environment"
)

// Default hyperparameters
const (
	DefaultNumActions   = 5
	DefaultLearningRate = 0.2
	DefaultDiscount     = 0.99
	DefaultEpsilonStart = 1.0
	DefaultEpsilonEnd   = 0.05
	DefaultEpsilonDecay = 0.995
)

// Config represents a configuration for the QLearning agent
type Config struct {
	NumStates    int     `json:"n_states"`
	NumActions   int     `json:"n_actions"`
	LearningRate float64 `json:"alpha"`
	Discount     float64 `json:"gamma"`
	EpsilonStart float64 `json:"eps_start"` // epislon for behaviour policy
	EpsilonEnd   float64 `json:"eps_end"`
	EpsilonDecay float64 `json:"eps_decay"`
}

// DefaultConfig returns the default Config for an environment with
// states states
func DefaultConfig(states int) Config {
	return Config{
		NumStates:    states,
		NumActions:   DefaultNumActions,
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
		EpsilonStart: DefaultEpsilonStart,
		EpsilonEnd:   DefaultEpsilonEnd,
		EpsilonDecay: DefaultEpsilonDecay,
	}
}

// CreateAgent creates the agent from the Config. If the number of
// states or actions is zero, it is taken from the environment's
// specifications. Agent values are always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	if c.NumStates == 0 {
		c.NumStates = env.ObservationSpec().Size
	}
	if c.NumActions == 0 {
		c.NumActions = env.ActionSpec().Size
	}

	return New(c, seed)
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.NumStates < 1 {
		return fmt.Errorf("number of states must be positive, have %d",
			c.NumStates)
	}
	if c.NumActions < 1 {
		return fmt.Errorf("number of actions must be positive, have %d",
			c.NumActions)
	}
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate must be in (0, 1], have %v",
			c.LearningRate)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return fmt.Errorf("discount must be in [0, 1], have %v", c.Discount)
	}
	if c.EpsilonStart < 0 || c.EpsilonStart > 1 {
		return fmt.Errorf("epsilon must be in [0, 1], have %v",
			c.EpsilonStart)
	}
	if c.EpsilonEnd < 0 || c.EpsilonEnd > c.EpsilonStart {
		return fmt.Errorf("epsilon floor must be in [0, %v], have %v",
			c.EpsilonStart, c.EpsilonEnd)
	}
	if c.EpsilonDecay <= 0 || c.EpsilonDecay > 1 {
		return fmt.Errorf("epsilon decay must be in (0, 1], have %v",
			c.EpsilonDecay)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyQLearningTabular
}
