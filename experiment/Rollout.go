package experiment

import (
	"fmt"

	"github.com/samuelfneumann/treasurehunt/agent"
	env "github.com/samuelfneumann/treasurehunt/environment"
)

// DefaultRolloutSteps is the default step cap of a rollout
const DefaultRolloutSteps = 100

// RolloutResult describes a single rollout of a policy
type RolloutResult struct {
	Steps   int
	Return  float64
	Success bool
}

func (r RolloutResult) String() string {
	return fmt.Sprintf("Rollout | Steps: %d  |  Return: %.2f  |  Success: %v",
		r.Steps, r.Return, r.Success)
}

// Rollout runs policy p for a single episode in e without learning. The
// rollout stops when the episode ends or after maxSteps steps, whichever
// comes first.
func Rollout(e env.Environment, p agent.Policy, maxSteps int) (RolloutResult,
	error) {
	var result RolloutResult

	step := e.Reset()
	for done := false; !done && result.Steps < maxSteps; {
		action, err := p.SelectAction(step.Observation)
		if err != nil {
			return result, fmt.Errorf("rollout: %w", err)
		}

		step, done, err = e.Step(action)
		if err != nil {
			return result, fmt.Errorf("rollout: %w", err)
		}

		result.Steps++
		result.Return += step.Reward
		result.Success = step.Success
	}
	return result, nil
}
