package environment

import "github.com/samuelfneumann/treasurehunt/timestep"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// Steps returns the step limit
func (s StepLimit) Steps() int {
	return s.episodeSteps
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode temrination. If the episode
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its Timeout signal is raised.
//
// Episodes that have already ended for another reason are left as they
// are and End returns false.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Last() {
		return false
	}
	if t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		t.Timeout = true
		return true
	}
	return false
}
