package trackers

import (
	"github.com/samuelfneumann/treasurehunt/timestep"
)

// Success tracks whether each episode ended by delivering the treasure.
// A successful episode is recorded as 1 and any other finished episode,
// including one cut off by the step limit, as 0.
type Success struct {
	successes []float64
	filename  string
}

// NewSuccess returns a new Success tracker which will save its data at
// filename
func NewSuccess(filename string) *Success {
	return &Success{filename: filename}
}

// Track records the outcome of an episode when t is its last timestep
func (s *Success) Track(t timestep.TimeStep) {
	if !t.Last() {
		return
	}
	if t.Success {
		s.successes = append(s.successes, 1)
	} else {
		s.successes = append(s.successes, 0)
	}
}

// Data returns the outcome of each finished episode
func (s *Success) Data() []float64 {
	return clone(s.successes)
}

// Save saves the data tracked by the Success Tracker to disk.
func (s *Success) Save() error {
	return save(s.filename, s.successes)
}
