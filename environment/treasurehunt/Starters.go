package treasurehunt

import (
	"fmt"
)

// Starter implements a distribution of starting positions
type Starter interface {
	Start() Position
}

// SingleStart always starts episodes in the same position
type SingleStart struct {
	position Position
}

// NewSingleStart returns a Starter which starts episodes at position p in
// a grid of width w and height h
func NewSingleStart(p Position, w, h int) (Starter, error) {
	if p.X < 0 || p.X >= w {
		return &SingleStart{}, fmt.Errorf("x = %d outside [0, %d)", p.X, w)
	} else if p.Y < 0 || p.Y >= h {
		return &SingleStart{}, fmt.Errorf("y = %d outside [0, %d)", p.Y, h)
	}
	return &SingleStart{p}, nil
}

// Start returns the starting position
func (s *SingleStart) Start() Position {
	return s.position
}
