package environment

import (
	"fmt"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an acion or an observation
type SpecType int

const (
	Action SpecType = iota
	Observation
)

func (s SpecType) String() string {
	if s == Action {
		return "Action"
	}
	return "Observation"
}

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Discrete Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type,
// number of values, and cardinality of the actions or observations in
// an environment. Values described by a discrete Spec lie in
// [0, Size).
type Spec struct {
	Type SpecType
	Size int
	Cardinality
}

// NewSpec constructs a new discrete environment specification. The size
// argument is the number of distinct values the specification
// describes. The argument t outlines what the specification is
// describing (e.g. actions, observations).
func NewSpec(size int, t SpecType) Spec {
	if size < 1 {
		panic(fmt.Sprintf("newSpec: %v size must be positive, have %d",
			t, size))
	}
	return Spec{Type: t, Size: size, Cardinality: Discrete}
}

// Contains returns whether v is a valid value under the Spec
func (s Spec) Contains(v int) bool {
	return v >= 0 && v < s.Size
}

func (s Spec) String() string {
	return fmt.Sprintf("Spec | Type: %v  |  Size: %d  |  %v", s.Type, s.Size,
		s.Cardinality)
}
