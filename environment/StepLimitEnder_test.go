package environment

import (
	"testing"

	"github.com/samuelfneumann/treasurehunt/timestep"
)

func TestStepLimit(t *testing.T) {
	s := NewStepLimit(3)
	if s.Steps() != 3 {
		t.Fatalf("want limit 3, have %d", s.Steps())
	}

	tests := []struct {
		name        string
		step        timestep.TimeStep
		wantEnd     bool
		wantTimeout bool
	}{
		{"BeforeLimit", timestep.New(timestep.Mid, 0, 0, 2), false, false},
		{"AtLimit", timestep.New(timestep.Mid, 0, 0, 3), true, true},
		{"AlreadyEnded", timestep.New(timestep.Last, 0, 0, 3), false, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			step := test.step
			if end := s.End(&step); end != test.wantEnd {
				t.Errorf("want End %v, have %v", test.wantEnd, end)
			}
			if step.Timeout != test.wantTimeout {
				t.Errorf("want timeout %v, have %v", test.wantTimeout,
					step.Timeout)
			}
			if test.wantEnd && !step.Last() {
				t.Error("ended step is not the last step")
			}
		})
	}
}

func TestSpec(t *testing.T) {
	s := NewSpec(4, Action)
	for v, want := range map[int]bool{-1: false, 0: true, 3: true, 4: false} {
		if s.Contains(v) != want {
			t.Errorf("contains(%d): want %v", v, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("want panic for empty spec")
		}
	}()
	NewSpec(0, Observation)
}
