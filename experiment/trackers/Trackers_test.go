package trackers

import (
	"math"
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/treasurehunt/timestep"
)

// episode returns the timesteps of an episode which receives the given
// rewards after its first step
func episode(info ts.Info, rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		step := ts.New(stepType, r, i+1, i+1)
		if stepType == ts.Last {
			step.Info = info
		}
		steps = append(steps, step)
	}
	return steps
}

func trackAll(tr Tracker, episodes ...[]ts.TimeStep) {
	for _, ep := range episodes {
		for _, step := range ep {
			tr.Track(step)
		}
	}
}

func equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestTrackers(t *testing.T) {
	first := episode(ts.Info{Success: true}, -0.1, -0.1, 10)
	second := episode(ts.Info{Timeout: true}, -0.5, -0.1)

	tests := []struct {
		name    string
		tracker Tracker
		want    []float64
	}{
		{"Return", NewReturn(""), []float64{-0.1 + -0.1 + 10, -0.5 + -0.1}},
		{"EpisodeLength", NewEpisodeLength(""), []float64{3, 2}},
		{"Success", NewSuccess(""), []float64{1, 0}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			trackAll(test.tracker, first, second)
			if have := test.tracker.Data(); !equal(have, test.want) {
				t.Errorf("want %v, have %v", test.want, have)
			}
		})
	}
}

func TestReturnUnfinishedEpisode(t *testing.T) {
	r := NewReturn("")
	trackAll(r, episode(ts.Info{}, 1, 2)[:2])
	if len(r.Data()) != 0 {
		t.Errorf("unfinished episode recorded: %v", r.Data())
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("want panic on non-sequential timesteps")
		}
	}()
	r := NewReturn("")
	r.Track(ts.New(ts.First, 0, 0, 0))
	r.Track(ts.New(ts.Mid, 0, 0, 2))
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(filename)
	trackAll(r, episode(ts.Info{Success: true}, -0.1, 10))

	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := LoadData(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !equal(data, r.Data()) {
		t.Errorf("want %v, have %v", r.Data(), data)
	}

	if _, err := LoadData(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("want error loading missing file")
	}
}
