package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		window int
		want   []float64
	}{
		{"Empty", nil, 3, []float64{}},
		{"Window1", []float64{1, 2, 3}, 1, []float64{1, 2, 3}},
		{"Window2", []float64{1, 3, 5, 7}, 2, []float64{1, 2, 4, 6}},
		{"WideWindow", []float64{2, 4, 6}, 10, []float64{2, 3, 4}},
		{"NonPositiveWindow", []float64{2, 4}, 0, []float64{2, 4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			have := MovingAverage(test.values, test.window)
			if len(have) != len(test.want) {
				t.Fatalf("want %v, have %v", test.want, have)
			}
			for i := range have {
				if math.Abs(have[i]-test.want[i]) > 1e-9 {
					t.Fatalf("want %v, have %v", test.want, have)
				}
			}
		})
	}
}

func TestLearningCurve(t *testing.T) {
	var buf bytes.Buffer
	returns := []float64{-20, -10, 5, 18, 25}
	successes := []int{0, 0, 1, 1, 1}

	if err := LearningCurve(&buf, returns, successes, 2); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<html", "Episodic Return", "Success Rate"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("chart does not contain %q", want)
		}
	}

	if err := LearningCurve(&buf, returns, successes[:2], 2); err == nil {
		t.Error("want error for misaligned sequences")
	}
}

func TestLearningCurvePNG(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "curve.png")
	returns := []float64{-20, -10, 5, 18, 25, 27}

	if err := LearningCurvePNG(filename, returns, 3); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
		t.Errorf("plot not written: %v", err)
	}
}
