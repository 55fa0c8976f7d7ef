package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the episodes of an experiment. Averages are zero
// when no episodes have been run.
type Summary struct {
	Episodes     int     `json:"episodes"`
	AvgReturn    float64 `json:"avg_return"`
	AvgLength    float64 `json:"avg_length"`
	SuccessRate  float64 `json:"success_rate"`
	EpsilonFinal float64 `json:"epsilon_final"`
}

// NewSummary summarizes the index-aligned per-episode returns, lengths
// and successes of an experiment whose agent finished with exploration
// rate epsilon
func NewSummary(returns []float64, lengths, successes []int,
	epsilon float64) Summary {
	if len(returns) != len(lengths) || len(returns) != len(successes) {
		panic(fmt.Sprintf("newSummary: sequences have different lengths "+
			"%d, %d, %d", len(returns), len(lengths), len(successes)))
	}

	s := Summary{Episodes: len(returns), EpsilonFinal: epsilon}
	if s.Episodes == 0 {
		return s
	}

	s.AvgReturn = stat.Mean(returns, nil)
	s.AvgLength = stat.Mean(toFloat(lengths), nil)
	s.SuccessRate = floats.Sum(toFloat(successes)) / float64(s.Episodes)
	return s
}

// Map returns the summary keyed by the names of its fields
func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		"episodes":      float64(s.Episodes),
		"avg_return":    s.AvgReturn,
		"avg_length":    s.AvgLength,
		"success_rate":  s.SuccessRate,
		"epsilon_final": s.EpsilonFinal,
	}
}

func (s Summary) String() string {
	str := "Summary | Episodes: %d  |  Average Return: %.3f  |  " +
		"Average Length: %.2f  |  Success Rate: %.3f  |  Final Epsilon: %.3f"

	return fmt.Sprintf(str, s.Episodes, s.AvgReturn, s.AvgLength,
		s.SuccessRate, s.EpsilonFinal)
}

func toFloat(ints []int) []float64 {
	out := make([]float64, len(ints))
	for i, v := range ints {
		out[i] = float64(v)
	}
	return out
}
