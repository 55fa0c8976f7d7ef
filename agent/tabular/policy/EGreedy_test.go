package policy

import (
	"errors"
	"testing"

	"github.com/samuelfneumann/treasurehunt/agent/tabular"
)

func newTable(t *testing.T) *tabular.QTable {
	t.Helper()
	q, err := tabular.NewQTable(4, 5)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestGreedyBreaksTiesRandomly(t *testing.T) {
	p := NewGreedy(newTable(t), 7)

	counts := make([]int, 5)
	for i := 0; i < 1000; i++ {
		a, err := p.SelectAction(0)
		if err != nil {
			t.Fatal(err)
		}
		counts[a]++
	}

	for a, c := range counts {
		if c == 0 {
			t.Errorf("tied action %d never selected: %v", a, counts)
		}
	}
}

func TestGreedySelectsUniqueMax(t *testing.T) {
	q := newTable(t)
	q.Set(2, 3, 1.0)
	q.Set(2, 1, 0.5)
	p := NewGreedy(q, 7)

	for i := 0; i < 100; i++ {
		if a, _ := p.SelectAction(2); a != 3 {
			t.Fatalf("want action 3, have %d", a)
		}
	}
}

func TestGreedyTiesOnlyAmongMaxima(t *testing.T) {
	q := newTable(t)
	q.Set(1, 0, 2.0)
	q.Set(1, 4, 2.0)
	p := NewGreedy(q, 11)

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		a, _ := p.SelectAction(1)
		if a != 0 && a != 4 {
			t.Fatalf("selected non-maximal action %d", a)
		}
		seen[a] = true
	}
	if !seen[0] || !seen[4] {
		t.Errorf("want both maximal actions selected, have %v", seen)
	}
}

func TestEGreedyExplores(t *testing.T) {
	q := newTable(t)
	q.Set(0, 0, 10.0)
	p, err := NewEGreedy(1.0, q, 3)
	if err != nil {
		t.Fatal(err)
	}

	counts := make([]int, 5)
	for i := 0; i < 1000; i++ {
		a, _ := p.SelectAction(0)
		counts[a]++
	}
	for a, c := range counts {
		if c == 0 {
			t.Errorf("action %d never explored: %v", a, counts)
		}
	}

	p.SetEpsilon(0.0)
	if p.Epsilon() != 0.0 {
		t.Errorf("want epsilon 0, have %v", p.Epsilon())
	}
	for i := 0; i < 100; i++ {
		if a, _ := p.SelectAction(0); a != 0 {
			t.Fatalf("want greedy action 0, have %d", a)
		}
	}
}

func TestEGreedyReproducible(t *testing.T) {
	q := newTable(t)
	p1, _ := NewEGreedy(0.5, q, 42)
	p2, _ := NewEGreedy(0.5, q, 42)

	for i := 0; i < 500; i++ {
		a1, _ := p1.SelectAction(i % 4)
		a2, _ := p2.SelectAction(i % 4)
		if a1 != a2 {
			t.Fatalf("step %d: same seed selected %d and %d", i, a1, a2)
		}
	}
}

func TestEGreedyErrors(t *testing.T) {
	q := newTable(t)
	if _, err := NewEGreedy(1.5, q, 0); err == nil {
		t.Error("want error for epsilon > 1")
	}

	p := NewGreedy(q, 0)
	if _, err := p.SelectAction(4); !errors.Is(err, tabular.ErrOutOfRange) {
		t.Errorf("want ErrOutOfRange, have %v", err)
	}
}
