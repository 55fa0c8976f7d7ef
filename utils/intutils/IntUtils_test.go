package intutils

import "testing"

func TestMinMaxAbs(t *testing.T) {
	if got := Min(3, -1, 2); got != -1 {
		t.Errorf("min: want -1, have %d", got)
	}
	if got := Max(3, -1, 7, 2); got != 7 {
		t.Errorf("max: want 7, have %d", got)
	}
	if got := Abs(-4); got != 4 {
		t.Errorf("abs: want 4, have %d", got)
	}
	if got := Abs(4); got != 4 {
		t.Errorf("abs: want 4, have %d", got)
	}
}
