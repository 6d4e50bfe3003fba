package utils

import "testing"

func TestManhattan(t *testing.T) {
	cases := []struct {
		x1, y1, x2, y2 int
		want           int
	}{
		{0, 0, 0, 0, 0},
		{0, 0, 3, 4, 7},
		{5, 10, 1, 0, 14},
		{-2, -2, 2, 2, 8},
	}
	for _, c := range cases {
		if got := Manhattan(c.x1, c.y1, c.x2, c.y2); got != c.want {
			t.Errorf("Manhattan(%d,%d,%d,%d) = %d, want %d", c.x1, c.y1, c.x2, c.y2, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := ClampInt(12, 0, 10); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := ClampInt(-1, 0, 10); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := ClampFloat(0.7, -0.5, 0.5); got != 0.5 {
		t.Errorf("expected 0.5, got %v", got)
	}
}
