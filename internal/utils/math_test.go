package utils

import "testing"

func TestLerpClamps(t *testing.T) {
	if got := Lerp(0, 10, 0.25); got != 2.5 {
		t.Errorf("expected 2.5, got %f", got)
	}
	if got := Lerp(0, 10, -1); got != 0 {
		t.Errorf("expected 0, got %f", got)
	}
	if got := Lerp(0, 10, 3); got != 10 {
		t.Errorf("expected 10, got %f", got)
	}
}

func TestApproach(t *testing.T) {
	cases := []struct {
		current, target, step, want float64
	}{
		{0, 100, 10, 10},
		{100, 0, 10, 90},
		{95, 100, 10, 100},
		{50, 50, 10, 50},
	}
	for _, c := range cases {
		if got := Approach(c.current, c.target, c.step); got != c.want {
			t.Errorf("Approach(%v, %v, %v): expected %v, got %v", c.current, c.target, c.step, c.want, got)
		}
	}
}
