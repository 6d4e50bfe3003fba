package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255}, 0.5)
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("expected half brightness, got %v", got)
	}
}

func TestBlend(t *testing.T) {
	a := color.RGBA{0, 0, 0, 255}
	b := color.RGBA{200, 100, 40, 255}
	if got := Blend(a, b, 0); got != a {
		t.Errorf("expected a at 0, got %v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Errorf("expected b at 1, got %v", got)
	}
	if got := Blend(a, b, 0.5); got != (color.RGBA{100, 50, 20, 255}) {
		t.Errorf("expected the midpoint, got %v", got)
	}
}
