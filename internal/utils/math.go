// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию, t зажимается в [0, 1].
func Lerp(from, to, t float64) float64 {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return from + (to-from)*t
}

// Approach сдвигает current к target не больше чем на step.
func Approach(current, target, step float64) float64 {
	diff := target - current
	if math.Abs(diff) <= step {
		return target
	}
	if diff > 0 {
		return current + step
	}
	return current - step
}
