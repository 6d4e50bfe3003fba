package component

import "go-typing-defense/internal/defs"

// Resources tracks the amount held per resource name.
type Resources map[string]int

// Gold returns the gold amount.
func (r Resources) Gold() int {
	return r[defs.ResourceGold]
}

// CanAfford reports whether every component of the cost is covered.
func (r Resources) CanAfford(c defs.Cost) bool {
	for k, v := range c {
		if r[k] < v {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (r Resources) Clone() Resources {
	out := make(Resources, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
