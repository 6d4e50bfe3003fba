package system

import (
	"sort"

	"go-typing-defense/internal/component"
	"go-typing-defense/pkg/utils"
)

// Point is an integer grid position.
type Point struct {
	X, Y int
}

// PointOf returns the grid position of an enemy.
func PointOf(e *component.Enemy) Point {
	x, y := e.GridPos()
	return Point{X: x, Y: y}
}

// Distance is the Manhattan distance between two grid points.
func (p Point) Distance(o Point) int {
	return utils.Manhattan(p.X, p.Y, o.X, o.Y)
}

// better reports whether a strictly beats b under the mode. Equal candidates
// never beat each other, so the first one encountered wins.
func better(mode component.TargetMode, a, b *component.Enemy, ia, ib int) bool {
	switch mode {
	case component.TargetStrongest:
		return a.Health > b.Health
	case component.TargetWeakest:
		return a.Health < b.Health
	case component.TargetFastest:
		return a.Speed > b.Speed
	case component.TargetFirst:
		return ia < ib
	case component.TargetLast:
		return ia > ib
	default:
		// nearest: дальше всех прошёл = ближе всех к замку (меньший X).
		ax, _ := a.GridPos()
		bx, _ := b.GridPos()
		return ax < bx
	}
}

// FindTarget selects one enemy from the candidates. Unknown modes behave like nearest.
func FindTarget(candidates []*component.Enemy, mode component.TargetMode) *component.Enemy {
	var best *component.Enemy
	bestIdx := -1
	for i, e := range candidates {
		if e == nil || !e.Alive() {
			continue
		}
		if best == nil || better(mode, e, best, i, bestIdx) {
			best, bestIdx = e, i
		}
	}
	return best
}

// FindMultiTargets returns up to n enemies ranked by the mode.
func FindMultiTargets(candidates []*component.Enemy, mode component.TargetMode, n int) []*component.Enemy {
	if n <= 0 {
		return nil
	}
	type ranked struct {
		e   *component.Enemy
		idx int
	}
	pool := make([]ranked, 0, len(candidates))
	for i, e := range candidates {
		if e != nil && e.Alive() {
			pool = append(pool, ranked{e, i})
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return better(mode, pool[i].e, pool[j].e, pool[i].idx, pool[j].idx)
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	out := make([]*component.Enemy, len(pool))
	for i, r := range pool {
		out[i] = r.e
	}
	return out
}

// FindAoeTargets returns every alive candidate within radius of center, in list order.
func FindAoeTargets(candidates []*component.Enemy, center Point, radius int) []*component.Enemy {
	var out []*component.Enemy
	for _, e := range candidates {
		if e == nil || !e.Alive() {
			continue
		}
		if PointOf(e).Distance(center) <= radius {
			out = append(out, e)
		}
	}
	return out
}

// FindInRange is FindAoeTargets for a tower's reach.
func FindInRange(candidates []*component.Enemy, from Point, reach int) []*component.Enemy {
	return FindAoeTargets(candidates, from, reach)
}

// FindChainTargets walks greedily from origin to the nearest unchained enemy
// within maxRange. The result starts with origin and holds at most maxHops enemies.
func FindChainTargets(candidates []*component.Enemy, origin *component.Enemy, maxRange, maxHops int) []*component.Enemy {
	if origin == nil || !origin.Alive() {
		return nil
	}
	if maxHops < 1 {
		maxHops = 1
	}
	chain := []*component.Enemy{origin}
	used := map[*component.Enemy]bool{origin: true}
	current := origin
	for len(chain) < maxHops {
		from := PointOf(current)
		var next *component.Enemy
		nextDist := 0
		for _, e := range candidates {
			if e == nil || !e.Alive() || used[e] {
				continue
			}
			d := PointOf(e).Distance(from)
			if d > maxRange {
				continue
			}
			if next == nil || d < nextDist {
				next, nextDist = e, d
			}
		}
		if next == nil {
			break
		}
		chain = append(chain, next)
		used[next] = true
		current = next
	}
	return chain
}
