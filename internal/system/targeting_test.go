package system

import (
	"testing"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/types"
)

func enemyAt(id int, lane int, distance float64, hp int, speed float64) *component.Enemy {
	return &component.Enemy{ID: types.EntityID(id), Lane: lane, Distance: distance, Health: hp, MaxHealth: hp, Speed: speed}
}

func TestNearestPrefersClosestToCastle(t *testing.T) {
	far := enemyAt(1, 0, 0.95, 5, 0.1)  // 5 units from the castle
	near := enemyAt(2, 0, 0.99, 5, 0.1) // 1 unit from the castle

	orders := [][]*component.Enemy{{far, near}, {near, far}}
	for _, list := range orders {
		if got := FindTarget(list, component.TargetNearest); got != near {
			t.Errorf("expected enemy %d, got %v", near.ID, got)
		}
		if got := FindTarget(list, component.TargetMode("sideways")); got != near {
			t.Errorf("unknown mode: expected enemy %d, got %v", near.ID, got)
		}
	}
}

func TestFindTargetModes(t *testing.T) {
	a := enemyAt(1, 0, 0.2, 10, 0.05)
	b := enemyAt(2, 1, 0.5, 3, 0.2)
	c := enemyAt(3, 2, 0.5, 10, 0.05)
	list := []*component.Enemy{a, b, c}

	tests := []struct {
		mode component.TargetMode
		want *component.Enemy
	}{
		{component.TargetStrongest, a}, // tie with c, first wins
		{component.TargetWeakest, b},
		{component.TargetFastest, b},
		{component.TargetFirst, a},
		{component.TargetLast, c},
		{component.TargetNearest, b}, // tie with c, first wins
	}
	for _, tt := range tests {
		if got := FindTarget(list, tt.mode); got != tt.want {
			t.Errorf("%s: expected enemy %d, got %d", tt.mode, tt.want.ID, got.ID)
		}
	}
}

func TestFindTargetSkipsDead(t *testing.T) {
	dead := enemyAt(1, 0, 0.9, 5, 0.1)
	dead.Status = component.EnemyDefeated
	alive := enemyAt(2, 0, 0.1, 5, 0.1)
	if got := FindTarget([]*component.Enemy{dead, alive}, component.TargetNearest); got != alive {
		t.Errorf("expected the alive enemy, got %v", got)
	}
	if got := FindTarget(nil, component.TargetNearest); got != nil {
		t.Errorf("expected nil for no candidates, got %v", got)
	}
}

func TestFindMultiTargets(t *testing.T) {
	list := []*component.Enemy{
		enemyAt(1, 0, 0.1, 1, 0),
		enemyAt(2, 0, 0.6, 1, 0),
		enemyAt(3, 0, 0.3, 1, 0),
	}
	got := FindMultiTargets(list, component.TargetNearest, 2)
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("expected [2 3], got %v", ids(got))
	}
	if got := FindMultiTargets(list, component.TargetLast, 5); len(got) != 3 || got[0].ID != 3 {
		t.Errorf("expected all three starting with 3, got %v", ids(got))
	}
	if got := FindMultiTargets(list, component.TargetNearest, 0); len(got) != 0 {
		t.Errorf("expected no targets for n=0, got %v", ids(got))
	}
}

func TestFindAoeTargetsUsesManhattan(t *testing.T) {
	// Lane 0 at X=50 and lane 1 at X=50: distance 10 between them.
	a := enemyAt(1, 0, 0.5, 1, 0)
	b := enemyAt(2, 1, 0.5, 1, 0)
	c := enemyAt(3, 0, 0.3, 1, 0) // X=70
	list := []*component.Enemy{a, b, c}

	got := FindAoeTargets(list, PointOf(a), 10)
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("expected [1 2], got %v", ids(got))
	}
	got = FindAoeTargets(list, PointOf(a), 9)
	if len(got) != 1 || got[0] != a {
		t.Errorf("expected [1], got %v", ids(got))
	}
}

func TestFindChainTargets(t *testing.T) {
	origin := enemyAt(1, 0, 0.5, 1, 0)  // X=50
	hop1 := enemyAt(2, 0, 0.42, 1, 0)   // X=58, 8 away
	hop2 := enemyAt(3, 0, 0.30, 1, 0)   // X=70, 12 from hop1
	farAway := enemyAt(4, 2, 0.9, 1, 0) // X=10, Y=20
	list := []*component.Enemy{farAway, hop2, hop1, origin}

	got := FindChainTargets(list, origin, 15, 3)
	if len(got) != 3 || got[0] != origin || got[1] != hop1 || got[2] != hop2 {
		t.Errorf("expected [1 2 3], got %v", ids(got))
	}
	got = FindChainTargets(list, origin, 10, 3)
	if len(got) != 2 {
		t.Errorf("expected the chain to stop after one hop, got %v", ids(got))
	}
	got = FindChainTargets(list, origin, 100, 2)
	if len(got) != 2 {
		t.Errorf("expected at most 2 targets, got %v", ids(got))
	}
}

func ids(list []*component.Enemy) []int {
	out := make([]int, len(list))
	for i, e := range list {
		out[i] = int(e.ID)
	}
	return out
}
