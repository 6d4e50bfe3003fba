package balance

import (
	"math"
	"reflect"
	"testing"

	"go-typing-defense/internal/defs"
)

func TestEnemyHP(t *testing.T) {
	cases := []struct{ day, threat, want int }{
		{0, 0, 2},
		{6, 8, 6},
		{5, 3, 3},
		{9, 15, 8},
		{-3, -1, 2},
	}
	for _, c := range cases {
		if got := EnemyHP(c.day, c.threat); got != c.want {
			t.Errorf("EnemyHP(%d,%d) = %d, want %d", c.day, c.threat, got, c.want)
		}
	}
}

func TestEnemyHPMatchesClosedForm(t *testing.T) {
	for day := 0; day < 30; day++ {
		for threat := 0; threat < 30; threat++ {
			want := 2 + day/3 + threat/4
			if got := EnemyHP(day, threat); got != want {
				t.Fatalf("EnemyHP(%d,%d) = %d, want %d", day, threat, got, want)
			}
		}
	}
}

func TestBossHP(t *testing.T) {
	if got := BossHP(4, 9, 5); got != 22 {
		t.Errorf("expected 22, got %d", got)
	}
	if got := BossHP(0, 0, 0); got != 12 {
		t.Errorf("expected 12, got %d", got)
	}
}

func TestWaveSize(t *testing.T) {
	cases := []struct{ day, threat, want int }{
		{0, 0, 3},
		{2, 3, 6},
		{1, 1, 4},
	}
	for _, c := range cases {
		if got := WaveSize(c.day, c.threat); got != c.want {
			t.Errorf("WaveSize(%d,%d) = %d, want %d", c.day, c.threat, got, c.want)
		}
	}
}

func TestTypingDamage(t *testing.T) {
	cases := []struct {
		name     string
		base     int
		wpm      float64
		accuracy float64
		combo    int
		want     int
	}{
		{"all bonuses combo 23", 1, 65, 0.96, 23, 3},
		{"twenty hp word", 20, 0, 1.0, 0, 21},
		{"clamped to one", 0, 0, 0.5, 0, 1},
		{"combo 10 step", 10, 70, 0.99, 10, 13},
		{"combo 25 no bonus", 5, 0, 0.9, 25, 6},
		{"wpm threshold inclusive", 1, 60, 0, 0, 2},
	}
	for _, c := range cases {
		if got := TypingDamage(c.base, c.wpm, c.accuracy, c.combo); got != c.want {
			t.Errorf("%s: TypingDamage = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestUpgradeCost(t *testing.T) {
	if got := UpgradeCostValue(100, 1); got != 150 {
		t.Errorf("expected 150, got %d", got)
	}
	if got := UpgradeCostValue(100, 2); got != 225 {
		t.Errorf("expected 225, got %d", got)
	}
	got := UpgradeCost(defs.Cost{defs.ResourceGold: 120, defs.ResourceStone: 10}, 3)
	want := defs.Cost{defs.ResourceGold: 405, defs.ResourceStone: 33}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTowerDamage(t *testing.T) {
	cases := []struct{ base, level, want int }{
		{4, 1, 4},
		{4, 2, 5},
		{4, 3, 6},
		{10, 0, 10},
	}
	for _, c := range cases {
		if got := TowerDamage(c.base, c.level); got != c.want {
			t.Errorf("TowerDamage(%d,%d) = %d, want %d", c.base, c.level, got, c.want)
		}
	}
}

func TestGoldReward(t *testing.T) {
	if got := GoldReward(20, 10); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if got := GoldReward(7, 2); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := GoldReward(6, 0); got != 6 {
		t.Errorf("expected 6, got %d", got)
	}
}

func TestCapResources(t *testing.T) {
	values := map[string]int{defs.ResourceGold: 600, defs.ResourceWood: 100, defs.ResourceStone: 260}
	capped, trimmed := CapResources(values, 0)
	if capped[defs.ResourceGold] != 500 || trimmed[defs.ResourceGold] != 100 {
		t.Errorf("gold: expected 500/100, got %d/%d", capped[defs.ResourceGold], trimmed[defs.ResourceGold])
	}
	if capped[defs.ResourceWood] != 100 {
		t.Errorf("wood should be untouched, got %d", capped[defs.ResourceWood])
	}
	if _, ok := trimmed[defs.ResourceWood]; ok {
		t.Errorf("wood should not be reported as trimmed")
	}
	if trimmed[defs.ResourceStone] != 60 {
		t.Errorf("stone: expected trimmed 60, got %d", trimmed[defs.ResourceStone])
	}
	if values[defs.ResourceGold] != 600 {
		t.Errorf("input map must not be modified")
	}

	_, trimmed = CapResources(map[string]int{defs.ResourceGold: 600}, 2)
	if len(trimmed) != 0 {
		t.Errorf("day 2 gold cap is 600, expected nothing trimmed, got %v", trimmed)
	}
}

func TestTypingHelpers(t *testing.T) {
	if got := WPM(50, 60); got != 10 {
		t.Errorf("expected 10 wpm, got %v", got)
	}
	if got := WPM(10, 1); got != 0 {
		t.Errorf("expected 0 wpm below sample time, got %v", got)
	}
	if got := RollingAccuracy(nil); got != 1 {
		t.Errorf("empty window should be 1, got %v", got)
	}
	if got := RollingAccuracy([]bool{true, false, true, true}); got != 0.75 {
		t.Errorf("expected 0.75, got %v", got)
	}
	if got := DifficultyBias(1.0); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("expected bias 0.25, got %v", got)
	}
	if got := DifficultyBias(0); got != -0.5 {
		t.Errorf("expected bias clamped to -0.5, got %v", got)
	}
	if got := EliteChance(0); got != 0.02 {
		t.Errorf("expected 0.02, got %v", got)
	}
	if got := EliteChance(50); got != 0.35 {
		t.Errorf("expected cap 0.35, got %v", got)
	}
}

func TestCheckMilestonesIsIdempotent(t *testing.T) {
	p := ProgressSnapshot{Kills: 1}
	recorded, added := CheckMilestones(p, nil)
	if !reflect.DeepEqual(added, []string{MilestoneFirstBlood}) {
		t.Fatalf("expected first_blood to be added, got %v", added)
	}
	again, added := CheckMilestones(p, recorded)
	if len(added) != 0 {
		t.Errorf("second call must not add anything, got %v", added)
	}
	if !reflect.DeepEqual(again, recorded) {
		t.Errorf("recorded list changed: %v -> %v", recorded, again)
	}

	p.MaxCombo = 12
	p.CastleLevel = 3
	again, added = CheckMilestones(p, again)
	if !reflect.DeepEqual(added, []string{MilestoneCombo10, MilestoneCastle3}) {
		t.Errorf("expected combo_10 and castle_3, got %v", added)
	}
	count := 0
	for _, id := range again {
		if id == MilestoneFirstBlood {
			count++
		}
	}
	if count != 1 {
		t.Errorf("first_blood recorded %d times", count)
	}
}
