package system

import (
	"testing"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/event"
)

func TestScriptedShieldNeverRollsShielded(t *testing.T) {
	r := newRig(t)
	tier := &defs.EnemyTier{ID: "test", Health: 1, EliteAffixes: []string{defs.AffixShielded}}

	for i := 0; i < 2000; i++ {
		if a, ok := r.wave.rollAffix(tier, true); ok {
			t.Fatalf("scripted shield rolled affix %q", a.ID)
		}
	}

	rolled := 0
	for i := 0; i < 2000; i++ {
		if _, ok := r.wave.rollAffix(tier, false); ok {
			rolled++
		}
	}
	if rolled == 0 {
		t.Error("expected some shielded rolls without a scripted shield")
	}
}

func TestSpawnWithScriptedShield(t *testing.T) {
	r := newRig(t)
	r.cfg.Waves = []defs.WaveConfig{{
		Duration: 1,
		Spawns:   []defs.SpawnEntry{{At: 0, Lane: 0, Tier: "grunt", Count: 300, Shield: 4}},
	}}
	r.wave.StartCountdown(0)
	r.wave.Update(10)

	for _, e := range r.state().Enemies {
		if e.HasAffix(defs.AffixShielded) {
			t.Fatalf("enemy %d has both a scripted shield and the shielded affix", e.ID)
		}
		if e.ShieldValue() != 4 {
			t.Errorf("expected scripted shield 4, got %d", e.ShieldValue())
		}
	}
}

func TestInnateShieldNeverRollsShielded(t *testing.T) {
	r := newRig(t)
	waves := make([]defs.WaveConfig, 10)
	for i := range waves {
		waves[i] = defs.WaveConfig{
			Duration: 1,
			Spawns:   []defs.SpawnEntry{{At: 0, Lane: 1, Tier: "shieldbearer", Count: 200}},
		}
	}
	r.cfg.Waves = waves
	r.wave.StartCountdown(9)
	r.wave.Update(10)

	elites := 0
	for _, e := range r.state().Enemies {
		if e.HasAffix(defs.AffixShielded) {
			t.Fatalf("enemy %d stacks the shielded affix on its own shield", e.ID)
		}
		if e.ShieldValue() != 6 {
			t.Errorf("expected the tier shield 6, got %d", e.ShieldValue())
		}
		if len(e.Affixes) > 0 {
			elites++
		}
	}
	if elites == 0 {
		t.Error("expected some elites at wave 10")
	}
}

func TestActiveBand(t *testing.T) {
	r := newRig(t)
	tests := []struct{ index, from int }{{0, 0}, {1, 0}, {2, 2}, {3, 2}, {4, 4}, {9, 4}}
	for _, tt := range tests {
		if got := r.wave.ActiveBand(tt.index).FromWave; got != tt.from {
			t.Errorf("wave %d: expected band from %d, got %d", tt.index, tt.from, got)
		}
	}
}

func TestSpawnOrderAndCadence(t *testing.T) {
	r := newRig(t)
	r.cfg.Waves = []defs.WaveConfig{{
		Duration: 10,
		Spawns: []defs.SpawnEntry{
			{At: 1, Lane: 0, Tier: "runner", Count: 2, Cadence: 1},
			{At: 2, Lane: 2, Tier: "brute", Count: 1},
		},
	}}
	r.wave.StartCountdown(0)
	if !r.state().Wave.InCountdown {
		t.Fatal("expected countdown")
	}
	r.wave.Update(5) // countdown over, nothing due yet
	if len(r.state().Enemies) != 0 {
		t.Fatalf("expected no spawns at t=0, got %d", len(r.state().Enemies))
	}
	r.wave.Update(1.5)
	if len(r.state().Enemies) != 1 {
		t.Fatalf("expected 1 spawn at t=1.5, got %d", len(r.state().Enemies))
	}
	r.wave.Update(0.5)
	enemies := r.state().Enemies
	if len(enemies) != 3 || enemies[1].TierID != "runner" || enemies[2].TierID != "brute" {
		t.Errorf("expected runner, runner, brute; got %d enemies", len(enemies))
	}
	if r.state().Wave.Spawned != 3 {
		t.Errorf("expected 3 spawned, got %d", r.state().Wave.Spawned)
	}
}

func TestBandScalesEnemies(t *testing.T) {
	r := newRig(t)
	r.state().Wave.Index = 2
	r.wave.current = defs.WaveConfig{}
	r.wave.spawn(scheduledSpawn{tier: "brute", lane: 1})
	e := r.state().Enemies[0]
	// brute 20 HP * 1.2.
	if e.MaxHealth != 24 {
		t.Errorf("expected 24 HP, got %d", e.MaxHealth)
	}
	if e.Word == "" {
		t.Error("expected a word")
	}
}

func TestWaveCompletesAndAdvances(t *testing.T) {
	r := newRig(t)
	r.cfg.Waves = []defs.WaveConfig{
		{Duration: 2, Spawns: []defs.SpawnEntry{{At: 0, Lane: 0, Tier: "grunt", Count: 2, Cadence: 0.5}}},
		{Duration: 2, Spawns: []defs.SpawnEntry{{At: 0, Lane: 0, Tier: "grunt", Count: 1}}},
	}
	r.wave.StartCountdown(0)
	r.wave.Update(5)
	r.wave.Update(1)
	for _, e := range r.world.AliveEnemies() {
		r.damage.ApplyDamage(e, 1000, Hit{Source: event.SourceTyping})
	}
	r.wave.Update(1.5)

	if r.state().Wave.Index != 1 || !r.state().Wave.InCountdown {
		t.Fatalf("expected wave 1 in countdown, got %+v", r.state().Wave)
	}
	var summary *event.WaveSummary
	for _, e := range r.events {
		if s, ok := e.Payload.(event.WaveSummary); ok {
			summary = &s
		}
	}
	if summary == nil {
		t.Fatal("expected a wave summary")
	}
	if summary.EnemiesDefeated+summary.Breaches != 2 {
		t.Errorf("expected 2 enemies accounted for, got %d+%d", summary.EnemiesDefeated, summary.Breaches)
	}
}

func TestLastWaveVictory(t *testing.T) {
	r := newRig(t)
	r.cfg.Waves = []defs.WaveConfig{{Duration: 1}}
	r.wave.StartCountdown(0)
	r.wave.Update(5)
	r.wave.Update(1)
	if r.state().Status != component.StatusVictory {
		t.Errorf("expected victory, got %s", r.state().Status)
	}
}

func TestLoopWaves(t *testing.T) {
	r := newRig(t)
	r.cfg.Features.LoopWaves = true
	r.cfg.Waves = []defs.WaveConfig{{Duration: 1}}
	r.wave.StartCountdown(0)
	r.wave.Update(5)
	r.wave.Update(1)
	if r.state().Status != component.StatusRunning || r.state().Wave.Index != 0 || r.state().Wave.Cycle != 1 {
		t.Errorf("expected wave 0 of cycle 1, got %+v status %s", r.state().Wave, r.state().Status)
	}
}

func TestPracticeWaves(t *testing.T) {
	r := newRig(t)
	r.state().Mode = defs.ModePractice
	if r.wave.TotalWaves() != 0 {
		t.Error("practice should be endless")
	}
	w := r.wave.WaveConfig(4)
	// threat 6: 3 + 4 + 3 = 10 grunts, plus the boss on every fifth wave.
	if got := w.EnemyCount(); got != 11 {
		t.Errorf("expected 11 enemies, got %d", got)
	}
}

func TestEvacuationLifecycle(t *testing.T) {
	r := newRig(t)
	r.cfg.Waves = []defs.WaveConfig{{
		Duration:    5,
		Evacuations: []defs.EvacuationEntry{{At: 0, Lane: 1, Duration: 3}},
	}}
	r.wave.StartCountdown(0)
	r.wave.Update(5)
	r.wave.Update(0.1)
	if len(r.state().Enemies) != 1 || !r.state().Enemies[0].Transport {
		t.Fatal("expected a transport")
	}
	transport := r.state().Enemies[0]

	res := r.typeWord(transport.Word)
	if !res.Rescued {
		t.Fatalf("expected a rescue, got %+v", res)
	}
	if r.state().Resources[defs.ResourceFood] != 15 || r.state().Resources.Gold() != 10 {
		t.Errorf("expected 15 food and 10 gold, got %v", r.state().Resources)
	}
	if n := r.count(event.EvacuationSucceeded); n != 1 {
		t.Errorf("expected 1 success, got %d", n)
	}
	if n := r.count(event.EnemyDefeated); n != 0 {
		t.Error("a rescue must not count as a kill")
	}
}

func TestEvacuationTimeout(t *testing.T) {
	r := newRig(t)
	r.cfg.Waves = []defs.WaveConfig{{
		Duration:    5,
		Evacuations: []defs.EvacuationEntry{{At: 0, Lane: 1, Duration: 3}},
	}}
	r.wave.StartCountdown(0)
	r.wave.Update(5)
	r.wave.Update(0.1)
	r.evac.Update(3)

	if r.state().Enemies[0].Status != component.EnemyEscaped {
		t.Error("expected the transport to leave")
	}
	if r.state().Castle.Health != 100 {
		t.Error("a failed evacuation must not damage the castle")
	}
	if n := r.count(event.EvacuationFailed); n != 1 {
		t.Errorf("expected 1 failure, got %d", n)
	}
}
