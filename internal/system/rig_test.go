package system

import (
	"testing"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/utils"
)

// rig wires every system over a fresh running match.
type rig struct {
	world     *entity.World
	bus       *event.Dispatcher
	cfg       *defs.GameConfig
	economy   *EconomySystem
	damage    *DamageSystem
	effects   *StatusEffectSystem
	evac      *EvacuationSystem
	boss      *BossSystem
	wave      *WaveSystem
	typing    *TypingSystem
	combat    *CombatSystem
	movement  *MovementSystem
	projs     *ProjectileSystem
	analytics *AnalyticsSystem
	events    []event.Event
}

func newRig(t *testing.T) *rig {
	t.Helper()
	cfg := defs.DefaultGameConfig()
	state := &component.GameState{
		MatchID:   "test-match",
		Status:    component.StatusRunning,
		Mode:      defs.ModeCampaign,
		Castle:    NewCastleState(cfg),
		Resources: component.Resources{},
		Slots:     NewSlots(cfg),
		Typing:    component.NewTypingState(),
	}
	r := &rig{world: entity.NewWorld(state), bus: event.NewDispatcher(), cfg: cfg}
	r.bus.SubscribeMany(event.ListenerFunc(func(e event.Event) { r.events = append(r.events, e) }), event.AllTypes()...)

	r.economy = NewEconomySystem(r.world, r.bus, cfg)
	r.damage = NewDamageSystem(r.world, r.bus, r.economy)
	r.effects = NewStatusEffectSystem(r.world, r.damage)
	r.evac = NewEvacuationSystem(r.world, r.bus, r.economy)
	r.boss = NewBossSystem(r.world, r.bus)
	r.wave = NewWaveSystem(r.world, r.bus, cfg, utils.NewPRNGService(1), r.economy, r.boss, r.evac)
	r.typing = NewTypingSystem(r.world, r.bus, r.damage, r.economy, r.evac, r.wave)
	r.combat = NewCombatSystem(r.world, r.bus, cfg)
	r.movement = NewMovementSystem(r.world, r.bus, r.economy)
	r.projs = NewProjectileSystem(r.world, r.damage, r.effects)
	r.analytics = NewAnalyticsSystem(r.world, r.bus)
	r.economy.RefreshSlotUnlocks()
	r.events = nil
	return r
}

func (r *rig) state() *component.GameState {
	return r.world.State
}

// addEnemy puts a plain enemy on the field.
func (r *rig) addEnemy(word string, hp int, lane int, distance float64) *component.Enemy {
	e := &component.Enemy{
		ID:        r.world.NewEntity(),
		TierID:    "grunt",
		Word:      word,
		MaxHealth: hp,
		Health:    hp,
		Speed:     0.05,
		BaseSpeed: 0.05,
		Lane:      lane,
		Distance:  distance,
		Damage:    8,
		Gold:      5,
		SpawnedAt: r.state().Time,
	}
	r.world.AddEnemy(e)
	return e
}

func (r *rig) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *rig) typeWord(word string) TypingResult {
	var res TypingResult
	for _, c := range word {
		res = r.typing.HandleChar(c)
		r.state().Time += 0.1
	}
	return res
}
