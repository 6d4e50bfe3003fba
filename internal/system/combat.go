package system

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/types"
)

// CombatSystem управляет атакой турелей.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	cfg             *defs.GameConfig
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, cfg *defs.GameConfig) *CombatSystem {
	return &CombatSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// SlotPosition is a slot's place on the normalized path.
func SlotPosition(slot *component.TurretSlot) float64 {
	return 1 - float64(slot.X)/config.PathUnits
}

// LaneFireRateMult combines shockwave debuffs and jammer affixes on a lane.
func (s *CombatSystem) LaneFireRateMult(lane int) float64 {
	mult := 1.0
	for _, le := range s.world.State.LaneEffects {
		if le.Lane == lane {
			mult *= le.FireRateMult
		}
	}
	for _, e := range s.world.State.Enemies {
		if e.Alive() && e.Lane == lane {
			mult *= e.LaneFireRateMult()
		}
	}
	return mult
}

// targetable returns the alive enemies turrets may shoot at.
func (s *CombatSystem) targetable() []*component.Enemy {
	var out []*component.Enemy
	for _, e := range s.world.State.Enemies {
		if e.Alive() && !e.Transport {
			out = append(out, e)
		}
	}
	return out
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.tickLaneEffects(deltaTime)

	var candidates []*component.Enemy
	for _, slot := range s.world.State.Slots {
		t := slot.Turret
		if t == nil {
			continue
		}
		if t.Cooldown > 0 {
			t.Cooldown -= deltaTime
			if t.Cooldown > 0 {
				continue
			}
		}

		arch, ok := s.cfg.Turret(t.TypeID)
		if !ok {
			logUnknown("turret", t.TypeID)
			continue
		}
		if candidates == nil {
			candidates = s.targetable()
		}
		stats := StatsFor(arch, t.Level)
		inRange := FindInRange(candidates, Point{X: slot.X, Y: slot.Y}, stats.Range)
		if len(inRange) == 0 {
			t.Cooldown = 0
			continue
		}

		var targets []*component.Enemy
		if arch.Attack == defs.AttackMulti {
			n := arch.Targets
			if n < 1 {
				n = 1
			}
			targets = FindMultiTargets(inRange, slot.Mode, n)
		} else if target := FindTarget(inRange, slot.Mode); target != nil {
			targets = []*component.Enemy{target}
		}
		if len(targets) == 0 {
			continue
		}

		s.fire(slot, arch, stats, targets)

		rate := stats.FireRate * s.LaneFireRateMult(slot.Lane)
		if rate > 0 {
			t.Cooldown += 1 / rate
		}
	}
}

func (s *CombatSystem) fire(slot *component.TurretSlot, arch *defs.TurretArchetype, stats TurretStats, targets []*component.Enemy) {
	ids := make([]types.EntityID, 0, len(targets))
	for _, target := range targets {
		s.world.AddProjectile(&component.Projectile{
			ID:          s.world.NewEntity(),
			Kind:        arch.Kind,
			Attack:      arch.Attack,
			Lane:        target.Lane,
			Position:    SlotPosition(slot),
			Speed:       arch.ProjectileSpeed,
			Damage:      stats.Damage,
			TargetID:    target.ID,
			SourceSlot:  slot.ID,
			Effect:      arch.Effect,
			ShieldBonus: arch.ShieldBonus,
			Radius:      arch.Radius,
			ChainHops:   arch.ChainHops,
			ChainRange:  arch.ChainRange,
		})
		ids = append(ids, target.ID)
	}
	s.eventDispatcher.Publish(s.world.State.Time, event.TurretFiredPayload{
		SlotID:  slot.ID,
		TypeID:  arch.ID,
		Kind:    arch.Kind,
		Targets: ids,
	})
}

func (s *CombatSystem) tickLaneEffects(deltaTime float64) {
	st := s.world.State
	kept := st.LaneEffects[:0]
	for _, le := range st.LaneEffects {
		le.Remaining -= deltaTime
		if le.Remaining > 0 {
			kept = append(kept, le)
		}
	}
	st.LaneEffects = kept
}
