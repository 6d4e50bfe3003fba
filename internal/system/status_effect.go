// internal/system/status_effect.go
package system

import (
	"math"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// StatusEffectSystem управляет жизненным циклом эффектов: замедление и горение.
type StatusEffectSystem struct {
	world  *entity.World
	damage *DamageSystem
}

func NewStatusEffectSystem(world *entity.World, damage *DamageSystem) *StatusEffectSystem {
	return &StatusEffectSystem{world: world, damage: damage}
}

// Apply adds an on-hit effect. A second effect of the same kind refreshes the
// duration and keeps the stronger magnitude.
func (s *StatusEffectSystem) Apply(target *component.Enemy, def *defs.EffectDef, slotID int) {
	if def == nil || !target.Alive() || target.Transport {
		return
	}
	for i := range target.Effects {
		e := &target.Effects[i]
		if e.Kind != def.Kind {
			continue
		}
		e.Remaining = math.Max(e.Remaining, def.Duration)
		switch def.Kind {
		case defs.EffectSlow:
			e.Magnitude = math.Min(e.Magnitude, def.Magnitude)
		case defs.EffectBurn:
			e.Magnitude = math.Max(e.Magnitude, def.Magnitude)
		}
		e.SourceID = slotID
		s.refreshSpeed(target)
		return
	}
	target.Effects = append(target.Effects, component.StatusEffect{
		Kind:      def.Kind,
		Remaining: def.Duration,
		Magnitude: def.Magnitude,
		TickTimer: config.BurnTickSeconds,
		SourceID:  slotID,
	})
	s.refreshSpeed(target)
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, enemy := range s.world.AliveEnemies() {
		if len(enemy.Effects) == 0 {
			continue
		}
		kept := enemy.Effects[:0]
		for _, e := range enemy.Effects {
			if e.Kind == defs.EffectBurn && enemy.Alive() {
				e.TickTimer -= deltaTime
				if e.TickTimer <= 0 {
					e.TickTimer += config.BurnTickSeconds
					dmg := int(math.Floor(e.Magnitude * config.BurnTickSeconds))
					if dmg < 1 {
						dmg = 1
					}
					s.damage.ApplyDamage(enemy, dmg, Hit{Source: event.SourceTurret, SlotID: e.SourceID})
				}
			}
			e.Remaining -= deltaTime
			if e.Remaining > 0 {
				kept = append(kept, e)
			}
		}
		enemy.Effects = kept
		s.refreshSpeed(enemy)
	}
}

// refreshSpeed пересчитывает скорость: самое сильное замедление, не ниже минимума.
func (s *StatusEffectSystem) refreshSpeed(enemy *component.Enemy) {
	mult := 1.0
	for _, e := range enemy.Effects {
		if e.Kind == defs.EffectSlow && e.Magnitude < mult {
			mult = e.Magnitude
		}
	}
	if mult < config.MinSpeedMultiplier {
		mult = config.MinSpeedMultiplier
	}
	enemy.Speed = enemy.BaseSpeed * mult
}
