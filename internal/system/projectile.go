// internal/system/projectile.go
package system

import (
	"math"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
type ProjectileSystem struct {
	world   *entity.World
	damage  *DamageSystem
	effects *StatusEffectSystem
}

func NewProjectileSystem(world *entity.World, damage *DamageSystem, effects *StatusEffectSystem) *ProjectileSystem {
	return &ProjectileSystem{
		world:   world,
		damage:  damage,
		effects: effects,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	st := s.world.State
	kept := st.Projectiles[:0]
	for _, proj := range st.Projectiles {
		target, ok := s.world.Enemy(proj.TargetID)
		if !ok || !target.Alive() {
			// Цель пропала, сразу удаляем снаряд
			continue
		}

		gap := target.Distance - proj.Position
		step := proj.Speed * deltaTime
		if math.Abs(gap) <= step || proj.Speed <= 0 {
			s.hitTarget(proj, target)
			continue
		}
		if gap < 0 {
			step = -step
		}
		proj.Position += step
		kept = append(kept, proj)
	}
	for i := len(kept); i < len(st.Projectiles); i++ {
		st.Projectiles[i] = nil
	}
	st.Projectiles = kept
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) {
	hit := Hit{Source: event.SourceTurret, SlotID: proj.SourceSlot, ShieldBonus: proj.ShieldBonus}

	switch proj.Attack {
	case defs.AttackAoe:
		for _, e := range FindAoeTargets(s.candidates(), PointOf(target), proj.Radius) {
			s.strike(e, proj.Damage, hit, proj.Effect)
		}
	case defs.AttackChain:
		chain := FindChainTargets(s.candidates(), target, proj.ChainRange, proj.ChainHops)
		dmg := float64(proj.Damage)
		for _, e := range chain {
			s.strike(e, int(math.Floor(dmg)), hit, proj.Effect)
			dmg *= config.ChainFalloff
		}
	default:
		s.strike(target, proj.Damage, hit, proj.Effect)
	}
}

func (s *ProjectileSystem) strike(e *component.Enemy, dmg int, hit Hit, effect *defs.EffectDef) {
	if dmg < 1 {
		dmg = 1
	}
	res := s.damage.ApplyDamage(e, dmg, hit)
	if !res.Killed && effect != nil {
		s.effects.Apply(e, effect, hit.SlotID)
	}
}

func (s *ProjectileSystem) candidates() []*component.Enemy {
	var out []*component.Enemy
	for _, e := range s.world.State.Enemies {
		if e.Alive() && !e.Transport {
			out = append(out, e)
		}
	}
	return out
}
