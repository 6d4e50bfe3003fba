// internal/system/utils.go
package system

import (
	"log"
	"math"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// Hit describes where damage comes from.
type Hit struct {
	Source      event.DamageSource
	SlotID      int     // turret slot, 0 for typing
	ShieldBonus float64 // multiplier against shields, 0 or 1 for none
}

// DamageResult is what ApplyDamage actually did.
type DamageResult struct {
	Health   int // health removed
	Absorbed int // shield removed
	Killed   bool
}

// Total is the damage dealt to shield and health together.
func (r DamageResult) Total() int {
	return r.Health + r.Absorbed
}

// DamageSystem is the single path for damage against enemies.
type DamageSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	economy         *EconomySystem
}

func NewDamageSystem(world *entity.World, eventDispatcher *event.Dispatcher, economy *EconomySystem) *DamageSystem {
	return &DamageSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		economy:         economy,
	}
}

// ApplyDamage наносит урон врагу: уязвимость босса, аффиксы, щит, здоровье.
// Any positive damage removes at least 1 point.
func (s *DamageSystem) ApplyDamage(target *component.Enemy, damage int, hit Hit) DamageResult {
	var res DamageResult
	if target == nil || !target.Alive() || damage <= 0 {
		return res
	}
	st := s.world.State

	dmg := float64(damage)
	if st.Boss.Active && st.Boss.Vulnerable && st.Boss.EnemyID == target.ID {
		dmg *= st.Boss.VulnerabilityMult
	}
	if hit.Source == event.SourceTurret {
		dmg *= target.DamageTakenMult()
	}
	total := int(math.Floor(dmg))
	if total < 1 {
		total = 1
	}

	healthDamage := total
	if target.Shield != nil && target.Shield.Current > 0 {
		bonus := hit.ShieldBonus
		if bonus < 1 {
			bonus = 1
		}
		before := target.Shield.Current
		if float64(total)*bonus < float64(before) {
			hitShield := int(math.Floor(float64(total) * bonus))
			if hitShield < 1 {
				hitShield = 1
			}
			target.Shield.Current -= hitShield
			res.Absorbed = hitShield
			healthDamage = 0
		} else {
			// Щит пробит: сколько "сырого" урона ушло на щит.
			used := int(math.Ceil(float64(before) / bonus))
			target.Shield.Current = 0
			res.Absorbed = before
			healthDamage = total - used
			if healthDamage < 0 {
				healthDamage = 0
			}
		}
		if target.Shield.Current == 0 {
			s.eventDispatcher.Publish(st.Time, event.ShieldBrokenPayload{EnemyID: target.ID, Source: hit.Source, SlotID: hit.SlotID})
		}
	}

	if healthDamage > target.Health {
		healthDamage = target.Health
	}
	target.Health -= healthDamage
	res.Health = healthDamage

	s.eventDispatcher.Publish(st.Time, event.EnemyDamagedPayload{
		EnemyID:  target.ID,
		Source:   hit.Source,
		SlotID:   hit.SlotID,
		Amount:   res.Health,
		Absorbed: res.Absorbed,
		Health:   target.Health,
	})

	if target.Health <= 0 {
		s.kill(target, hit)
		res.Killed = true
	}
	return res
}

func (s *DamageSystem) kill(target *component.Enemy, hit Hit) {
	st := s.world.State
	target.Health = 0
	target.Status = component.EnemyDefeated

	gold := int(math.Floor(float64(target.Gold) * (1 + st.Castle.GoldBonusPercent/100)))
	s.eventDispatcher.Publish(st.Time, event.EnemyDefeatedPayload{
		EnemyID:   target.ID,
		Tier:      target.TierID,
		Lane:      target.Lane,
		WaveIndex: target.WaveIndex,
		Gold:      gold,
		Source:    hit.Source,
		Boss:      target.Boss,
	})
	if gold > 0 {
		s.economy.AddGold(gold, "kill")
	}
	if target.Boss {
		log.Printf("Boss %s defeated at %.1fs", target.TierID, st.Time)
	}
}
