// internal/system/movement.go
package system

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// MovementSystem двигает врагов по линиям к замку.
type MovementSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	economy         *EconomySystem
}

func NewMovementSystem(world *entity.World, eventDispatcher *event.Dispatcher, economy *EconomySystem) *MovementSystem {
	return &MovementSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		economy:         economy,
	}
}

func (s *MovementSystem) Update(deltaTime float64) {
	st := s.world.State
	for _, enemy := range s.world.AliveEnemies() {
		if enemy.Transport || enemy.Speed <= 0 {
			continue
		}
		enemy.Distance += enemy.Speed * deltaTime
		if enemy.Distance < 1 {
			continue
		}
		enemy.Distance = 1
		s.escape(enemy)
		if st.Status != component.StatusRunning {
			return
		}
	}
}

// escape — враг дошёл до замка.
func (s *MovementSystem) escape(enemy *component.Enemy) {
	st := s.world.State
	enemy.Status = component.EnemyEscaped
	dmg := enemy.Damage - st.Castle.Armor
	if dmg < 1 {
		dmg = 1
	}
	s.eventDispatcher.Publish(st.Time, event.EnemyEscapedPayload{
		EnemyID:   enemy.ID,
		Tier:      enemy.TierID,
		Lane:      enemy.Lane,
		WaveIndex: enemy.WaveIndex,
		Damage:    dmg,
		Boss:      enemy.Boss,
	})
	s.economy.DamageCastle(dmg, enemy)
}
