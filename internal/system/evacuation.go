package system

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// EvacuationSystem tracks scripted transports. They never fight and never
// count as kills or breaches.
type EvacuationSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	economy         *EconomySystem
}

func NewEvacuationSystem(world *entity.World, eventDispatcher *event.Dispatcher, economy *EconomySystem) *EvacuationSystem {
	return &EvacuationSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		economy:         economy,
	}
}

// Start registers a freshly spawned transport.
func (s *EvacuationSystem) Start(transport *component.Enemy, duration float64) {
	st := s.world.State
	st.Evacuations = append(st.Evacuations, component.EvacuationState{
		EnemyID:   transport.ID,
		Lane:      transport.Lane,
		Remaining: duration,
		Duration:  duration,
	})
	s.eventDispatcher.Publish(st.Time, event.EvacuationPayload{
		Kind: event.EvacuationStarted, EnemyID: transport.ID, Lane: transport.Lane, Duration: duration,
	})
}

func (s *EvacuationSystem) find(transport *component.Enemy) *component.EvacuationState {
	for i := range s.world.State.Evacuations {
		ev := &s.world.State.Evacuations[i]
		if ev.EnemyID == transport.ID && !ev.Done {
			return ev
		}
	}
	return nil
}

// Rescue completes an evacuation: the transport leaves the field and pays out.
func (s *EvacuationSystem) Rescue(transport *component.Enemy) {
	st := s.world.State
	ev := s.find(transport)
	if ev == nil {
		return
	}
	ev.Done = true
	transport.Status = component.EnemyDefeated
	s.eventDispatcher.Publish(st.Time, event.EvacuationPayload{
		Kind: event.EvacuationSucceeded, EnemyID: transport.ID, Lane: transport.Lane, Duration: ev.Duration - ev.Remaining,
	})
	s.economy.Grant(defs.Cost{
		defs.ResourceFood: config.EvacuationRewardFood,
		defs.ResourceGold: config.EvacuationRewardGold,
	}, "evacuation")
}

// Update counts down open evacuations; a timeout fails the evacuation.
func (s *EvacuationSystem) Update(deltaTime float64) {
	st := s.world.State
	open := 0
	for i := range st.Evacuations {
		ev := &st.Evacuations[i]
		if ev.Done {
			continue
		}
		ev.Remaining -= deltaTime
		if ev.Remaining > 0 {
			open++
			continue
		}
		ev.Remaining = 0
		ev.Done = true
		if transport, ok := s.world.Enemy(ev.EnemyID); ok && transport.Alive() {
			transport.Status = component.EnemyEscaped
		}
		s.eventDispatcher.Publish(st.Time, event.EvacuationPayload{
			Kind: event.EvacuationFailed, EnemyID: ev.EnemyID, Lane: ev.Lane, Duration: ev.Duration,
		})
	}
	if open == 0 && len(st.Evacuations) > 0 {
		st.Evacuations = st.Evacuations[:0]
	}
}
