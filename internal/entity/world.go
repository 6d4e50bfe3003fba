// internal/entity/world.go
package entity

import (
	"fmt"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/types"
)

// World owns the match state and hands out entity ids. Enemies and projectiles
// live in slices so every iteration runs in spawn order.
type World struct {
	State  *component.GameState
	NextID types.EntityID
}

func NewWorld(state *component.GameState) *World {
	return &World{
		State:  state,
		NextID: 1,
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Enemy finds an enemy by id, alive or not.
func (w *World) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range w.State.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// MustEnemy is Enemy for callers that hold an id the world handed out.
// An unknown id is a caller bug.
func (w *World) MustEnemy(id types.EntityID) *component.Enemy {
	e, ok := w.Enemy(id)
	if !ok {
		panic(fmt.Sprintf("entity: unknown enemy id %d", id))
	}
	return e
}

// AddEnemy appends an enemy; its id must come from NewEntity.
func (w *World) AddEnemy(e *component.Enemy) {
	w.State.Enemies = append(w.State.Enemies, e)
}

// AliveEnemies returns the alive enemies in spawn order.
func (w *World) AliveEnemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(w.State.Enemies))
	for _, e := range w.State.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// AliveInWave counts alive enemies that spawned in the given wave.
func (w *World) AliveInWave(waveIndex int) int {
	n := 0
	for _, e := range w.State.Enemies {
		if e.Alive() && e.WaveIndex == waveIndex {
			n++
		}
	}
	return n
}

func (w *World) AddProjectile(p *component.Projectile) {
	w.State.Projectiles = append(w.State.Projectiles, p)
}

// Slot finds a turret slot by its config id.
func (w *World) Slot(id int) (*component.TurretSlot, bool) {
	for _, s := range w.State.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Prune drops terminal enemies. Called once at the end of a tick, after every
// system has seen the final status.
func (w *World) Prune() {
	kept := w.State.Enemies[:0]
	for _, e := range w.State.Enemies {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.State.Enemies); i++ {
		w.State.Enemies[i] = nil
	}
	w.State.Enemies = kept
}
