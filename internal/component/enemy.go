package component

import (
	"math"

	"go-typing-defense/internal/config"
	"go-typing-defense/internal/types"
)

// EnemyStatus — состояние врага. Defeated and Escaped are terminal.
type EnemyStatus int

const (
	EnemyAlive EnemyStatus = iota
	EnemyDefeated
	EnemyEscaped
)

func (s EnemyStatus) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyDefeated:
		return "defeated"
	case EnemyEscaped:
		return "escaped"
	}
	return "unknown"
}

// Shield is a depletable buffer absorbed before health.
type Shield struct {
	Current int
	Max     int
}

// Enemy представляет вражескую сущность на линии.
type Enemy struct {
	ID        types.EntityID
	TierID    string
	Word      string
	Typed     int // correctly typed prefix length
	Mistakes  int // mistakes in the current attempt on this word
	Engaged   bool
	MaxHealth int
	Health    int
	Shield    *Shield
	Speed     float64
	BaseSpeed float64
	Lane      int
	Distance  float64 // 0 at spawn, 1 at the castle
	Status    EnemyStatus
	Effects   []StatusEffect
	Affixes   []EliteAffixInstance
	WaveIndex int
	SpawnedAt float64
	Gold      int
	Damage    int // castle damage on escape
	Transport bool
	Boss      bool
	Taunt     string
}

// Alive reports whether the enemy is still on the field.
func (e *Enemy) Alive() bool {
	return e.Status == EnemyAlive
}

// GridPos maps the lane position onto the integer grid used for Manhattan distances.
func (e *Enemy) GridPos() (x, y int) {
	return int(math.Round((1 - e.Distance) * config.PathUnits)), e.Lane * config.LaneSpacing
}

// Remaining returns the untyped suffix of the word.
func (e *Enemy) Remaining() string {
	if e.Typed >= len(e.Word) {
		return ""
	}
	return e.Word[e.Typed:]
}

// ShieldValue returns the current shield, 0 when the enemy has none.
func (e *Enemy) ShieldValue() int {
	if e.Shield == nil {
		return 0
	}
	return e.Shield.Current
}

// DamageTakenMult is the product of the affix turret-damage-taken multipliers.
func (e *Enemy) DamageTakenMult() float64 {
	m := 1.0
	for _, a := range e.Affixes {
		m *= a.DamageTakenMult
	}
	return m
}

// LaneFireRateMult is the product of the affix lane fire-rate multipliers.
func (e *Enemy) LaneFireRateMult() float64 {
	m := 1.0
	for _, a := range e.Affixes {
		m *= a.LaneFireRateMult
	}
	return m
}

// HasAffix reports whether the enemy carries the given affix id.
func (e *Enemy) HasAffix(id string) bool {
	for _, a := range e.Affixes {
		if a.ID == id {
			return true
		}
	}
	return false
}
