// internal/component/projectile.go
package component

import (
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/types"
)

// Projectile представляет летящий снаряд. It travels along the path in normalized space.
type Projectile struct {
	ID          types.EntityID
	Kind        string
	Attack      defs.AttackMode
	Lane        int
	Position    float64
	Speed       float64
	Damage      int
	TargetID    types.EntityID
	SourceSlot  int
	Effect      *defs.EffectDef
	ShieldBonus float64
	Radius      int
	ChainHops   int
	ChainRange  int
}
