// internal/component/status_effect.go
package component

import "go-typing-defense/internal/defs"

// StatusEffect is a timed slow or burn on an enemy.
type StatusEffect struct {
	Kind      defs.EffectKind
	Remaining float64 // How much time is left for the effect.
	Magnitude float64 // Speed multiplier for slow, damage per second for burn.
	TickTimer float64 // Burn only: time until the next damage tick.
	SourceID  int     // Slot that applied the effect, 0 if none.
}
