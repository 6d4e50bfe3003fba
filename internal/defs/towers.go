// internal/defs/towers.go
package defs

// AttackMode defines how a turret picks and hits targets.
type AttackMode string

const (
	AttackSingle AttackMode = "single"
	AttackMulti  AttackMode = "multi"
	AttackAoe    AttackMode = "aoe"
	AttackChain  AttackMode = "chain"
)

// EffectKind is a status effect carried by a projectile.
type EffectKind string

const (
	EffectSlow EffectKind = "slow"
	EffectBurn EffectKind = "burn"
)

// EffectDef describes an on-hit status effect.
// For slow, Magnitude is the speed multiplier (0.5 = half speed); for burn it is damage per second.
type EffectDef struct {
	Kind      EffectKind `json:"kind" yaml:"kind"`
	Duration  float64    `json:"duration" yaml:"duration"`
	Magnitude float64    `json:"magnitude" yaml:"magnitude"`
}

// TurretLevel is an explicit per-level row. Zero fields fall back to formula values.
type TurretLevel struct {
	Cost     Cost    `json:"cost" yaml:"cost"`
	Damage   int     `json:"damage,omitempty" yaml:"damage,omitempty"`
	FireRate float64 `json:"fire_rate,omitempty" yaml:"fire_rate,omitempty"`
	Range    int     `json:"range,omitempty" yaml:"range,omitempty"`
}

// TurretArchetype holds all the static data for a specific type of turret.
type TurretArchetype struct {
	ID              string     `json:"id" yaml:"id"`
	Name            string     `json:"name" yaml:"name"`
	Kind            string     `json:"kind" yaml:"kind"` // projectile kind
	Attack          AttackMode `json:"attack" yaml:"attack"`
	BaseCost        Cost       `json:"base_cost" yaml:"base_cost"`
	BaseDamage      int        `json:"base_damage" yaml:"base_damage"`
	FireRate        float64    `json:"fire_rate" yaml:"fire_rate"` // shots per second
	Range           int        `json:"range" yaml:"range"`
	ProjectileSpeed float64    `json:"projectile_speed" yaml:"projectile_speed"`
	MaxLevel        int        `json:"max_level" yaml:"max_level"`
	Targets         int        `json:"targets,omitempty" yaml:"targets,omitempty"`
	Radius          int        `json:"radius,omitempty" yaml:"radius,omitempty"`
	ChainHops       int        `json:"chain_hops,omitempty" yaml:"chain_hops,omitempty"`
	ChainRange      int        `json:"chain_range,omitempty" yaml:"chain_range,omitempty"`
	ShieldBonus     float64    `json:"shield_bonus,omitempty" yaml:"shield_bonus,omitempty"`
	Effect          *EffectDef `json:"effect,omitempty" yaml:"effect,omitempty"`
	// Levels optionally overrides per-level stats; index 0 is level 1.
	Levels []TurretLevel `json:"levels,omitempty" yaml:"levels,omitempty"`
}

// Level returns the explicit row for a level, if the archetype defines one.
func (t *TurretArchetype) Level(level int) (TurretLevel, bool) {
	if level < 1 || level > len(t.Levels) {
		return TurretLevel{}, false
	}
	return t.Levels[level-1], true
}

// SlotDef is a fixed turret slot in the layout.
type SlotDef struct {
	ID         int `json:"id" yaml:"id"`
	Lane       int `json:"lane" yaml:"lane"`
	X          int `json:"x" yaml:"x"`
	Y          int `json:"y" yaml:"y"`
	UnlockWave int `json:"unlock_wave" yaml:"unlock_wave"`
}
