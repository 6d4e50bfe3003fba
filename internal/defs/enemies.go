// internal/defs/enemies.go
package defs

import "go-typing-defense/internal/config"

// EnemyTier holds all the static data for a specific type of enemy.
type EnemyTier struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Health int     `json:"health" yaml:"health"`
	Speed  float64 `json:"speed" yaml:"speed"` // normalized path per second
	Damage int     `json:"damage" yaml:"damage"`
	Gold   int     `json:"gold" yaml:"gold"`
	Shield int     `json:"shield" yaml:"shield"`
	// WordLength pins the word bucket; empty means the band weights decide.
	WordLength WordLength `json:"word_length,omitempty" yaml:"word_length,omitempty"`
	// EliteAffixes is the affix allow-list for this tier. Empty = never elite.
	EliteAffixes []string `json:"elite_affixes,omitempty" yaml:"elite_affixes,omitempty"`
	Transport    bool     `json:"transport,omitempty" yaml:"transport,omitempty"`
	Boss         *BossDef `json:"boss,omitempty" yaml:"boss,omitempty"`
}

// BossDef tunes the boss phase machine. Zero fields fall back to config defaults.
type BossDef struct {
	IntroDuration         float64 `json:"intro_duration" yaml:"intro_duration"`
	PhaseTwoHealth        float64 `json:"phase_two_health" yaml:"phase_two_health"`
	PhaseTwoAfter         float64 `json:"phase_two_after" yaml:"phase_two_after"`
	FinaleHealth          float64 `json:"finale_health" yaml:"finale_health"`
	FinaleAfter           float64 `json:"finale_after" yaml:"finale_after"`
	ShieldSegments        int     `json:"shield_segments" yaml:"shield_segments"`
	RotationInterval      float64 `json:"rotation_interval" yaml:"rotation_interval"`
	VulnerabilityInterval float64 `json:"vulnerability_interval" yaml:"vulnerability_interval"`
	VulnerabilityDuration float64 `json:"vulnerability_duration" yaml:"vulnerability_duration"`
	VulnerabilityMult     float64 `json:"vulnerability_mult" yaml:"vulnerability_mult"`
	ShockwaveInterval     float64 `json:"shockwave_interval" yaml:"shockwave_interval"`
	ShockwaveDuration     float64 `json:"shockwave_duration" yaml:"shockwave_duration"`
	ShockwaveFireRateMult float64 `json:"shockwave_fire_rate_mult" yaml:"shockwave_fire_rate_mult"`
}

// WithDefaults returns a copy with zero fields replaced by config defaults.
func (b BossDef) WithDefaults() BossDef {
	orF := func(v, d float64) float64 {
		if v == 0 {
			return d
		}
		return v
	}
	b.IntroDuration = orF(b.IntroDuration, config.BossIntroDuration)
	b.PhaseTwoHealth = orF(b.PhaseTwoHealth, config.BossPhaseTwoHealth)
	b.PhaseTwoAfter = orF(b.PhaseTwoAfter, config.BossPhaseTwoAfter)
	b.FinaleHealth = orF(b.FinaleHealth, config.BossFinaleHealth)
	b.FinaleAfter = orF(b.FinaleAfter, config.BossFinaleAfter)
	if b.ShieldSegments == 0 {
		b.ShieldSegments = config.BossShieldSegments
	}
	b.RotationInterval = orF(b.RotationInterval, config.BossRotationInterval)
	b.VulnerabilityInterval = orF(b.VulnerabilityInterval, config.BossVulnerabilityInterval)
	b.VulnerabilityDuration = orF(b.VulnerabilityDuration, config.BossVulnerabilityDuration)
	b.VulnerabilityMult = orF(b.VulnerabilityMult, config.BossVulnerabilityMult)
	b.ShockwaveInterval = orF(b.ShockwaveInterval, config.BossShockwaveInterval)
	b.ShockwaveDuration = orF(b.ShockwaveDuration, config.BossShockwaveDuration)
	b.ShockwaveFireRateMult = orF(b.ShockwaveFireRateMult, config.BossShockwaveFireRateMult)
	return b
}
