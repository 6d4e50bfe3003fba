package defs

import "go-typing-defense/internal/config"

// Elite affix catalog ids.
const (
	AffixShielded = "shielded"
	AffixArmored  = "armored"
	AffixJammer   = "jammer"
)

// AffixDef is one entry of the closed affix catalog.
type AffixDef struct {
	ID               string
	Label            string
	LaneFireRateMult float64
	DamageTakenMult  float64
	BonusShield      int
}

// AffixCatalog is the closed set of elite affixes.
var AffixCatalog = map[string]AffixDef{
	AffixShielded: {ID: AffixShielded, Label: "Shielded", LaneFireRateMult: 1, DamageTakenMult: 1, BonusShield: config.AffixShieldedBonus},
	AffixArmored:  {ID: AffixArmored, Label: "Armored", LaneFireRateMult: 1, DamageTakenMult: config.AffixArmoredDamageTaken},
	AffixJammer:   {ID: AffixJammer, Label: "Jammer", LaneFireRateMult: config.AffixJammerFireRate, DamageTakenMult: 1},
}
