package component

// EliteAffixInstance is rolled once at spawn and never changes afterwards.
type EliteAffixInstance struct {
	ID               string
	Label            string
	LaneFireRateMult float64
	DamageTakenMult  float64
	BonusShield      int
}
