package component

// Passive is one derived castle bonus.
type Passive struct {
	ID    string
	Total float64
	Delta float64 // change against the previous level
}

// CastleState — состояние замка. Only the economy changes it, except for
// escape damage and per-tick regeneration.
type CastleState struct {
	Level            int
	MaxHealth        int
	Health           float64
	Armor            int
	RegenPerSecond   float64
	NextUpgradeCost  *int // nil at max level
	RepairCooldown   float64
	GoldBonusPercent float64
	SlotUnlocks      int
	Passives         []Passive
}

// Destroyed reports whether the castle has fallen.
func (c *CastleState) Destroyed() bool {
	return c.Health <= 0
}

// Missing returns the health needed to reach max.
func (c *CastleState) Missing() float64 {
	return float64(c.MaxHealth) - c.Health
}
