// internal/defs/types.go
package defs

// Mode selects how waves are produced.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModePractice Mode = "practice"
)

// WordLength is a word bucket used by the word picker.
type WordLength string

const (
	WordShort  WordLength = "short"
	WordMedium WordLength = "medium"
	WordLong   WordLength = "long"
)

// Resource names tracked by the economy. Order is the iteration order for caps and events.
const (
	ResourceGold  = "gold"
	ResourceWood  = "wood"
	ResourceStone = "stone"
	ResourceFood  = "food"
)

// ResourceKinds lists every tracked resource in a fixed order.
var ResourceKinds = []string{ResourceGold, ResourceWood, ResourceStone, ResourceFood}

// Cost is an amount per resource.
type Cost map[string]int

// Gold returns the gold component of the cost.
func (c Cost) Gold() int {
	return c[ResourceGold]
}

// Features are the toggles read by the core.
type Features struct {
	TurretDowngrade bool `json:"turret_downgrade" yaml:"turret_downgrade"`
	LoopWaves       bool `json:"loop_waves" yaml:"loop_waves"`
	EliteAffixes    bool `json:"elite_affixes" yaml:"elite_affixes"`
	Evacuations     bool `json:"evacuations" yaml:"evacuations"`
}

// RepairDef configures castle repair.
type RepairDef struct {
	Amount   int     `json:"amount" yaml:"amount"`
	Cost     int     `json:"cost" yaml:"cost"`
	Cooldown float64 `json:"cooldown" yaml:"cooldown"`
}

// WordBank holds candidate words per length bucket. Words are lowercase a-z.
type WordBank struct {
	Short  []string `json:"short" yaml:"short"`
	Medium []string `json:"medium" yaml:"medium"`
	Long   []string `json:"long" yaml:"long"`
}

// Bucket returns the words of one length bucket.
func (w WordBank) Bucket(l WordLength) []string {
	switch l {
	case WordShort:
		return w.Short
	case WordLong:
		return w.Long
	default:
		return w.Medium
	}
}

// GameConfig is the declarative match configuration. The core never mutates it.
type GameConfig struct {
	Lanes             int               `json:"lanes" yaml:"lanes"`
	StartingResources Cost              `json:"starting_resources" yaml:"starting_resources"`
	Tiers             []EnemyTier       `json:"tiers" yaml:"tiers"`
	Turrets           []TurretArchetype `json:"turrets" yaml:"turrets"`
	Slots             []SlotDef         `json:"slots" yaml:"slots"`
	Waves             []WaveConfig      `json:"waves" yaml:"waves"`
	Bands             []DifficultyBand  `json:"bands" yaml:"bands"`
	Castle            []CastleLevel     `json:"castle" yaml:"castle"`
	Repair            RepairDef         `json:"repair" yaml:"repair"`
	Words             WordBank          `json:"words" yaml:"words"`
	Features          Features          `json:"features" yaml:"features"`
	PracticeTier      string            `json:"practice_tier" yaml:"practice_tier"`
	PracticeBossTier  string            `json:"practice_boss_tier" yaml:"practice_boss_tier"`
}

// Tier looks up an enemy tier by id.
func (c *GameConfig) Tier(id string) (*EnemyTier, bool) {
	for i := range c.Tiers {
		if c.Tiers[i].ID == id {
			return &c.Tiers[i], true
		}
	}
	return nil, false
}

// Turret looks up a turret archetype by id.
func (c *GameConfig) Turret(id string) (*TurretArchetype, bool) {
	for i := range c.Turrets {
		if c.Turrets[i].ID == id {
			return &c.Turrets[i], true
		}
	}
	return nil, false
}

// CastleLevel returns the definition for a castle level (1-based).
func (c *GameConfig) CastleLevel(level int) (*CastleLevel, bool) {
	for i := range c.Castle {
		if c.Castle[i].Level == level {
			return &c.Castle[i], true
		}
	}
	return nil, false
}
