package defs

// SpawnEntry fires Count enemies at At + i*Cadence seconds into the wave.
type SpawnEntry struct {
	At      float64 `json:"at" yaml:"at"`
	Lane    int     `json:"lane" yaml:"lane"`
	Tier    string  `json:"tier" yaml:"tier"`
	Count   int     `json:"count" yaml:"count"`
	Cadence float64 `json:"cadence" yaml:"cadence"`
	Shield  int     `json:"shield,omitempty" yaml:"shield,omitempty"`
	Taunt   string  `json:"taunt,omitempty" yaml:"taunt,omitempty"`
}

// EvacuationEntry is a scripted transport that must be typed within Duration.
type EvacuationEntry struct {
	At       float64 `json:"at" yaml:"at"`
	Lane     int     `json:"lane" yaml:"lane"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// WaveBonus is paid when a wave completes.
type WaveBonus struct {
	Gold  int `json:"gold" yaml:"gold"`
	Wood  int `json:"wood" yaml:"wood"`
	Stone int `json:"stone" yaml:"stone"`
}

// WaveConfig описывает одну волну: таймлайн спавна и сценарные события.
type WaveConfig struct {
	Countdown   float64           `json:"countdown,omitempty" yaml:"countdown,omitempty"`
	Duration    float64           `json:"duration" yaml:"duration"`
	Spawns      []SpawnEntry      `json:"spawns" yaml:"spawns"`
	Evacuations []EvacuationEntry `json:"evacuations,omitempty" yaml:"evacuations,omitempty"`
	Bonus       WaveBonus         `json:"bonus" yaml:"bonus"`
}

// EnemyCount returns the total number of scripted enemies in the wave.
func (w WaveConfig) EnemyCount() int {
	n := 0
	for _, s := range w.Spawns {
		n += s.Count
	}
	return n
}

// WordWeights weights the word length buckets.
type WordWeights struct {
	Short  float64 `json:"short" yaml:"short"`
	Medium float64 `json:"medium" yaml:"medium"`
	Long   float64 `json:"long" yaml:"long"`
}

// DifficultyBand is active from FromWave (0-based wave index) onward.
type DifficultyBand struct {
	FromWave    int         `json:"from_wave" yaml:"from_wave"`
	WordWeights WordWeights `json:"word_weights" yaml:"word_weights"`
	HealthMult  float64     `json:"health_mult" yaml:"health_mult"`
	SpeedMult   float64     `json:"speed_mult" yaml:"speed_mult"`
	RewardMult  float64     `json:"reward_mult" yaml:"reward_mult"`
}

// CastleLevel holds the castle stats at one level. UpgradeCost is 0 at max level.
type CastleLevel struct {
	Level            int     `json:"level" yaml:"level"`
	MaxHealth        int     `json:"max_health" yaml:"max_health"`
	Armor            int     `json:"armor" yaml:"armor"`
	RegenPerSecond   float64 `json:"regen_per_second" yaml:"regen_per_second"`
	UpgradeCost      int     `json:"upgrade_cost" yaml:"upgrade_cost"`
	GoldBonusPercent float64 `json:"gold_bonus_percent" yaml:"gold_bonus_percent"`
	SlotUnlocks      int     `json:"slot_unlocks" yaml:"slot_unlocks"`
}
