package component

// WaveStats accumulates counters for the current wave.
type WaveStats struct {
	WaveIndex         int
	StartedAt         float64
	EnemiesDefeated   int
	Breaches          int
	PerfectWords      int
	TurretDamage      int
	TypingDamage      int
	SlotDamage        map[int]int
	ShieldBreaks      int
	RepairsUsed       int
	RepairHealth      float64
	RepairGold        int
	ReactionTimeSum   float64
	ReactionSamples   int
	GoldEarned        int
	GoldBonus         int
	EvacuationsOK     int
	EvacuationsFailed int
	MaxCombo          int
	BossEvents        []string
	PassivesUnlocked  []string
}

// SessionStats folds completed waves together.
type SessionStats struct {
	WavesCompleted    int
	EnemiesDefeated   int
	Breaches          int
	PerfectWords      int
	TurretDamage      int
	TypingDamage      int
	ShieldBreaks      int
	RepairsUsed       int
	RepairHealth      float64
	RepairGold        int
	GoldEarned        int
	GoldBonus         int
	ReactionTimeSum   float64
	ReactionSamples   int
	EvacuationsOK     int
	EvacuationsFailed int
	FlawlessWaves     int
}

// AnalyticsState is the analytics accumulator carried by the match.
type AnalyticsState struct {
	Wave    WaveStats
	Session SessionStats
}
