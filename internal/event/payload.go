package event

import "go-typing-defense/internal/types"

// DamageSource tells typing damage and turret damage apart.
type DamageSource string

const (
	SourceTyping DamageSource = "typing"
	SourceTurret DamageSource = "turret"
)

type MatchStartedPayload struct {
	MatchID    string
	Mode       string
	Seed       int64
	TotalWaves int
}

func (MatchStartedPayload) EventType() EventType { return MatchStarted }

type MatchEndedPayload struct {
	MatchID   string
	Status    string
	WaveIndex int
	Score     int
}

func (MatchEndedPayload) EventType() EventType { return MatchEnded }

type MilestonePayload struct {
	ID string
}

func (MilestonePayload) EventType() EventType { return MilestoneReached }

type EnemySpawnedPayload struct {
	EnemyID   types.EntityID
	Tier      string
	Lane      int
	Word      string
	Health    int
	Shield    int
	Affixes   []string
	WaveIndex int
	Boss      bool
	Transport bool
	Taunt     string
}

func (EnemySpawnedPayload) EventType() EventType { return EnemySpawned }

type EnemyDamagedPayload struct {
	EnemyID  types.EntityID
	Source   DamageSource
	SlotID   int
	Amount   int // health lost
	Absorbed int // taken by the shield
	Health   int
}

func (EnemyDamagedPayload) EventType() EventType { return EnemyDamaged }

type EnemyDefeatedPayload struct {
	EnemyID   types.EntityID
	Tier      string
	Lane      int
	WaveIndex int
	Gold      int
	Source    DamageSource
	Boss      bool
}

func (EnemyDefeatedPayload) EventType() EventType { return EnemyDefeated }

type EnemyEscapedPayload struct {
	EnemyID   types.EntityID
	Tier      string
	Lane      int
	WaveIndex int
	Damage    int
	Boss      bool
}

func (EnemyEscapedPayload) EventType() EventType { return EnemyEscaped }

type ShieldBrokenPayload struct {
	EnemyID types.EntityID
	Source  DamageSource
	SlotID  int
}

func (ShieldBrokenPayload) EventType() EventType { return ShieldBroken }

type CastleDamagedPayload struct {
	EnemyID types.EntityID
	Amount  int
	Health  float64
}

func (CastleDamagedPayload) EventType() EventType { return CastleDamaged }

type CastleUpgradedPayload struct {
	Level     int
	MaxHealth int
	Cost      int
	Healed    int
}

func (CastleUpgradedPayload) EventType() EventType { return CastleUpgraded }

type CastleRepairedPayload struct {
	Healed   float64
	Cost     int
	Cooldown float64
}

func (CastleRepairedPayload) EventType() EventType { return CastleRepaired }

type PassiveUnlockedPayload struct {
	ID    string
	Level int
	Total float64
	Delta float64
}

func (PassiveUnlockedPayload) EventType() EventType { return PassiveUnlocked }

type SlotUnlockedPayload struct {
	SlotID int
	Lane   int
}

func (SlotUnlockedPayload) EventType() EventType { return SlotUnlocked }

// TurretPayload is shared by TurretPlaced, TurretUpgraded and TurretDowngraded.
type TurretPayload struct {
	Kind   EventType
	SlotID int
	TypeID string
	Level  int
	Cost   int
	Refund int
}

func (p TurretPayload) EventType() EventType { return p.Kind }

type TurretFiredPayload struct {
	SlotID  int
	TypeID  string
	Kind    string
	Targets []types.EntityID
}

func (TurretFiredPayload) EventType() EventType { return TurretFired }

type GoldChangedPayload struct {
	Delta  int
	Total  int
	Reason string
}

func (GoldChangedPayload) EventType() EventType { return GoldChanged }

type ResourceCappedPayload struct {
	Resource  string
	Trimmed   int
	Converted int // score granted for the excess
}

func (ResourceCappedPayload) EventType() EventType { return ResourceCapped }

// TypingPayload is shared by TypingTargetAcquired, TypingProgress and TypingError.
type TypingPayload struct {
	Kind         EventType
	EnemyID      types.EntityID // 0 for a global error
	Char         rune
	Buffer       string
	Typed        int
	Combo        int
	ReactionTime float64 // >= 0 only on the first correct character of a cold target
}

func (p TypingPayload) EventType() EventType { return p.Kind }

// WordCompletedPayload is shared by WordCompleted and PerfectWord.
type WordCompletedPayload struct {
	Kind    EventType
	EnemyID types.EntityID
	Word    string
	Damage  int
	Combo   int
	Perfect bool
	Rescue  bool
}

func (p WordCompletedPayload) EventType() EventType { return p.Kind }

type ComboPayload struct {
	Previous int
	Reason   string
}

func (ComboPayload) EventType() EventType { return ComboReset }

// WavePayload is shared by WaveCountdownStarted, WaveStarted and WaveCompleted.
type WavePayload struct {
	Kind      EventType
	WaveIndex int
	Total     int
	Cycle     int
	Countdown float64
	Expected  int
	Duration  float64
}

func (p WavePayload) EventType() EventType { return p.Kind }

type WaveBonusPayload struct {
	WaveIndex int
	Reason    string
	Gold      int
	Wood      int
	Stone     int
	Food      int
}

func (WaveBonusPayload) EventType() EventType { return WaveBonus }

// BossPayload is shared by every Boss* event type.
type BossPayload struct {
	Kind       EventType
	EnemyID    types.EntityID
	Lane       int
	Phase      string
	Segment    int
	Multiplier float64
	Duration   float64
}

func (p BossPayload) EventType() EventType { return p.Kind }

// EvacuationPayload is shared by the Evacuation* event types.
type EvacuationPayload struct {
	Kind     EventType
	EnemyID  types.EntityID
	Lane     int
	Duration float64
}

func (p EvacuationPayload) EventType() EventType { return p.Kind }

// WaveSummary is the immutable per-wave analytics snapshot.
type WaveSummary struct {
	MatchID             string
	WaveIndex           int
	Duration            float64
	EnemiesDefeated     int
	Breaches            int
	PerfectWords        int
	TurretDamage        int
	TypingDamage        int
	SlotDamage          map[int]int
	ShieldBreaks        int
	RepairsUsed         int
	RepairHealth        float64
	RepairGold          int
	AverageReactionTime float64
	ReactionSamples     int
	GoldEarned          int
	GoldBonus           int
	EvacuationsOK       int
	EvacuationsFailed   int
	MaxCombo            int
	TurretDPS           float64
	TypingDPS           float64
	TotalDPS            float64
	BossEvents          []string
	PassivesUnlocked    []string
}

func (WaveSummary) EventType() EventType { return WaveSummaryReady }

// SessionSummary folds every completed wave of a match.
type SessionSummary struct {
	MatchID             string
	WavesCompleted      int
	EnemiesDefeated     int
	Breaches            int
	PerfectWords        int
	TurretDamage        int
	TypingDamage        int
	ShieldBreaks        int
	RepairsUsed         int
	RepairHealth        float64
	RepairGold          int
	GoldEarned          int
	GoldBonus           int
	EvacuationsOK       int
	EvacuationsFailed   int
	AverageReactionTime float64
	FlawlessWaves       int
	Milestones          []string
	Waves               []WaveSummary
}
