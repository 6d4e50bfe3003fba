// internal/config/config.go
package config

import "image/color"

// Окно и шаг симуляции для десктопного драйвера.
const (
	ScreenWidth  = 1200
	ScreenHeight = 720
	TicksPerSec  = 60
	MaxDeltaTime = 0.06
)

// Геометрия линий. Castle is at X = 0, spawn at X = PathUnits.
const (
	LaneCount   = 3
	PathUnits   = 100
	LaneSpacing = 10
)

// Balance curves. Tests assert exact integer outputs, keep these in sync with balance_test.go.
const (
	EnemyHpBase          = 2
	EnemyHpDayDivisor    = 3
	EnemyHpThreatDivisor = 4

	BossHpBase          = 12
	BossHpDayDivisor    = 2
	BossHpThreatDivisor = 3

	WaveSizeBase      = 3
	WaveSizePerDay    = 1
	WaveSizePerThreat = 0.5

	TypingWpmThreshold      = 60.0
	TypingAccuracyThreshold = 0.95
	ComboStep               = 10
	ComboStepBonus          = 0.1

	UpgradeCostMultiplier = 1.5
	TowerDamageMultiplier = 1.25
	GoldRewardPerDay      = 0.05

	GoldCapBase        = 500
	GoldCapPerDay      = 50
	ResourceCapBase    = 200
	ResourceCapPerDay  = 25
	PracticeBaseThreat = 2
)

// Typing.
const (
	TypingDamageMultiplier    = 1.0
	WpmMinSampleSeconds       = 2.0
	AccuracyWindowSize        = 20
	TargetAccuracy            = 0.9
	DifficultyBiasGain        = 2.5
	MaxDifficultyBias         = 0.5
	ComboDecaySeconds         = 4.0
	ComboWarningSeconds       = 1.5
	QuickRepeatWindow         = 0.04
	PerfectWordBonusThreshold = 5
	PerfectWordBonusGold      = 10
	WordPickAttempts          = 6
)

// Combat.
const (
	ChainFalloff       = 0.75
	BurnTickSeconds    = 1.0
	MinSpeedMultiplier = 0.1
)

// Elite affixes.
const (
	EliteBaseChance    = 0.02
	EliteChancePerWave = 0.03
	EliteMaxChance     = 0.35

	AffixShieldedBonus      = 6
	AffixArmoredDamageTaken = 0.7
	AffixJammerFireRate     = 0.75
)

// Boss defaults, used when a boss tier leaves a field at zero.
const (
	BossIntroDuration         = 2.0
	BossPhaseTwoHealth        = 0.66
	BossPhaseTwoAfter         = 40.0
	BossFinaleHealth          = 0.33
	BossFinaleAfter           = 80.0
	BossShieldSegments        = 3
	BossRotationInterval      = 6.0
	BossVulnerabilityInterval = 10.0
	BossVulnerabilityDuration = 3.0
	BossVulnerabilityMult     = 1.5
	BossShockwaveInterval     = 12.0
	BossShockwaveDuration     = 4.0
	BossShockwaveFireRateMult = 0.5
)

// Castle, economy, evacuation.
const (
	CountdownSeconds       = 5.0
	CastleUpgradeHealRatio = 0.1
	RepairAmount           = 30
	RepairCost             = 40
	RepairCooldown         = 20.0
	PassiveEpsilon         = 1e-6
	EvacuationRewardFood   = 15
	EvacuationRewardGold   = 10
	StartingGold           = 200
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	LaneColor       = color.RGBA{45, 55, 70, 255}
	CastleColor     = color.RGBA{50, 205, 50, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	EliteColor      = color.RGBA{255, 140, 0, 255}
	BossColor       = color.RGBA{180, 50, 230, 255}
	TransportColor  = color.RGBA{70, 130, 180, 255}
	ProjectileColor = color.RGBA{255, 215, 0, 255}
	SlotColor       = color.RGBA{128, 128, 128, 255}
	SelectedColor   = color.RGBA{240, 240, 240, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TypedColor      = color.RGBA{255, 255, 0, 255}
)
