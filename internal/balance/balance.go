// Package balance holds the pure numeric formulas of the game.
// Nothing here keeps state or draws random numbers.
package balance

import (
	"math"

	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/pkg/utils"
)

func nonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// EnemyHP = base + day/3 + threat/4 with integer division.
func EnemyHP(day, threat int) int {
	day, threat = nonNeg(day), nonNeg(threat)
	return config.EnemyHpBase + day/config.EnemyHpDayDivisor + threat/config.EnemyHpThreatDivisor
}

// BossHP has the EnemyHP shape with boss constants plus an additive bonus.
func BossHP(day, threat, bonus int) int {
	day, threat = nonNeg(day), nonNeg(threat)
	return config.BossHpBase + day/config.BossHpDayDivisor + threat/config.BossHpThreatDivisor + bonus
}

// WaveSize = max(1, base + day*perDay + floor(threat*perThreat)).
func WaveSize(day, threat int) int {
	day, threat = nonNeg(day), nonNeg(threat)
	n := config.WaveSizeBase + day*config.WaveSizePerDay + int(math.Floor(float64(threat)*config.WaveSizePerThreat))
	if n < 1 {
		return 1
	}
	return n
}

// ComboMultiplier is 1 + floor(combo/10)*0.1.
func ComboMultiplier(combo int) float64 {
	return 1 + float64(nonNeg(combo)/config.ComboStep)*config.ComboStepBonus
}

// TypingDamage adds the WPM and accuracy bonuses to base, applies the combo
// multiplier, floors, and never returns less than 1.
func TypingDamage(base int, wpm, accuracy float64, combo int) int {
	dmg := base
	if wpm >= config.TypingWpmThreshold {
		dmg++
	}
	if accuracy >= config.TypingAccuracyThreshold {
		dmg++
	}
	out := int(math.Floor(float64(dmg) * ComboMultiplier(combo)))
	if out < 1 {
		return 1
	}
	return out
}

// UpgradeCostValue = floor(baseCost * 1.5^level).
func UpgradeCostValue(baseCost, level int) int {
	return int(math.Floor(float64(baseCost) * math.Pow(config.UpgradeCostMultiplier, float64(nonNeg(level)))))
}

// UpgradeCost applies UpgradeCostValue to every resource of a cost.
func UpgradeCost(baseCost defs.Cost, level int) defs.Cost {
	out := make(defs.Cost, len(baseCost))
	for k, v := range baseCost {
		out[k] = UpgradeCostValue(v, level)
	}
	return out
}

// TowerDamage = floor(baseDamage * 1.25^(level-1)). Levels below 1 count as 1.
func TowerDamage(baseDamage, level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(float64(baseDamage) * math.Pow(config.TowerDamageMultiplier, float64(level-1))))
}

// GoldReward = floor(baseGold * (1 + day*0.05)).
func GoldReward(baseGold, day int) int {
	return int(math.Floor(float64(baseGold) * (1 + float64(nonNeg(day))*config.GoldRewardPerDay)))
}

// ResourceCap is the day-dependent ceiling for one resource.
func ResourceCap(kind string, day int) int {
	day = nonNeg(day)
	if kind == defs.ResourceGold {
		return config.GoldCapBase + day*config.GoldCapPerDay
	}
	return config.ResourceCapBase + day*config.ResourceCapPerDay
}

// CapResources clamps every resource above its cap. It returns the capped
// values and the trimmed amount per resource (only resources that were trimmed).
func CapResources(values map[string]int, day int) (capped, trimmed map[string]int) {
	capped = make(map[string]int, len(values))
	trimmed = make(map[string]int)
	for k, v := range values {
		limit := ResourceCap(k, day)
		if v > limit {
			trimmed[k] = v - limit
			v = limit
		}
		capped[k] = v
	}
	return capped, trimmed
}

// WPM uses the standard five characters per word. Returns 0 below the minimum sample time.
func WPM(correctChars int, seconds float64) float64 {
	if seconds < config.WpmMinSampleSeconds {
		return 0
	}
	return (float64(correctChars) / 5) / (seconds / 60)
}

// RollingAccuracy is the share of true flags; an empty window counts as perfect.
func RollingAccuracy(window []bool) float64 {
	if len(window) == 0 {
		return 1
	}
	ok := 0
	for _, v := range window {
		if v {
			ok++
		}
	}
	return float64(ok) / float64(len(window))
}

// DifficultyBias nudges word selection toward longer words for accurate typists.
func DifficultyBias(accuracy float64) float64 {
	return utils.ClampFloat((accuracy-config.TargetAccuracy)*config.DifficultyBiasGain, -config.MaxDifficultyBias, config.MaxDifficultyBias)
}

// EliteChance grows with the wave index up to a ceiling.
func EliteChance(waveIndex int) float64 {
	return math.Min(config.EliteMaxChance, config.EliteBaseChance+float64(nonNeg(waveIndex))*config.EliteChancePerWave)
}
