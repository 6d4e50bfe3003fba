package defs

import (
	"fmt"
	"strings"
)

// Validate checks cross references and ranges of a GameConfig.
func Validate(cfg *GameConfig) error {
	var errs []string

	if cfg.Lanes <= 0 {
		errs = append(errs, "lanes must be >= 1")
	}
	if len(cfg.Castle) == 0 {
		errs = append(errs, "castle must define at least level 1")
	} else if _, ok := cfg.CastleLevel(1); !ok {
		errs = append(errs, "castle level 1 is missing")
	}
	for i, lvl := range cfg.Castle {
		if lvl.MaxHealth <= 0 {
			errs = append(errs, fmt.Sprintf("castle[%d].max_health must be > 0", i))
		}
		if lvl.UpgradeCost > 0 {
			if _, ok := cfg.CastleLevel(lvl.Level + 1); !ok {
				errs = append(errs, fmt.Sprintf("castle[%d] has an upgrade cost but level %d is not defined", i, lvl.Level+1))
			}
		}
	}

	seenTier := make(map[string]bool)
	for i, t := range cfg.Tiers {
		if t.ID == "" {
			errs = append(errs, fmt.Sprintf("tiers[%d].id is required", i))
		}
		if seenTier[t.ID] {
			errs = append(errs, fmt.Sprintf("tiers[%d].id %q is duplicated", i, t.ID))
		}
		seenTier[t.ID] = true
		if t.Health <= 0 {
			errs = append(errs, fmt.Sprintf("tiers[%d].health must be > 0", i))
		}
		for _, a := range t.EliteAffixes {
			if _, ok := AffixCatalog[a]; !ok {
				errs = append(errs, fmt.Sprintf("tiers[%d] references unknown affix %q", i, a))
			}
		}
	}

	for i, tr := range cfg.Turrets {
		if tr.ID == "" {
			errs = append(errs, fmt.Sprintf("turrets[%d].id is required", i))
		}
		switch tr.Attack {
		case AttackSingle, AttackMulti, AttackAoe, AttackChain:
		default:
			errs = append(errs, fmt.Sprintf("turrets[%d].attack must be one of: single, multi, aoe, chain", i))
		}
		if tr.MaxLevel < 1 {
			errs = append(errs, fmt.Sprintf("turrets[%d].max_level must be >= 1", i))
		}
		if tr.FireRate <= 0 {
			errs = append(errs, fmt.Sprintf("turrets[%d].fire_rate must be > 0", i))
		}
		if tr.BaseCost.Gold() <= 0 {
			errs = append(errs, fmt.Sprintf("turrets[%d].base_cost.gold must be > 0", i))
		}
	}

	seenSlot := make(map[int]bool)
	for i, s := range cfg.Slots {
		if seenSlot[s.ID] {
			errs = append(errs, fmt.Sprintf("slots[%d].id %d is duplicated", i, s.ID))
		}
		seenSlot[s.ID] = true
		if s.Lane < 0 || s.Lane >= cfg.Lanes {
			errs = append(errs, fmt.Sprintf("slots[%d].lane out of range", i))
		}
	}

	for w, wave := range cfg.Waves {
		if wave.Duration <= 0 {
			errs = append(errs, fmt.Sprintf("waves[%d].duration must be > 0", w))
		}
		for i, s := range wave.Spawns {
			if !seenTier[s.Tier] {
				errs = append(errs, fmt.Sprintf("waves[%d].spawns[%d] references unknown tier %q", w, i, s.Tier))
			}
			if s.Lane < 0 || s.Lane >= cfg.Lanes {
				errs = append(errs, fmt.Sprintf("waves[%d].spawns[%d].lane out of range", w, i))
			}
			if s.Count < 1 {
				errs = append(errs, fmt.Sprintf("waves[%d].spawns[%d].count must be >= 1", w, i))
			}
			if s.At < 0 || s.Cadence < 0 {
				errs = append(errs, fmt.Sprintf("waves[%d].spawns[%d] times must be >= 0", w, i))
			}
		}
		for i, e := range wave.Evacuations {
			if e.Lane < 0 || e.Lane >= cfg.Lanes {
				errs = append(errs, fmt.Sprintf("waves[%d].evacuations[%d].lane out of range", w, i))
			}
			if e.Duration <= 0 {
				errs = append(errs, fmt.Sprintf("waves[%d].evacuations[%d].duration must be > 0", w, i))
			}
		}
	}

	if len(cfg.Bands) == 0 {
		errs = append(errs, "at least one difficulty band is required")
	}
	hasZeroBand := false
	for i, b := range cfg.Bands {
		if b.FromWave == 0 {
			hasZeroBand = true
		}
		if b.HealthMult <= 0 || b.SpeedMult <= 0 || b.RewardMult <= 0 {
			errs = append(errs, fmt.Sprintf("bands[%d] multipliers must be > 0", i))
		}
	}
	if len(cfg.Bands) > 0 && !hasZeroBand {
		errs = append(errs, "a difficulty band with from_wave 0 is required")
	}

	if len(cfg.Words.Short)+len(cfg.Words.Medium)+len(cfg.Words.Long) == 0 {
		errs = append(errs, "words must contain at least one word")
	}
	for _, bucket := range [][]string{cfg.Words.Short, cfg.Words.Medium, cfg.Words.Long} {
		for _, w := range bucket {
			if !isLowerWord(w) {
				errs = append(errs, fmt.Sprintf("word %q must be non-empty lowercase a-z", w))
			}
		}
	}

	if cfg.PracticeTier != "" && !seenTier[cfg.PracticeTier] {
		errs = append(errs, fmt.Sprintf("practice_tier %q is not a tier", cfg.PracticeTier))
	}
	if cfg.PracticeBossTier != "" && !seenTier[cfg.PracticeBossTier] {
		errs = append(errs, fmt.Sprintf("practice_boss_tier %q is not a tier", cfg.PracticeBossTier))
	}

	if len(errs) > 0 {
		return fmt.Errorf("game config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func isLowerWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
