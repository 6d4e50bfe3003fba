package defs

import "go-typing-defense/internal/config"

// DefaultGameConfig builds the built-in campaign. configs/default.yaml mirrors it.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Lanes: config.LaneCount,
		StartingResources: Cost{
			ResourceGold:  config.StartingGold,
			ResourceWood:  20,
			ResourceStone: 20,
			ResourceFood:  10,
		},
		Tiers: []EnemyTier{
			{ID: "grunt", Name: "Grunt", Health: 6, Speed: 0.05, Damage: 8, Gold: 6, WordLength: WordShort, EliteAffixes: []string{AffixShielded, AffixArmored}},
			{ID: "runner", Name: "Runner", Health: 4, Speed: 0.09, Damage: 6, Gold: 5, WordLength: WordShort, EliteAffixes: []string{AffixJammer}},
			{ID: "brute", Name: "Brute", Health: 20, Speed: 0.035, Damage: 15, Gold: 12, WordLength: WordLong, EliteAffixes: []string{AffixShielded, AffixArmored, AffixJammer}},
			{ID: "shieldbearer", Name: "Shieldbearer", Health: 12, Speed: 0.04, Damage: 10, Gold: 10, Shield: 6, WordLength: WordMedium, EliteAffixes: []string{AffixShielded, AffixArmored}},
			{ID: "warlord", Name: "Warlord", Health: 120, Speed: 0.015, Damage: 50, Gold: 80, Shield: 20, WordLength: WordLong, Boss: &BossDef{}},
			{ID: "transport", Name: "Transport", Health: 1, Speed: 0, Gold: 0, WordLength: WordMedium, Transport: true},
		},
		Turrets: []TurretArchetype{
			{
				ID: "arrow", Name: "Arrow Tower", Kind: "arrow", Attack: AttackSingle,
				BaseCost: Cost{ResourceGold: 100}, BaseDamage: 3, FireRate: 1.0, Range: 40, ProjectileSpeed: 1.5, MaxLevel: 3,
				Levels: []TurretLevel{
					{Cost: Cost{ResourceGold: 100}, Damage: 3},
					{Cost: Cost{ResourceGold: 180}, Damage: 4},
					{Cost: Cost{ResourceGold: 260}, Damage: 6, FireRate: 1.25},
				},
			},
			{
				ID: "arcane", Name: "Arcane Spire", Kind: "arcane", Attack: AttackMulti, Targets: 2,
				BaseCost: Cost{ResourceGold: 140, ResourceStone: 10}, BaseDamage: 2, FireRate: 0.8, Range: 45, ProjectileSpeed: 1.2, MaxLevel: 4,
				ShieldBonus: 1.5,
			},
			{
				ID: "flame", Name: "Flame Brazier", Kind: "flame", Attack: AttackAoe, Radius: 12,
				BaseCost: Cost{ResourceGold: 160, ResourceWood: 15}, BaseDamage: 2, FireRate: 0.6, Range: 30, ProjectileSpeed: 1.0, MaxLevel: 3,
				Effect: &EffectDef{Kind: EffectBurn, Duration: 3, Magnitude: 1},
			},
			{
				ID: "frost", Name: "Frost Obelisk", Kind: "frost", Attack: AttackSingle,
				BaseCost: Cost{ResourceGold: 120}, BaseDamage: 1, FireRate: 0.9, Range: 35, ProjectileSpeed: 1.3, MaxLevel: 3,
				Effect: &EffectDef{Kind: EffectSlow, Duration: 2, Magnitude: 0.5},
			},
			{
				ID: "tesla", Name: "Tesla Coil", Kind: "tesla", Attack: AttackChain, ChainHops: 3, ChainRange: 15,
				BaseCost: Cost{ResourceGold: 200, ResourceStone: 20}, BaseDamage: 4, FireRate: 0.5, Range: 35, ProjectileSpeed: 2.0, MaxLevel: 3,
			},
		},
		Slots: []SlotDef{
			{ID: 1, Lane: 0, X: 10, Y: 0, UnlockWave: 0},
			{ID: 2, Lane: 1, X: 10, Y: 10, UnlockWave: 0},
			{ID: 3, Lane: 2, X: 10, Y: 20, UnlockWave: 0},
			{ID: 4, Lane: 1, X: 30, Y: 10, UnlockWave: 2},
			{ID: 5, Lane: 0, X: 30, Y: 0, UnlockWave: 4},
			{ID: 6, Lane: 2, X: 30, Y: 20, UnlockWave: 4},
		},
		Waves: []WaveConfig{
			{
				Duration: 20,
				Spawns: []SpawnEntry{
					{At: 0, Lane: 1, Tier: "grunt", Count: 3, Cadence: 3, Taunt: "for the horde"},
					{At: 6, Lane: 0, Tier: "runner", Count: 2, Cadence: 2},
				},
				Bonus: WaveBonus{Gold: 25, Wood: 5},
			},
			{
				Duration: 25,
				Spawns: []SpawnEntry{
					{At: 0, Lane: 0, Tier: "grunt", Count: 4, Cadence: 2.5},
					{At: 4, Lane: 2, Tier: "runner", Count: 3, Cadence: 1.5},
					{At: 10, Lane: 1, Tier: "shieldbearer", Count: 1, Cadence: 0},
				},
				Evacuations: []EvacuationEntry{{At: 8, Lane: 2, Duration: 10}},
				Bonus:       WaveBonus{Gold: 30, Wood: 5, Stone: 5},
			},
			{
				Duration: 30,
				Spawns: []SpawnEntry{
					{At: 0, Lane: 1, Tier: "brute", Count: 1, Cadence: 0, Taunt: "i will crush your walls"},
					{At: 2, Lane: 0, Tier: "grunt", Count: 5, Cadence: 2},
					{At: 5, Lane: 2, Tier: "shieldbearer", Count: 2, Cadence: 4, Shield: 4},
				},
				Bonus: WaveBonus{Gold: 40, Wood: 10, Stone: 5},
			},
			{
				Duration: 30,
				Spawns: []SpawnEntry{
					{At: 0, Lane: 0, Tier: "runner", Count: 6, Cadence: 1},
					{At: 3, Lane: 1, Tier: "brute", Count: 2, Cadence: 6},
					{At: 6, Lane: 2, Tier: "grunt", Count: 6, Cadence: 1.5},
				},
				Evacuations: []EvacuationEntry{{At: 12, Lane: 0, Duration: 8}},
				Bonus:       WaveBonus{Gold: 50, Wood: 10, Stone: 10},
			},
			{
				Duration: 35,
				Spawns: []SpawnEntry{
					{At: 0, Lane: 1, Tier: "shieldbearer", Count: 3, Cadence: 3},
					{At: 2, Lane: 0, Tier: "brute", Count: 2, Cadence: 5},
					{At: 4, Lane: 2, Tier: "runner", Count: 8, Cadence: 1},
				},
				Bonus: WaveBonus{Gold: 60, Wood: 15, Stone: 10},
			},
			{
				Countdown: 8,
				Duration:  60,
				Spawns: []SpawnEntry{
					{At: 0, Lane: 1, Tier: "warlord", Count: 1, Cadence: 0, Taunt: "your words will fail you"},
					{At: 5, Lane: 0, Tier: "grunt", Count: 4, Cadence: 4},
					{At: 5, Lane: 2, Tier: "grunt", Count: 4, Cadence: 4},
				},
				Bonus: WaveBonus{Gold: 100, Wood: 20, Stone: 20},
			},
		},
		Bands: []DifficultyBand{
			{FromWave: 0, WordWeights: WordWeights{Short: 0.6, Medium: 0.3, Long: 0.1}, HealthMult: 1.0, SpeedMult: 1.0, RewardMult: 1.0},
			{FromWave: 2, WordWeights: WordWeights{Short: 0.4, Medium: 0.4, Long: 0.2}, HealthMult: 1.2, SpeedMult: 1.1, RewardMult: 1.1},
			{FromWave: 4, WordWeights: WordWeights{Short: 0.2, Medium: 0.4, Long: 0.4}, HealthMult: 1.5, SpeedMult: 1.2, RewardMult: 1.25},
		},
		Castle: []CastleLevel{
			{Level: 1, MaxHealth: 100, Armor: 0, RegenPerSecond: 0, UpgradeCost: 150, GoldBonusPercent: 0, SlotUnlocks: 0},
			{Level: 2, MaxHealth: 130, Armor: 1, RegenPerSecond: 0.5, UpgradeCost: 250, GoldBonusPercent: 5, SlotUnlocks: 1},
			{Level: 3, MaxHealth: 170, Armor: 2, RegenPerSecond: 1.0, UpgradeCost: 400, GoldBonusPercent: 10, SlotUnlocks: 2},
			{Level: 4, MaxHealth: 220, Armor: 3, RegenPerSecond: 1.5, UpgradeCost: 0, GoldBonusPercent: 15, SlotUnlocks: 3},
		},
		Repair: RepairDef{Amount: config.RepairAmount, Cost: config.RepairCost, Cooldown: config.RepairCooldown},
		Words: WordBank{
			Short:  []string{"axe", "bow", "cut", "dig", "elm", "fog", "gem", "hut", "ink", "jab", "kin", "log", "mud", "net", "oak", "pit", "rye", "sap", "tar", "urn", "vat", "wax", "yew", "zap"},
			Medium: []string{"arrow", "blade", "crown", "dwarf", "ember", "forge", "guard", "haven", "ivory", "joust", "knave", "lance", "moat", "noble", "orchid", "pike", "quill", "raven", "siege", "tower", "umber", "valor", "wyrm", "yeoman", "zealot"},
			Long:   []string{"ambassador", "battlement", "catapult", "drawbridge", "encampment", "fortitude", "garrison", "harbinger", "insurgent", "juggernaut", "knighthood", "longbowman", "marauder", "nightwatch", "outrider", "portcullis", "quartermaster", "rampart", "sentinel", "trebuchet", "usurper", "vanguard", "warbanner"},
		},
		Features:         Features{TurretDowngrade: true, LoopWaves: false, EliteAffixes: true, Evacuations: true},
		PracticeTier:     "grunt",
		PracticeBossTier: "warlord",
	}
}
