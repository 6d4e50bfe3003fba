// internal/system/wave.go
package system

import (
	"fmt"
	"log"
	"math"
	"sort"

	"go-typing-defense/internal/balance"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/utils"
)

// scheduledSpawn is one enemy of a spawn entry, expanded by cadence.
type scheduledSpawn struct {
	at     float64
	lane   int
	tier   string
	shield int
	taunt  string
	health int // overrides tier health when > 0 (practice)
}

type scheduledEvac struct {
	at       float64
	lane     int
	duration float64
}

// WaveSystem is the wave director: countdown, spawn timeline, difficulty
// bands, elite affixes, word selection, boss and evacuation hand-off, wave
// completion. It owns the match's only random generator.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	cfg             *defs.GameConfig
	rng             *utils.PRNGService
	economy         *EconomySystem
	boss            *BossSystem
	evacuation      *EvacuationSystem

	spawns    []scheduledSpawn
	spawnNext int
	evacs     []scheduledEvac
	evacNext  int
	current   defs.WaveConfig
	transport *defs.EnemyTier
}

func NewWaveSystem(world *entity.World, eventDispatcher *event.Dispatcher, cfg *defs.GameConfig, rng *utils.PRNGService,
	economy *EconomySystem, boss *BossSystem, evacuation *EvacuationSystem) *WaveSystem {
	ws := &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
		rng:             rng,
		economy:         economy,
		boss:            boss,
		evacuation:      evacuation,
	}
	for i := range cfg.Tiers {
		if cfg.Tiers[i].Transport {
			ws.transport = &cfg.Tiers[i]
			break
		}
	}
	return ws
}

// TotalWaves is the campaign length; practice is endless and reports 0.
func (s *WaveSystem) TotalWaves() int {
	if s.world.State.Mode == defs.ModePractice {
		return 0
	}
	return len(s.cfg.Waves)
}

// WaveConfig returns the configuration of a wave index in the current mode.
func (s *WaveSystem) WaveConfig(index int) defs.WaveConfig {
	if s.world.State.Mode == defs.ModePractice {
		return s.practiceWave(index)
	}
	if index < 0 || index >= len(s.cfg.Waves) {
		panic(fmt.Sprintf("wave: index %d out of range", index))
	}
	return s.cfg.Waves[index]
}

// practiceWave builds an endless-mode wave from the balance curves.
func (s *WaveSystem) practiceWave(index int) defs.WaveConfig {
	threat := config.PracticeBaseThreat + index
	count := balance.WaveSize(index, threat)
	lanes := s.cfg.Lanes
	if lanes < 1 {
		lanes = 1
	}
	w := defs.WaveConfig{Duration: float64(count)*2 + 10}
	for i := 0; i < count; i++ {
		w.Spawns = append(w.Spawns, defs.SpawnEntry{At: float64(i) * 2, Lane: i % lanes, Tier: s.cfg.PracticeTier, Count: 1})
	}
	if (index+1)%5 == 0 && s.cfg.PracticeBossTier != "" {
		w.Spawns = append(w.Spawns, defs.SpawnEntry{At: 1, Lane: lanes / 2, Tier: s.cfg.PracticeBossTier, Count: 1})
	}
	return w
}

// ActiveBand returns the band with the highest FromWave not above the index.
func (s *WaveSystem) ActiveBand(index int) defs.DifficultyBand {
	best := -1
	for i, b := range s.cfg.Bands {
		if b.FromWave <= index && (best < 0 || b.FromWave > s.cfg.Bands[best].FromWave) {
			best = i
		}
	}
	if best < 0 {
		return defs.DifficultyBand{WordWeights: defs.WordWeights{Medium: 1}, HealthMult: 1, SpeedMult: 1, RewardMult: 1}
	}
	return s.cfg.Bands[best]
}

// StartCountdown makes index the current wave and starts its preparation timer.
func (s *WaveSystem) StartCountdown(index int) {
	st := s.world.State
	w := &st.Wave
	s.current = s.WaveConfig(index)

	w.Index = index
	w.Total = s.TotalWaves()
	w.InCountdown = true
	w.CountdownRemaining = s.current.Countdown
	if w.CountdownRemaining <= 0 {
		w.CountdownRemaining = config.CountdownSeconds
	}
	w.TimeInWave = 0
	w.Duration = s.current.Duration
	w.Spawned = 0
	w.Expected = s.current.EnemyCount()
	s.schedule(index)

	s.eventDispatcher.Publish(st.Time, event.WavePayload{
		Kind: event.WaveCountdownStarted, WaveIndex: index, Total: w.Total, Cycle: w.Cycle,
		Countdown: w.CountdownRemaining, Expected: w.Expected, Duration: w.Duration,
	})
	s.economy.RefreshSlotUnlocks()
}

func (s *WaveSystem) schedule(index int) {
	s.spawns = s.spawns[:0]
	s.spawnNext = 0
	practice := s.world.State.Mode == defs.ModePractice
	threat := config.PracticeBaseThreat + index
	for _, e := range s.current.Spawns {
		health := 0
		if practice {
			if tier, ok := s.cfg.Tier(e.Tier); ok && tier.Boss != nil {
				health = balance.BossHP(index, threat, 0)
			} else {
				health = balance.EnemyHP(index, threat)
			}
		}
		for i := 0; i < e.Count; i++ {
			s.spawns = append(s.spawns, scheduledSpawn{
				at: e.At + float64(i)*e.Cadence, lane: e.Lane, tier: e.Tier,
				shield: e.Shield, taunt: e.Taunt, health: health,
			})
		}
	}
	// Одинаковое время: порядок конфига сохраняется.
	sort.SliceStable(s.spawns, func(i, j int) bool { return s.spawns[i].at < s.spawns[j].at })

	s.evacs = s.evacs[:0]
	s.evacNext = 0
	if !s.cfg.Features.Evacuations || len(s.current.Evacuations) == 0 {
		return
	}
	if s.transport == nil {
		s.logSkipped("evacuations without a transport tier")
		return
	}
	for _, e := range s.current.Evacuations {
		s.evacs = append(s.evacs, scheduledEvac{at: e.At, lane: e.Lane, duration: e.Duration})
	}
	sort.SliceStable(s.evacs, func(i, j int) bool { return s.evacs[i].at < s.evacs[j].at })
}

func (s *WaveSystem) Update(deltaTime float64) {
	st := s.world.State
	w := &st.Wave
	if w.InCountdown {
		w.CountdownRemaining -= deltaTime
		if w.CountdownRemaining > 0 {
			return
		}
		deltaTime = -w.CountdownRemaining
		w.CountdownRemaining = 0
		w.InCountdown = false
		w.TimeInWave = 0
		s.eventDispatcher.Publish(st.Time, event.WavePayload{
			Kind: event.WaveStarted, WaveIndex: w.Index, Total: w.Total, Cycle: w.Cycle,
			Expected: w.Expected, Duration: w.Duration,
		})
	}

	w.TimeInWave += deltaTime
	for s.spawnNext < len(s.spawns) && s.spawns[s.spawnNext].at <= w.TimeInWave {
		s.spawn(s.spawns[s.spawnNext])
		s.spawnNext++
		w.Spawned++
	}
	for s.evacNext < len(s.evacs) && s.evacs[s.evacNext].at <= w.TimeInWave {
		s.spawnTransport(s.evacs[s.evacNext])
		s.evacNext++
	}

	if w.TimeInWave >= w.Duration && s.spawnNext == len(s.spawns) && s.evacNext == len(s.evacs) &&
		s.world.AliveInWave(w.Index) == 0 {
		s.complete()
	}
}

func (s *WaveSystem) complete() {
	st := s.world.State
	w := &st.Wave
	index := w.Index

	bonus := s.current.Bonus
	if bonus.Gold != 0 || bonus.Wood != 0 || bonus.Stone != 0 {
		s.eventDispatcher.Publish(st.Time, event.WaveBonusPayload{
			WaveIndex: index, Reason: "wave_clear", Gold: bonus.Gold, Wood: bonus.Wood, Stone: bonus.Stone,
		})
		s.economy.Grant(defs.Cost{
			defs.ResourceGold:  bonus.Gold,
			defs.ResourceWood:  bonus.Wood,
			defs.ResourceStone: bonus.Stone,
		}, "wave_bonus")
	}
	s.eventDispatcher.Publish(st.Time, event.WavePayload{
		Kind: event.WaveCompleted, WaveIndex: index, Total: w.Total, Cycle: w.Cycle,
		Expected: w.Expected, Duration: w.TimeInWave,
	})
	if st.Status != component.StatusRunning {
		return
	}

	next := index + 1
	if w.Total > 0 && next >= w.Total {
		if !s.cfg.Features.LoopWaves {
			EndMatch(s.world, s.eventDispatcher, component.StatusVictory)
			return
		}
		next = 0
		w.Cycle++
	}
	s.StartCountdown(next)
}

func (s *WaveSystem) spawn(sp scheduledSpawn) {
	st := s.world.State
	tier, ok := s.cfg.Tier(sp.tier)
	if !ok {
		panic(fmt.Sprintf("wave: unknown tier %q", sp.tier))
	}
	band := s.ActiveBand(st.Wave.Index)
	day := s.economy.Day()

	health := sp.health
	if health <= 0 {
		health = int(math.Floor(float64(tier.Health) * band.HealthMult))
	}
	if health < 1 {
		health = 1
	}
	speed := tier.Speed * band.SpeedMult
	enemy := &component.Enemy{
		ID:        s.world.NewEntity(),
		TierID:    tier.ID,
		MaxHealth: health,
		Health:    health,
		Speed:     speed,
		BaseSpeed: speed,
		Lane:      sp.lane,
		WaveIndex: st.Wave.Index,
		SpawnedAt: st.Time,
		Gold:      int(math.Floor(float64(balance.GoldReward(tier.Gold, day)) * band.RewardMult)),
		Damage:    tier.Damage,
		Boss:      tier.Boss != nil,
		Taunt:     sp.taunt,
	}

	shield := tier.Shield + sp.shield
	if s.cfg.Features.EliteAffixes && len(tier.EliteAffixes) > 0 {
		if affix, ok := s.rollAffix(tier, shield > 0); ok {
			enemy.Affixes = append(enemy.Affixes, affix)
			shield += affix.BonusShield
		}
	}
	if shield > 0 {
		enemy.Shield = &component.Shield{Current: shield, Max: shield}
	}
	enemy.Word = s.pickWord(tier, st.Wave.Index, enemy)
	s.world.AddEnemy(enemy)

	affixIDs := make([]string, 0, len(enemy.Affixes))
	for _, a := range enemy.Affixes {
		affixIDs = append(affixIDs, a.ID)
	}
	s.eventDispatcher.Publish(st.Time, event.EnemySpawnedPayload{
		EnemyID:   enemy.ID,
		Tier:      tier.ID,
		Lane:      enemy.Lane,
		Word:      enemy.Word,
		Health:    enemy.Health,
		Shield:    enemy.ShieldValue(),
		Affixes:   affixIDs,
		WaveIndex: enemy.WaveIndex,
		Boss:      enemy.Boss,
		Taunt:     enemy.Taunt,
	})
	if tier.Boss != nil {
		s.boss.Activate(enemy, *tier.Boss)
	}
}

// rollAffix draws the elite chance, then one affix from the tier's list. An
// enemy that already has a shield (scripted or innate to the tier) never gets
// "shielded". The chance draw always happens.
func (s *WaveSystem) rollAffix(tier *defs.EnemyTier, hasShield bool) (component.EliteAffixInstance, bool) {
	if !s.rng.Chance(balance.EliteChance(s.economy.Day())) {
		return component.EliteAffixInstance{}, false
	}
	candidates := make([]string, 0, len(tier.EliteAffixes))
	for _, id := range tier.EliteAffixes {
		if hasShield && id == defs.AffixShielded {
			continue
		}
		if _, ok := defs.AffixCatalog[id]; ok {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return component.EliteAffixInstance{}, false
	}
	def := defs.AffixCatalog[candidates[s.rng.Intn(len(candidates))]]
	return component.EliteAffixInstance{
		ID:               def.ID,
		Label:            def.Label,
		LaneFireRateMult: def.LaneFireRateMult,
		DamageTakenMult:  def.DamageTakenMult,
		BonusShield:      def.BonusShield,
	}, true
}

func (s *WaveSystem) spawnTransport(ev scheduledEvac) {
	st := s.world.State
	enemy := &component.Enemy{
		ID:        s.world.NewEntity(),
		TierID:    s.transport.ID,
		MaxHealth: max(1, s.transport.Health),
		Health:    max(1, s.transport.Health),
		Lane:      ev.lane,
		WaveIndex: st.Wave.Index,
		SpawnedAt: st.Time,
		Transport: true,
	}
	enemy.Word = s.pickWord(s.transport, st.Wave.Index, enemy)
	s.world.AddEnemy(enemy)
	s.eventDispatcher.Publish(st.Time, event.EnemySpawnedPayload{
		EnemyID:   enemy.ID,
		Tier:      enemy.TierID,
		Lane:      enemy.Lane,
		Word:      enemy.Word,
		Health:    enemy.Health,
		WaveIndex: enemy.WaveIndex,
		Transport: true,
	})
	s.evacuation.Start(enemy, ev.duration)
}

// PickWord draws a new word for an enemy that survived its previous one.
func (s *WaveSystem) PickWord(enemy *component.Enemy) string {
	tier, ok := s.cfg.Tier(enemy.TierID)
	if !ok {
		panic(fmt.Sprintf("wave: unknown tier %q", enemy.TierID))
	}
	return s.pickWord(tier, s.world.State.Wave.Index, enemy)
}

// pickWord chooses a length bucket (tier pin, or band weights skewed by the
// typing bias), then prefers a word whose first letter is not already taken
// by another alive enemy.
func (s *WaveSystem) pickWord(tier *defs.EnemyTier, index int, self *component.Enemy) string {
	bucket := tier.WordLength
	if bucket == "" {
		ww := s.ActiveBand(index).WordWeights
		bias := s.world.State.Typing.DynamicDifficultyBias
		weights := []float64{ww.Short * (1 - bias), ww.Medium, ww.Long * (1 + bias)}
		bucket = []defs.WordLength{defs.WordShort, defs.WordMedium, defs.WordLong}[s.rng.ChooseWeighted(weights)]
	}
	words := s.cfg.Words.Bucket(bucket)
	if len(words) == 0 {
		for _, l := range []defs.WordLength{defs.WordMedium, defs.WordShort, defs.WordLong} {
			if words = s.cfg.Words.Bucket(l); len(words) > 0 {
				break
			}
		}
	}
	if len(words) == 0 {
		panic("wave: word bank is empty")
	}

	taken := make(map[byte]bool)
	for _, e := range s.world.State.Enemies {
		if e != self && e.Alive() && e.Word != "" {
			taken[e.Word[0]] = true
		}
	}
	word := ""
	for i := 0; i < config.WordPickAttempts; i++ {
		word = words[s.rng.Intn(len(words))]
		if !taken[word[0]] {
			break
		}
	}
	return word
}

func (s *WaveSystem) logSkipped(what string) {
	log.Printf("WaveSystem: wave %d: %s skipped", s.world.State.Wave.Index+1, what)
}
