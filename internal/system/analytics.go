package system

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// AnalyticsSystem folds the event stream into per-wave and per-session
// counters and publishes a WaveSummary when a wave completes.
type AnalyticsSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	waves           []event.WaveSummary
}

func NewAnalyticsSystem(world *entity.World, eventDispatcher *event.Dispatcher) *AnalyticsSystem {
	as := &AnalyticsSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.SubscribeMany(as,
		event.WaveCountdownStarted, event.WaveStarted, event.WaveCompleted, event.WaveBonus,
		event.EnemyDefeated, event.EnemyEscaped, event.EnemyDamaged, event.ShieldBroken,
		event.PerfectWord, event.WordCompleted, event.TypingProgress,
		event.CastleRepaired, event.GoldChanged, event.PassiveUnlocked,
		event.EvacuationSucceeded, event.EvacuationFailed,
		event.BossIntro, event.BossPhaseShift, event.BossShieldRotated, event.BossVulnerableStart,
		event.BossVulnerableEnd, event.BossShockwave, event.BossDefeated, event.BossDespawned,
	)
	return as
}

func (s *AnalyticsSystem) OnEvent(e event.Event) {
	a := &s.world.State.Analytics
	w := &a.Wave
	switch p := e.Payload.(type) {
	case event.WavePayload:
		switch p.Kind {
		case event.WaveCountdownStarted:
			*w = component.WaveStats{WaveIndex: p.WaveIndex, StartedAt: e.Time, SlotDamage: map[int]int{}}
		case event.WaveStarted:
			w.StartedAt = e.Time
		case event.WaveCompleted:
			s.completeWave(e.Time)
		}
	case event.WaveBonusPayload:
		w.GoldBonus += p.Gold
	case event.EnemyDefeatedPayload:
		w.EnemiesDefeated++
	case event.EnemyEscapedPayload:
		w.Breaches++
	case event.EnemyDamagedPayload:
		dealt := p.Amount + p.Absorbed
		if p.Source == event.SourceTurret {
			w.TurretDamage += dealt
			if w.SlotDamage == nil {
				w.SlotDamage = map[int]int{}
			}
			w.SlotDamage[p.SlotID] += dealt
		} else {
			w.TypingDamage += dealt
		}
	case event.ShieldBrokenPayload:
		w.ShieldBreaks++
	case event.WordCompletedPayload:
		if p.Kind == event.PerfectWord {
			w.PerfectWords++
		}
		if p.Combo > w.MaxCombo {
			w.MaxCombo = p.Combo
		}
	case event.TypingPayload:
		if p.ReactionTime >= 0 {
			w.ReactionTimeSum += p.ReactionTime
			w.ReactionSamples++
		}
	case event.CastleRepairedPayload:
		w.RepairsUsed++
		w.RepairHealth += p.Healed
		w.RepairGold += p.Cost
	case event.GoldChangedPayload:
		if p.Delta > 0 {
			w.GoldEarned += p.Delta
		}
	case event.PassiveUnlockedPayload:
		w.PassivesUnlocked = append(w.PassivesUnlocked, p.ID)
	case event.EvacuationPayload:
		switch p.Kind {
		case event.EvacuationSucceeded:
			w.EvacuationsOK++
		case event.EvacuationFailed:
			w.EvacuationsFailed++
		}
	case event.BossPayload:
		w.BossEvents = append(w.BossEvents, p.Kind.String())
	}
}

func (s *AnalyticsSystem) completeWave(now float64) {
	st := s.world.State
	w := &st.Analytics.Wave
	sess := &st.Analytics.Session

	summary := s.buildSummary(now)
	s.waves = append(s.waves, summary)

	sess.WavesCompleted++
	sess.EnemiesDefeated += w.EnemiesDefeated
	sess.Breaches += w.Breaches
	sess.PerfectWords += w.PerfectWords
	sess.TurretDamage += w.TurretDamage
	sess.TypingDamage += w.TypingDamage
	sess.ShieldBreaks += w.ShieldBreaks
	sess.RepairsUsed += w.RepairsUsed
	sess.RepairHealth += w.RepairHealth
	sess.RepairGold += w.RepairGold
	sess.EvacuationsOK += w.EvacuationsOK
	sess.EvacuationsFailed += w.EvacuationsFailed
	sess.GoldEarned += w.GoldEarned
	sess.GoldBonus += w.GoldBonus
	sess.ReactionTimeSum += w.ReactionTimeSum
	sess.ReactionSamples += w.ReactionSamples
	if w.Breaches == 0 {
		sess.FlawlessWaves++
	}

	s.eventDispatcher.Publish(now, summary)
}

// buildSummary snapshots the current wave. Maps and slices are copied so the
// summary never changes after publication.
func (s *AnalyticsSystem) buildSummary(now float64) event.WaveSummary {
	st := s.world.State
	w := st.Analytics.Wave
	duration := now - w.StartedAt

	slots := make(map[int]int, len(w.SlotDamage))
	for k, v := range w.SlotDamage {
		slots[k] = v
	}
	sum := event.WaveSummary{
		MatchID:           st.MatchID,
		WaveIndex:         w.WaveIndex,
		Duration:          duration,
		EnemiesDefeated:   w.EnemiesDefeated,
		Breaches:          w.Breaches,
		PerfectWords:      w.PerfectWords,
		TurretDamage:      w.TurretDamage,
		TypingDamage:      w.TypingDamage,
		SlotDamage:        slots,
		ShieldBreaks:      w.ShieldBreaks,
		RepairsUsed:       w.RepairsUsed,
		RepairHealth:      w.RepairHealth,
		RepairGold:        w.RepairGold,
		ReactionSamples:   w.ReactionSamples,
		GoldEarned:        w.GoldEarned,
		GoldBonus:         w.GoldBonus,
		EvacuationsOK:     w.EvacuationsOK,
		EvacuationsFailed: w.EvacuationsFailed,
		MaxCombo:          w.MaxCombo,
		BossEvents:        append([]string(nil), w.BossEvents...),
		PassivesUnlocked:  append([]string(nil), w.PassivesUnlocked...),
	}
	if w.ReactionSamples > 0 {
		sum.AverageReactionTime = w.ReactionTimeSum / float64(w.ReactionSamples)
	}
	if duration > 0 {
		sum.TurretDPS = float64(w.TurretDamage) / duration
		sum.TypingDPS = float64(w.TypingDamage) / duration
		sum.TotalDPS = sum.TurretDPS + sum.TypingDPS
	}
	return sum
}

// Summaries returns the wave summaries published so far.
func (s *AnalyticsSystem) Summaries() []event.WaveSummary {
	return append([]event.WaveSummary(nil), s.waves...)
}

// SessionSummary returns a copy of the session totals.
func (s *AnalyticsSystem) SessionSummary() event.SessionSummary {
	st := s.world.State
	sess := st.Analytics.Session
	out := event.SessionSummary{
		MatchID:           st.MatchID,
		WavesCompleted:    sess.WavesCompleted,
		EnemiesDefeated:   sess.EnemiesDefeated,
		Breaches:          sess.Breaches,
		PerfectWords:      sess.PerfectWords,
		TurretDamage:      sess.TurretDamage,
		TypingDamage:      sess.TypingDamage,
		ShieldBreaks:      sess.ShieldBreaks,
		RepairsUsed:       sess.RepairsUsed,
		RepairHealth:      sess.RepairHealth,
		RepairGold:        sess.RepairGold,
		GoldEarned:        sess.GoldEarned,
		GoldBonus:         sess.GoldBonus,
		EvacuationsOK:     sess.EvacuationsOK,
		EvacuationsFailed: sess.EvacuationsFailed,
		FlawlessWaves:     sess.FlawlessWaves,
		Milestones:        append([]string(nil), st.Milestones...),
		Waves:             s.Summaries(),
	}
	if sess.ReactionSamples > 0 {
		out.AverageReactionTime = sess.ReactionTimeSum / float64(sess.ReactionSamples)
	}
	return out
}
