package system

import (
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// BossSystem drives the boss phase machine: intro, phase one, phase two, finale.
type BossSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	def             defs.BossDef
}

func NewBossSystem(world *entity.World, eventDispatcher *event.Dispatcher) *BossSystem {
	bs := &BossSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.SubscribeMany(bs, event.EnemyDefeated, event.EnemyEscaped)
	return bs
}

// Activate starts the machine for a freshly spawned boss.
func (s *BossSystem) Activate(boss *component.Enemy, def defs.BossDef) {
	st := s.world.State
	s.def = def.WithDefaults()
	st.Boss = component.BossRuntimeState{
		Active:             true,
		EnemyID:            boss.ID,
		TierID:             boss.TierID,
		Phase:              component.BossIntro,
		SegmentTotal:       s.def.ShieldSegments,
		RotationTimer:      s.def.RotationInterval,
		VulnerabilityTimer: s.def.VulnerabilityInterval,
		VulnerabilityMult:  s.def.VulnerabilityMult,
		ShockwaveTimer:     s.def.ShockwaveInterval,
	}
	s.publish(event.BossIntro, boss, 0, s.def.IntroDuration)
}

func (s *BossSystem) OnEvent(e event.Event) {
	st := s.world.State
	if !st.Boss.Active {
		return
	}
	switch p := e.Payload.(type) {
	case event.EnemyDefeatedPayload:
		if p.EnemyID == st.Boss.EnemyID {
			s.finish(event.BossDefeated, p.Lane)
		}
	case event.EnemyEscapedPayload:
		if p.EnemyID == st.Boss.EnemyID {
			s.finish(event.BossDespawned, p.Lane)
		}
	}
}

func (s *BossSystem) finish(kind event.EventType, lane int) {
	st := s.world.State
	s.eventDispatcher.Publish(st.Time, event.BossPayload{Kind: kind, EnemyID: st.Boss.EnemyID, Lane: lane, Phase: string(st.Boss.Phase)})
	st.Boss = component.BossRuntimeState{}
}

func (s *BossSystem) Update(deltaTime float64) {
	st := s.world.State
	b := &st.Boss
	if !b.Active {
		return
	}
	boss, ok := s.world.Enemy(b.EnemyID)
	if !ok || !boss.Alive() {
		return
	}
	b.Elapsed += deltaTime
	s.advancePhase(boss)
	if b.Phase == component.BossIntro {
		return
	}

	// Ротация сегментов щита.
	b.RotationTimer -= deltaTime
	if b.RotationTimer <= 0 {
		b.RotationTimer += s.def.RotationInterval
		if b.SegmentTotal > 0 {
			b.SegmentIndex = (b.SegmentIndex + 1) % b.SegmentTotal
		}
		if boss.Shield != nil {
			boss.Shield.Current = boss.Shield.Max
		}
		s.publish(event.BossShieldRotated, boss, 0, 0)
	}

	// Окно уязвимости.
	if b.Vulnerable {
		b.VulnerabilityRemaining -= deltaTime
		if b.VulnerabilityRemaining <= 0 {
			b.Vulnerable = false
			b.VulnerabilityRemaining = 0
			s.publish(event.BossVulnerableEnd, boss, 0, 0)
		}
	} else {
		b.VulnerabilityTimer -= deltaTime
		if b.VulnerabilityTimer <= 0 {
			b.VulnerabilityTimer += s.def.VulnerabilityInterval
			b.Vulnerable = true
			b.VulnerabilityRemaining = s.def.VulnerabilityDuration
			s.publish(event.BossVulnerableStart, boss, b.VulnerabilityMult, s.def.VulnerabilityDuration)
		}
	}

	// Ударная волна: турели линии стреляют медленнее.
	b.ShockwaveTimer -= deltaTime
	if b.ShockwaveTimer <= 0 {
		b.ShockwaveTimer += s.def.ShockwaveInterval
		st.LaneEffects = append(st.LaneEffects, component.LaneEffect{
			Lane:         boss.Lane,
			FireRateMult: s.def.ShockwaveFireRateMult,
			Remaining:    s.def.ShockwaveDuration,
		})
		s.publish(event.BossShockwave, boss, s.def.ShockwaveFireRateMult, s.def.ShockwaveDuration)
	}
}

func (s *BossSystem) advancePhase(boss *component.Enemy) {
	b := &s.world.State.Boss
	frac := 1.0
	if boss.MaxHealth > 0 {
		frac = float64(boss.Health) / float64(boss.MaxHealth)
	}
	next := b.Phase
	switch b.Phase {
	case component.BossIntro:
		if b.Elapsed >= s.def.IntroDuration {
			next = component.BossPhaseOne
		}
	case component.BossPhaseOne:
		if frac <= s.def.PhaseTwoHealth || b.Elapsed >= s.def.PhaseTwoAfter {
			next = component.BossPhaseTwo
		}
	case component.BossPhaseTwo:
		if frac <= s.def.FinaleHealth || b.Elapsed >= s.def.FinaleAfter {
			next = component.BossFinale
		}
	}
	if next != b.Phase {
		b.Phase = next
		s.publish(event.BossPhaseShift, boss, 0, 0)
	}
}

func (s *BossSystem) publish(kind event.EventType, boss *component.Enemy, mult, duration float64) {
	b := s.world.State.Boss
	s.eventDispatcher.Publish(s.world.State.Time, event.BossPayload{
		Kind:       kind,
		EnemyID:    boss.ID,
		Lane:       boss.Lane,
		Phase:      string(b.Phase),
		Segment:    b.SegmentIndex,
		Multiplier: mult,
		Duration:   duration,
	})
}
