package system

import (
	"unicode"

	"go-typing-defense/internal/balance"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/types"
)

// TypingStatus is the outcome of one keystroke or control action.
type TypingStatus string

const (
	TypingIgnored   TypingStatus = "ignored"
	TypingProgress  TypingStatus = "progress"
	TypingCompleted TypingStatus = "completed"
	TypingError     TypingStatus = "error"
	TypingBackspace TypingStatus = "backspace"
	TypingPurged    TypingStatus = "purged"
)

// TypingResult reports what a keystroke did.
type TypingResult struct {
	Status  TypingStatus
	EnemyID types.EntityID
	Damage  int
	Perfect bool
	Killed  bool
	Rescued bool
}

// WordPicker hands out a fresh word for an enemy that survived its word.
type WordPicker interface {
	PickWord(enemy *component.Enemy) string
}

// TypingSystem turns keystrokes into target locks, progress and damage.
type TypingSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	damage          *DamageSystem
	economy         *EconomySystem
	evacuation      *EvacuationSystem
	words           WordPicker
}

func NewTypingSystem(world *entity.World, eventDispatcher *event.Dispatcher, damage *DamageSystem,
	economy *EconomySystem, evacuation *EvacuationSystem, words WordPicker) *TypingSystem {
	ts := &TypingSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		damage:          damage,
		economy:         economy,
		evacuation:      evacuation,
		words:           words,
	}
	eventDispatcher.SubscribeMany(ts, event.EnemyDefeated, event.EnemyEscaped, event.EvacuationFailed)
	return ts
}

// OnEvent снимает цель, если она погибла или ушла не от клавиатуры.
func (s *TypingSystem) OnEvent(e event.Event) {
	var id types.EntityID
	switch p := e.Payload.(type) {
	case event.EnemyDefeatedPayload:
		id = p.EnemyID
	case event.EnemyEscapedPayload:
		id = p.EnemyID
	case event.EvacuationPayload:
		id = p.EnemyID
	default:
		return
	}
	ts := &s.world.State.Typing
	if ts.ActiveEnemy == id {
		ts.ActiveEnemy = 0
		ts.Buffer = ""
	}
}

// HandleChar processes one character. Letters are folded to lowercase; anything
// outside a-z is ignored.
func (s *TypingSystem) HandleChar(r rune) TypingResult {
	st := s.world.State
	if st.Status != component.StatusRunning {
		return TypingResult{Status: TypingIgnored}
	}
	c := unicode.ToLower(r)
	if c < 'a' || c > 'z' {
		return TypingResult{Status: TypingIgnored}
	}
	ts := &st.Typing
	now := st.Time

	quickRepeat := ts.LastChar == c && ts.LastCharAt >= 0 && now-ts.LastCharAt <= config.QuickRepeatWindow
	ts.LastChar, ts.LastCharAt = c, now

	var target *component.Enemy
	if ts.ActiveEnemy != 0 {
		target = s.world.MustEnemy(ts.ActiveEnemy)
		if !target.Alive() {
			s.release(target)
			target = nil
		}
	}

	if target != nil {
		if target.Typed < len(target.Word) && rune(target.Word[target.Typed]) == c {
			return s.progress(target, c)
		}
		if quickRepeat {
			return TypingResult{Status: TypingIgnored}
		}
		target.Mistakes++
		s.release(target)
		s.mistake(target.ID, c)
		return TypingResult{Status: TypingError, EnemyID: target.ID}
	}

	target = s.acquire(c)
	if target == nil {
		if quickRepeat {
			return TypingResult{Status: TypingIgnored}
		}
		s.mistake(0, c)
		return TypingResult{Status: TypingError}
	}
	ts.ActiveEnemy = target.ID
	s.eventDispatcher.Publish(now, event.TypingPayload{
		Kind: event.TypingTargetAcquired, EnemyID: target.ID, Char: c, Combo: ts.Combo, ReactionTime: -1,
	})
	return s.progress(target, c)
}

// acquire picks the alive enemy closest to the castle whose word starts with c.
func (s *TypingSystem) acquire(c rune) *component.Enemy {
	var best *component.Enemy
	for _, e := range s.world.State.Enemies {
		if !e.Alive() || e.Word == "" || rune(e.Word[0]) != c {
			continue
		}
		if best == nil || e.Distance > best.Distance {
			best = e
		}
	}
	return best
}

func (s *TypingSystem) progress(target *component.Enemy, c rune) TypingResult {
	st := s.world.State
	ts := &st.Typing
	if ts.FirstInputAt < 0 {
		ts.FirstInputAt = st.Time
	}
	target.Typed++
	ts.Buffer += string(c)
	ts.CorrectChars++
	s.record(true)

	reaction := -1.0
	if !target.Engaged {
		target.Engaged = true
		reaction = st.Time - target.SpawnedAt
	}
	s.eventDispatcher.Publish(st.Time, event.TypingPayload{
		Kind:         event.TypingProgress,
		EnemyID:      target.ID,
		Char:         c,
		Buffer:       ts.Buffer,
		Typed:        target.Typed,
		Combo:        ts.Combo,
		ReactionTime: reaction,
	})

	if target.Typed < len(target.Word) {
		return TypingResult{Status: TypingProgress, EnemyID: target.ID}
	}
	return s.complete(target)
}

func (s *TypingSystem) complete(target *component.Enemy) TypingResult {
	st := s.world.State
	ts := &st.Typing
	res := TypingResult{Status: TypingCompleted, EnemyID: target.ID, Perfect: target.Mistakes == 0}
	word := target.Word

	if target.Transport {
		s.evacuation.Rescue(target)
		res.Rescued = true
	} else {
		base := int(float64(target.MaxHealth) * config.TypingDamageMultiplier)
		res.Damage = balance.TypingDamage(base, s.WPM(), ts.RollingAccuracy, ts.Combo)
		res.Killed = s.damage.ApplyDamage(target, res.Damage, Hit{Source: event.SourceTyping}).Killed
	}

	ts.Combo++
	if ts.Combo > ts.MaxCombo {
		ts.MaxCombo = ts.Combo
	}
	ts.ComboTimer = config.ComboDecaySeconds
	ts.ComboWarning = false
	ts.WordsCompleted++
	ts.ActiveEnemy = 0
	ts.Buffer = ""
	// Счётчики обновляются до публикации: подписчики WordCompleted видят итог слова.
	if res.Perfect {
		ts.PerfectWords++
	}

	s.eventDispatcher.Publish(st.Time, event.WordCompletedPayload{
		Kind: event.WordCompleted, EnemyID: target.ID, Word: word, Damage: res.Damage,
		Combo: ts.Combo, Perfect: res.Perfect, Rescue: res.Rescued,
	})
	if res.Perfect {
		s.eventDispatcher.Publish(st.Time, event.WordCompletedPayload{
			Kind: event.PerfectWord, EnemyID: target.ID, Word: word, Damage: res.Damage,
			Combo: ts.Combo, Perfect: true, Rescue: res.Rescued,
		})
		if ts.PerfectWords%config.PerfectWordBonusThreshold == 0 {
			s.eventDispatcher.Publish(st.Time, event.WaveBonusPayload{
				WaveIndex: st.Wave.Index, Reason: "perfect_streak", Gold: config.PerfectWordBonusGold,
			})
			s.economy.AddGold(config.PerfectWordBonusGold, "perfect_streak")
		}
	}

	// Пережил слово (щит, босс): новое слово, прогресс с нуля.
	if target.Alive() {
		target.Word = s.words.PickWord(target)
		target.Typed = 0
		target.Mistakes = 0
	}
	return res
}

// Backspace removes the last correct character of the active word.
func (s *TypingSystem) Backspace() TypingResult {
	st := s.world.State
	ts := &st.Typing
	if st.Status != component.StatusRunning || ts.ActiveEnemy == 0 {
		return TypingResult{Status: TypingIgnored}
	}
	target := s.world.MustEnemy(ts.ActiveEnemy)
	if target.Typed == 0 || ts.Buffer == "" {
		return TypingResult{Status: TypingIgnored}
	}
	target.Typed--
	ts.Buffer = ts.Buffer[:len(ts.Buffer)-1]
	s.eventDispatcher.Publish(st.Time, event.TypingPayload{
		Kind: event.TypingProgress, EnemyID: target.ID, Buffer: ts.Buffer, Typed: target.Typed, Combo: ts.Combo, ReactionTime: -1,
	})
	return TypingResult{Status: TypingBackspace, EnemyID: target.ID}
}

// Purge drops the buffer and the target. Combo goes down by one only.
func (s *TypingSystem) Purge() TypingResult {
	st := s.world.State
	ts := &st.Typing
	if st.Status != component.StatusRunning || (ts.ActiveEnemy == 0 && ts.Buffer == "") {
		return TypingResult{Status: TypingIgnored}
	}
	id := ts.ActiveEnemy
	if id != 0 {
		s.release(s.world.MustEnemy(id))
	}
	ts.Buffer = ""
	if ts.Combo > 0 {
		prev := ts.Combo
		ts.Combo--
		s.eventDispatcher.Publish(st.Time, event.ComboPayload{Previous: prev, Reason: "purge"})
	}
	return TypingResult{Status: TypingPurged, EnemyID: id}
}

// Update decays the combo.
func (s *TypingSystem) Update(deltaTime float64) {
	st := s.world.State
	ts := &st.Typing
	if ts.Combo == 0 {
		ts.ComboTimer = 0
		ts.ComboWarning = false
		return
	}
	ts.ComboTimer -= deltaTime
	if ts.ComboTimer > 0 {
		ts.ComboWarning = ts.ComboTimer <= config.ComboWarningSeconds
		return
	}
	prev := ts.Combo
	ts.Combo = 0
	ts.ComboTimer = 0
	ts.ComboWarning = false
	s.eventDispatcher.Publish(st.Time, event.ComboPayload{Previous: prev, Reason: "timeout"})
}

// WPM is measured from the first keystroke of the match.
func (s *TypingSystem) WPM() float64 {
	st := s.world.State
	if st.Typing.FirstInputAt < 0 {
		return 0
	}
	return balance.WPM(st.Typing.CorrectChars, st.Time-st.Typing.FirstInputAt)
}

func (s *TypingSystem) release(target *component.Enemy) {
	ts := &s.world.State.Typing
	target.Typed = 0
	if ts.ActiveEnemy == target.ID {
		ts.ActiveEnemy = 0
	}
	ts.Buffer = ""
}

func (s *TypingSystem) mistake(enemyID types.EntityID, c rune) {
	st := s.world.State
	ts := &st.Typing
	ts.Errors++
	s.record(false)
	if ts.FirstInputAt < 0 {
		ts.FirstInputAt = st.Time
	}
	s.eventDispatcher.Publish(st.Time, event.TypingPayload{
		Kind: event.TypingError, EnemyID: enemyID, Char: c, Combo: ts.Combo, ReactionTime: -1,
	})
	if ts.Combo > 0 {
		prev := ts.Combo
		ts.Combo = 0
		ts.ComboTimer = 0
		ts.ComboWarning = false
		s.eventDispatcher.Publish(st.Time, event.ComboPayload{Previous: prev, Reason: "mistake"})
	}
}

// record pushes one input into the rolling accuracy window.
func (s *TypingSystem) record(ok bool) {
	ts := &s.world.State.Typing
	ts.Window = append(ts.Window, ok)
	if over := len(ts.Window) - config.AccuracyWindowSize; over > 0 {
		ts.Window = append(ts.Window[:0], ts.Window[over:]...)
	}
	ts.RollingAccuracy = balance.RollingAccuracy(ts.Window)
	ts.DynamicDifficultyBias = balance.DifficultyBias(ts.RollingAccuracy)
}
