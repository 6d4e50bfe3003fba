// internal/event/types.go
package event

// EventType is the closed set of topics on the bus.
type EventType int

const (
	eventTypeInvalid EventType = iota

	// === Match ===

	// MatchStarted: Trigger: Game.Start | Payload: MatchStartedPayload
	MatchStarted
	// MatchEnded: Trigger: victory or castle destroyed | Payload: MatchEndedPayload
	MatchEnded
	// MilestoneReached: Trigger: balance.CheckMilestones added an id | Payload: MilestonePayload
	MilestoneReached

	// === Enemies ===

	// EnemySpawned: Trigger: WaveSystem spawn | Consumer: renderer, audio | Payload: EnemySpawnedPayload
	EnemySpawned
	// EnemyDamaged: Trigger: ApplyDamage | Consumer: analytics | Payload: EnemyDamagedPayload
	EnemyDamaged
	// EnemyDefeated: Trigger: ApplyDamage at 0 HP | Consumer: economy, analytics | Payload: EnemyDefeatedPayload
	EnemyDefeated
	// EnemyEscaped: Trigger: MovementSystem at distance 1 | Consumer: analytics | Payload: EnemyEscapedPayload
	EnemyEscaped
	// ShieldBroken: Trigger: ApplyDamage emptied a shield | Payload: ShieldBrokenPayload
	ShieldBroken

	// === Castle ===

	// CastleDamaged | Payload: CastleDamagedPayload
	CastleDamaged
	// CastleUpgraded | Payload: CastleUpgradedPayload
	CastleUpgraded
	// CastleRepaired | Payload: CastleRepairedPayload
	CastleRepaired
	// PassiveUnlocked: one per passive that grew on a castle upgrade | Payload: PassiveUnlockedPayload
	PassiveUnlocked
	// SlotUnlocked | Payload: SlotUnlockedPayload
	SlotUnlocked

	// === Turrets ===

	// TurretPlaced | Payload: TurretPayload
	TurretPlaced
	// TurretUpgraded | Payload: TurretPayload
	TurretUpgraded
	// TurretDowngraded: Level 0 means the turret was removed | Payload: TurretPayload
	TurretDowngraded
	// TurretFired | Consumer: audio, renderer | Payload: TurretFiredPayload
	TurretFired

	// === Resources ===

	// GoldChanged: every gold delta | Payload: GoldChangedPayload
	GoldChanged
	// ResourceCapped: excess trimmed by caps | Payload: ResourceCappedPayload
	ResourceCapped

	// === Typing ===

	// TypingTargetAcquired | Payload: TypingPayload
	TypingTargetAcquired
	// TypingProgress: a correct character | Payload: TypingPayload
	TypingProgress
	// TypingError: a wrong character, with or without a target | Payload: TypingPayload
	TypingError
	// WordCompleted | Payload: WordCompletedPayload
	WordCompleted
	// PerfectWord: completed without mistakes | Payload: WordCompletedPayload
	PerfectWord
	// ComboReset: decay or mistake took the combo to 0 | Payload: ComboPayload
	ComboReset

	// === Waves ===

	// WaveCountdownStarted | Payload: WavePayload
	WaveCountdownStarted
	// WaveStarted: countdown over | Payload: WavePayload
	WaveStarted
	// WaveCompleted: duration over and nothing alive | Consumer: analytics | Payload: WavePayload
	WaveCompleted
	// WaveBonus: bonus gold/resources (wave clear, perfect streak) | Payload: WaveBonusPayload
	WaveBonus
	// WaveSummaryReady: one immutable snapshot per completed wave | Consumer: telemetry, HUD | Payload: WaveSummary
	WaveSummaryReady

	// === Boss ===

	// BossIntro | Payload: BossPayload
	BossIntro
	// BossPhaseShift | Payload: BossPayload
	BossPhaseShift
	// BossShieldRotated | Payload: BossPayload
	BossShieldRotated
	// BossVulnerableStart | Payload: BossPayload
	BossVulnerableStart
	// BossVulnerableEnd | Payload: BossPayload
	BossVulnerableEnd
	// BossShockwave | Payload: BossPayload
	BossShockwave
	// BossDefeated | Payload: BossPayload
	BossDefeated
	// BossDespawned: the boss escaped | Payload: BossPayload
	BossDespawned

	// === Evacuation ===

	// EvacuationStarted | Payload: EvacuationPayload
	EvacuationStarted
	// EvacuationSucceeded | Payload: EvacuationPayload
	EvacuationSucceeded
	// EvacuationFailed | Payload: EvacuationPayload
	EvacuationFailed

	eventTypeCount
)

var eventTypeNames = [...]string{
	eventTypeInvalid:     "Invalid",
	MatchStarted:         "MatchStarted",
	MatchEnded:           "MatchEnded",
	MilestoneReached:     "MilestoneReached",
	EnemySpawned:         "EnemySpawned",
	EnemyDamaged:         "EnemyDamaged",
	EnemyDefeated:        "EnemyDefeated",
	EnemyEscaped:         "EnemyEscaped",
	ShieldBroken:         "ShieldBroken",
	CastleDamaged:        "CastleDamaged",
	CastleUpgraded:       "CastleUpgraded",
	CastleRepaired:       "CastleRepaired",
	PassiveUnlocked:      "PassiveUnlocked",
	SlotUnlocked:         "SlotUnlocked",
	TurretPlaced:         "TurretPlaced",
	TurretUpgraded:       "TurretUpgraded",
	TurretDowngraded:     "TurretDowngraded",
	TurretFired:          "TurretFired",
	GoldChanged:          "GoldChanged",
	ResourceCapped:       "ResourceCapped",
	TypingTargetAcquired: "TypingTargetAcquired",
	TypingProgress:       "TypingProgress",
	TypingError:          "TypingError",
	WordCompleted:        "WordCompleted",
	PerfectWord:          "PerfectWord",
	ComboReset:           "ComboReset",
	WaveCountdownStarted: "WaveCountdownStarted",
	WaveStarted:          "WaveStarted",
	WaveCompleted:        "WaveCompleted",
	WaveBonus:            "WaveBonus",
	WaveSummaryReady:     "WaveSummaryReady",
	BossIntro:            "BossIntro",
	BossPhaseShift:       "BossPhaseShift",
	BossShieldRotated:    "BossShieldRotated",
	BossVulnerableStart:  "BossVulnerableStart",
	BossVulnerableEnd:    "BossVulnerableEnd",
	BossShockwave:        "BossShockwave",
	BossDefeated:         "BossDefeated",
	BossDespawned:        "BossDespawned",
	EvacuationStarted:    "EvacuationStarted",
	EvacuationSucceeded:  "EvacuationSucceeded",
	EvacuationFailed:     "EvacuationFailed",
}

// Valid reports whether t belongs to the closed set.
func (t EventType) Valid() bool {
	return t > eventTypeInvalid && t < eventTypeCount
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventTypeNames[t]
}

// AllTypes returns every valid event type in declaration order.
func AllTypes() []EventType {
	out := make([]EventType, 0, int(eventTypeCount)-1)
	for t := eventTypeInvalid + 1; t < eventTypeCount; t++ {
		out = append(out, t)
	}
	return out
}
