package component

import "go-typing-defense/internal/types"

// BossPhase of the boss state machine.
type BossPhase string

const (
	BossIntro    BossPhase = "intro"
	BossPhaseOne BossPhase = "phase-one"
	BossPhaseTwo BossPhase = "phase-two"
	BossFinale   BossPhase = "finale"
)

// BossRuntimeState is only meaningful while Active is true.
type BossRuntimeState struct {
	Active                 bool
	EnemyID                types.EntityID
	TierID                 string
	Phase                  BossPhase
	Elapsed                float64
	SegmentIndex           int
	SegmentTotal           int
	RotationTimer          float64
	VulnerabilityTimer     float64
	VulnerabilityRemaining float64
	Vulnerable             bool
	VulnerabilityMult      float64
	ShockwaveTimer         float64
}
