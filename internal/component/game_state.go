package component

import "go-typing-defense/internal/defs"

// MatchStatus — фаза матча.
type MatchStatus string

const (
	StatusPreparing MatchStatus = "preparing"
	StatusRunning   MatchStatus = "running"
	StatusVictory   MatchStatus = "victory"
	StatusDefeat    MatchStatus = "defeat"
)

// GameState is the root of a running match. The simulation driver owns it.
type GameState struct {
	MatchID     string
	Time        float64
	Status      MatchStatus
	Mode        defs.Mode
	Castle      CastleState
	Resources   Resources
	Score       int
	Slots       []*TurretSlot
	Enemies     []*Enemy
	Projectiles []*Projectile
	Wave        WaveRuntimeState
	Typing      TypingState
	Boss        BossRuntimeState
	LaneEffects []LaneEffect
	Evacuations []EvacuationState
	Milestones  []string
	Analytics   AnalyticsState
}
