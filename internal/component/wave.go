package component

import "go-typing-defense/internal/types"

// WaveRuntimeState — текущая волна. Exactly one wave is current; InCountdown is
// true only before the first spawn of that wave.
type WaveRuntimeState struct {
	Index              int
	Total              int
	Cycle              int // completed loops in loop mode
	InCountdown        bool
	CountdownRemaining float64
	TimeInWave         float64
	Duration           float64
	Spawned            int
	Expected           int
}

// EvacuationState tracks one scripted transport.
type EvacuationState struct {
	EnemyID   types.EntityID
	Lane      int
	Remaining float64
	Duration  float64
	Done      bool
}

// LaneEffect is a timed lane-wide fire-rate modifier (boss shockwave).
type LaneEffect struct {
	Lane         int
	FireRateMult float64
	Remaining    float64
}
