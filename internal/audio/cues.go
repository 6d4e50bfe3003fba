// internal/audio/cues.go
package audio

import "go-typing-defense/internal/event"

// Cue names.
const (
	CueSpawn     = "spawn"
	CueDefeat    = "defeat"
	CueBreach    = "breach"
	CueError     = "error"
	CuePerfect   = "perfect"
	CueFire      = "fire"
	CueShield    = "shield"
	CueWaveStart = "wave_start"
	CueWaveClear = "wave_clear"
	CueBoss      = "boss"
	CueUpgrade   = "upgrade"
	CueMilestone = "milestone"
	CueVictory   = "victory"
	CueLoss      = "loss"
)

// CueForEvent maps a bus event to a sound cue. Most events are silent.
func CueForEvent(e event.Event) (string, bool) {
	switch e.Type {
	case event.EnemySpawned:
		return CueSpawn, true
	case event.EnemyDefeated:
		return CueDefeat, true
	case event.EnemyEscaped:
		return CueBreach, true
	case event.TypingError:
		return CueError, true
	case event.PerfectWord:
		return CuePerfect, true
	case event.TurretFired:
		return CueFire, true
	case event.ShieldBroken:
		return CueShield, true
	case event.WaveStarted:
		return CueWaveStart, true
	case event.WaveCompleted:
		return CueWaveClear, true
	case event.BossIntro, event.BossShockwave:
		return CueBoss, true
	case event.CastleUpgraded, event.TurretUpgraded:
		return CueUpgrade, true
	case event.MilestoneReached:
		return CueMilestone, true
	case event.MatchEnded:
		if p, ok := e.Payload.(event.MatchEndedPayload); ok && p.Status == "victory" {
			return CueVictory, true
		}
		return CueLoss, true
	}
	return "", false
}
