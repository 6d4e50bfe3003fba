// internal/interfaces/collaborators.go
package interfaces

import "go-typing-defense/internal/event"

// SoundPlayer is subscribed to every bus topic and picks its own cues.
// Implementations must not block the tick.
type SoundPlayer interface {
	event.Listener
	PlayCue(name string)
}

// TelemetrySink receives analytics snapshots. It only reads them.
type TelemetrySink interface {
	RecordWaveSummary(summary event.WaveSummary)
	RecordSession(summary event.SessionSummary)
}
