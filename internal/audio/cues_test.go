package audio

import (
	"testing"

	"go-typing-defense/internal/event"
)

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   event.Event
		cue  string
		ok   bool
	}{
		{"spawn", event.Event{Type: event.EnemySpawned}, CueSpawn, true},
		{"perfect", event.Event{Type: event.PerfectWord}, CuePerfect, true},
		{"victory", event.Event{Type: event.MatchEnded, Payload: event.MatchEndedPayload{Status: "victory"}}, CueVictory, true},
		{"defeat", event.Event{Type: event.MatchEnded, Payload: event.MatchEndedPayload{Status: "defeat"}}, CueLoss, true},
		{"silent", event.Event{Type: event.GoldChanged}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, ok := CueForEvent(tt.ev)
			if cue != tt.cue || ok != tt.ok {
				t.Errorf("expected %q/%v, got %q/%v", tt.cue, tt.ok, cue, ok)
			}
		})
	}
}

func TestEveryCueHasATone(t *testing.T) {
	for _, ty := range event.AllTypes() {
		cue, ok := CueForEvent(event.Event{Type: ty})
		if !ok {
			continue
		}
		if _, found := cueTones[cue]; !found {
			t.Errorf("cue %q for %s has no tone", cue, ty)
		}
	}
}

func TestSquareWave(t *testing.T) {
	w := newSquareWave(441)
	buf := make([][2]float64, 100)
	n, ok := w.Stream(buf)
	if n != 100 || !ok {
		t.Fatalf("expected a full buffer, got %d", n)
	}
	if buf[10][0] <= 0 || buf[60][0] >= 0 {
		t.Errorf("expected high then low halves, got %f and %f", buf[10][0], buf[60][0])
	}
}

func TestPlayCueWithoutSpeakerIsSilent(t *testing.T) {
	p := NewCuePlayer(0)
	p.PlayCue(CueSpawn)
	p.PlayCue("nope")
	p.Close()
}
