// internal/audio/player.go
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"go-typing-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// tone — параметры одного звукового сигнала.
type tone struct {
	freq     float64
	duration time.Duration
	square   bool
}

var cueTones = map[string]tone{
	CueSpawn:     {220, 60 * time.Millisecond, false},
	CueDefeat:    {660, 90 * time.Millisecond, false},
	CueBreach:    {110, 250 * time.Millisecond, true},
	CueError:     {140, 120 * time.Millisecond, true},
	CuePerfect:   {880, 120 * time.Millisecond, false},
	CueFire:      {440, 30 * time.Millisecond, true},
	CueShield:    {520, 80 * time.Millisecond, true},
	CueWaveStart: {330, 300 * time.Millisecond, false},
	CueWaveClear: {990, 300 * time.Millisecond, false},
	CueBoss:      {90, 500 * time.Millisecond, true},
	CueUpgrade:   {740, 150 * time.Millisecond, false},
	CueMilestone: {1180, 200 * time.Millisecond, false},
	CueVictory:   {1320, 600 * time.Millisecond, false},
	CueLoss:      {70, 800 * time.Millisecond, true},
}

// CuePlayer plays short synthesized tones through the beep speaker.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewCuePlayer creates a player. volume is in beep's log2 units, 0 is unchanged.
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker. Without it PlayCue is a no-op.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// OnEvent plays the cue mapped to a bus event, if any.
func (p *CuePlayer) OnEvent(e event.Event) {
	if cue, ok := CueForEvent(e); ok {
		p.PlayCue(cue)
	}
}

// PlayCue plays one named cue.
func (p *CuePlayer) PlayCue(name string) {
	t, ok := cueTones[name]
	if !ok {
		log.Printf("Warning: unknown sound cue %q", name)
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	var source beep.Streamer = newSquareWave(t.freq)
	if !t.square {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			log.Printf("Warning: sound cue %q: %v", name, err)
			return
		}
		source = sine
	}
	streamer := beep.Take(sampleRate.N(t.duration), source)
	speaker.Lock()
	p.mixer.Add(&effects.Volume{Streamer: streamer, Base: 2, Volume: p.volume})
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *CuePlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// squareWave is an endless square wave; beep.Take bounds it.
type squareWave struct {
	freq  float64
	phase float64
}

func newSquareWave(freq float64) *squareWave {
	return &squareWave{freq: freq}
}

func (w *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := 0.1
		if w.phase >= 0.5 {
			val = -0.1
		}
		samples[i][0] = val
		samples[i][1] = val
		w.phase += w.freq / float64(sampleRate)
		w.phase -= math.Floor(w.phase)
	}
	return len(samples), true
}

func (w *squareWave) Err() error { return nil }
