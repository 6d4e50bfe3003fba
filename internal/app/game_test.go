package app

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go-typing-defense/internal/balance"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/system"
)

type recordingSink struct {
	waves    []event.WaveSummary
	sessions []event.SessionSummary
}

func (s *recordingSink) RecordWaveSummary(w event.WaveSummary)   { s.waves = append(s.waves, w) }
func (s *recordingSink) RecordSession(ss event.SessionSummary) { s.sessions = append(s.sessions, ss) }

type recordingSound struct {
	events []event.Event
	cues   []string
}

func (s *recordingSound) OnEvent(e event.Event) { s.events = append(s.events, e) }
func (s *recordingSound) PlayCue(name string)   { s.cues = append(s.cues, name) }

// testConfig has no random affixes so typing damage always kills.
func testConfig(waves ...defs.WaveConfig) *defs.GameConfig {
	cfg := defs.DefaultGameConfig()
	cfg.Features.EliteAffixes = false
	cfg.Features.Evacuations = false
	if len(waves) > 0 {
		cfg.Waves = waves
	}
	return cfg
}

// typeTarget types the word of the alive enemy closest to the castle.
func typeTarget(g *Game) bool {
	var best *component.Enemy
	for _, e := range g.State().Enemies {
		if e.Alive() && !e.Transport && (best == nil || e.Distance > best.Distance) {
			best = e
		}
	}
	if best == nil {
		return false
	}
	for _, c := range best.Word {
		g.HandleKey(c)
		g.Advance(0.05)
	}
	return true
}

func TestNewGameIsPreparing(t *testing.T) {
	g := NewGame(testConfig(), Options{Seed: 7, MatchID: "m-1"})
	st := g.State()
	if st.Status != component.StatusPreparing {
		t.Errorf("expected preparing, got %s", st.Status)
	}
	if st.MatchID != "m-1" || st.Mode != defs.ModeCampaign {
		t.Errorf("unexpected match id %q or mode %q", st.MatchID, st.Mode)
	}
	if st.Resources.Gold() != 200 || st.Castle.Level != 1 {
		t.Errorf("expected 200 gold at castle 1, got %d at %d", st.Resources.Gold(), st.Castle.Level)
	}

	g.Advance(10)
	if st.Time != 0 {
		t.Error("expected no progress before Start")
	}
	if res := g.HandleKey('a'); res.Status != system.TypingIgnored {
		t.Errorf("expected ignored input, got %s", res.Status)
	}
}

func TestGeneratedMatchID(t *testing.T) {
	a := NewGame(testConfig(), Options{Seed: 1})
	b := NewGame(testConfig(), Options{Seed: 1})
	if a.State().MatchID == "" || a.State().MatchID == b.State().MatchID {
		t.Errorf("expected distinct generated ids, got %q and %q", a.State().MatchID, b.State().MatchID)
	}
}

func TestWaveLifecycleAccountsForEveryEnemy(t *testing.T) {
	cfg := testConfig(
		defs.WaveConfig{Countdown: 1, Duration: 5, Spawns: []defs.SpawnEntry{
			{At: 0, Lane: 0, Tier: "runner", Count: 2, Cadence: 1},
			{At: 1, Lane: 2, Tier: "grunt", Count: 1},
		}},
		defs.WaveConfig{Duration: 100},
	)
	sink := &recordingSink{}
	g := NewGame(cfg, Options{Seed: 3, MatchID: "m", Telemetry: sink})
	g.Start()

	g.Advance(1.5)
	if !typeTarget(g) {
		t.Fatal("expected an enemy to type at")
	}
	g.Advance(30)

	if g.State().Wave.Index != 1 {
		t.Fatalf("expected wave index 1, got %d", g.State().Wave.Index)
	}
	if len(sink.waves) != 1 {
		t.Fatalf("expected 1 wave summary, got %d", len(sink.waves))
	}
	sum := sink.waves[0]
	if sum.EnemiesDefeated+sum.Breaches != 3 {
		t.Errorf("expected 3 enemies accounted for, got %d defeated and %d breaches", sum.EnemiesDefeated, sum.Breaches)
	}
	if sum.EnemiesDefeated < 1 || sum.PerfectWords < 1 {
		t.Errorf("expected the typed kill in the summary, got %+v", sum)
	}
	if sum.MatchID != "m" {
		t.Errorf("expected match id on the summary, got %q", sum.MatchID)
	}
}

func TestVictoryRecordsSession(t *testing.T) {
	cfg := testConfig(defs.WaveConfig{Countdown: 1, Duration: 1})
	sink := &recordingSink{}
	sound := &recordingSound{}
	g := NewGame(cfg, Options{Seed: 1, Sound: sound, Telemetry: sink})
	g.Start()
	g.Advance(5)

	if g.Status() != component.StatusVictory || !g.Over() {
		t.Fatalf("expected victory, got %s", g.Status())
	}
	if len(sink.sessions) != 1 || sink.sessions[0].WavesCompleted != 1 {
		t.Fatalf("expected one session with 1 wave, got %+v", sink.sessions)
	}
	if sink.sessions[0].FlawlessWaves != 1 {
		t.Errorf("expected a flawless wave, got %d", sink.sessions[0].FlawlessWaves)
	}
	last := sound.events[len(sound.events)-1]
	if p, ok := last.Payload.(event.MatchEndedPayload); !ok || p.Status != "victory" {
		t.Errorf("expected the sound player to hear the victory last, got %s", last.Type)
	}

	before := g.State().Time
	g.Advance(5)
	if g.State().Time != before {
		t.Error("expected no progress after the match ended")
	}
	if res := g.UpgradeCastle(); res.Success {
		t.Error("expected commands to fail after the match ended")
	}
}

func TestDefeatWhenCastleFalls(t *testing.T) {
	cfg := testConfig(defs.WaveConfig{Countdown: 1, Duration: 5, Spawns: []defs.SpawnEntry{
		{At: 0, Lane: 1, Tier: "brute", Count: 8, Cadence: 0},
	}})
	g := NewGame(cfg, Options{Seed: 1})
	var ended []event.MatchEndedPayload
	g.EventDispatcher.Subscribe(event.MatchEnded, event.ListenerFunc(func(e event.Event) {
		ended = append(ended, e.Payload.(event.MatchEndedPayload))
	}))
	g.Start()
	g.Advance(60)

	if g.Status() != component.StatusDefeat {
		t.Fatalf("expected defeat, got %s", g.Status())
	}
	if g.State().Castle.Health > 0 {
		t.Errorf("expected a destroyed castle, got %f", g.State().Castle.Health)
	}
	if len(ended) != 1 || ended[0].Status != "defeat" {
		t.Errorf("expected one defeat event, got %+v", ended)
	}
}

func TestFirstBloodMilestoneOnce(t *testing.T) {
	cfg := testConfig(defs.WaveConfig{Countdown: 1, Duration: 30, Spawns: []defs.SpawnEntry{
		{At: 0, Lane: 0, Tier: "runner", Count: 2, Cadence: 0.5},
	}})
	g := NewGame(cfg, Options{Seed: 5})
	reached := 0
	g.EventDispatcher.Subscribe(event.MilestoneReached, event.ListenerFunc(func(e event.Event) {
		if e.Payload.(event.MilestonePayload).ID == balance.MilestoneFirstBlood {
			reached++
		}
	}))
	g.Start()
	g.Advance(2)
	typeTarget(g)
	typeTarget(g)

	if reached != 1 {
		t.Errorf("expected first_blood once, got %d", reached)
	}
	count := 0
	for _, id := range g.State().Milestones {
		if id == balance.MilestoneFirstBlood {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected first_blood recorded once, got %d", count)
	}
}

func TestPerfectMilestoneOnTheWordThatReachesIt(t *testing.T) {
	cfg := testConfig(defs.WaveConfig{Countdown: 1, Duration: 30, Spawns: []defs.SpawnEntry{
		{At: 0, Lane: 0, Tier: "brute", Count: 1},
	}})
	g := NewGame(cfg, Options{Seed: 9})
	g.Start()
	g.Advance(1.5)

	var target *component.Enemy
	for _, e := range g.State().Enemies {
		if e.Alive() {
			target = e
		}
	}
	if target == nil {
		t.Fatal("expected a spawned enemy")
	}
	// Щит переживает слово: ни убийства, ни конца волны.
	target.Shield = &component.Shield{Current: 1000, Max: 1000}
	g.State().Typing.PerfectWords = 24

	for _, c := range target.Word {
		g.HandleKey(c)
	}

	if g.State().Typing.PerfectWords != 25 {
		t.Fatalf("expected 25 perfect words, got %d", g.State().Typing.PerfectWords)
	}
	found := false
	for _, id := range g.State().Milestones {
		if id == balance.MilestonePerfect25 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected perfect_25 right after the 25th perfect word, got %v", g.State().Milestones)
	}
}

func TestCommandsDelegateToEconomy(t *testing.T) {
	g := NewGame(testConfig(), Options{Seed: 1})
	g.Start()
	if res := g.PlaceTurret(1, "arrow"); !res.Success {
		t.Fatalf("expected placement, got %q", res.Message)
	}
	if g.State().Resources.Gold() != 100 {
		t.Errorf("expected 100 gold left, got %d", g.State().Resources.Gold())
	}
	if res := g.SetTargetMode(1, component.TargetStrongest); !res.Success {
		t.Errorf("expected mode change, got %q", res.Message)
	}
	if res := g.PlaceTurret(99, "arrow"); res.Success {
		t.Error("expected an unknown slot to fail")
	}
	if res := g.RepairCastle(); res.Success {
		t.Error("expected repair at full health to fail")
	}
}

// replay plays a fixed script and returns the final state and event order.
func replay(seed int64) (*component.GameState, []event.EventType) {
	cfg := defs.DefaultGameConfig()
	g := NewGame(cfg, Options{Seed: seed, MatchID: "replay"})
	var types []event.EventType
	g.EventDispatcher.SubscribeMany(event.ListenerFunc(func(e event.Event) {
		types = append(types, e.Type)
	}), event.AllTypes()...)

	g.Start()
	g.PlaceTurret(2, "arrow")
	for i := 0; i < 40 && !g.Over(); i++ {
		g.Advance(1.3)
		if i%3 == 0 {
			typeTarget(g)
		}
		if i == 10 {
			g.HandleKey('q')
			g.Backspace()
			g.Purge()
		}
	}
	return g.State(), types
}

func TestReplayIsDeterministic(t *testing.T) {
	a, aTypes := replay(42)
	b, bTypes := replay(42)
	if !reflect.DeepEqual(aTypes, bTypes) {
		t.Fatal("expected identical event sequences")
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical final states")
	}
	if a.Time == 0 || len(aTypes) == 0 {
		t.Error("expected the script to run")
	}
}

// The driver must build without a sound card or a display.
func TestDriverImportsNoCollaborators(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	forbidden := []string{"internal/audio", "internal/ui", "internal/state", "internal/telemetry", "gopxl/beep", "hajimehoshi/ebiten", "gdamore/tcell"}
	fset := token.NewFileSet()
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			for _, bad := range forbidden {
				if strings.Contains(imp.Path.Value, bad) {
					t.Errorf("%s imports %s", name, imp.Path.Value)
				}
			}
		}
	}
}
