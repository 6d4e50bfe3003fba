// internal/app/game.go
package app

import (
	"log"
	"math"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
	"go-typing-defense/internal/interfaces"
	"go-typing-defense/internal/system"
	"go-typing-defense/internal/utils"

	"github.com/google/uuid"
)

// Options configure a new match. Zero values are valid: seed 0 is time based,
// an empty mode is the campaign, nil collaborators are skipped.
type Options struct {
	Seed      int64
	Mode      defs.Mode
	MatchID   string
	Sound     interfaces.SoundPlayer
	Telemetry interfaces.TelemetrySink
}

// updater is one per-tick system.
type updater interface {
	Update(deltaTime float64)
}

// Game is the simulation driver. It owns the GameState; everything outside
// reads snapshots or listens to the bus.
type Game struct {
	Config             *defs.GameConfig
	World              *entity.World
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	EconomySystem      *system.EconomySystem
	DamageSystem       *system.DamageSystem
	StatusEffectSystem *system.StatusEffectSystem
	EvacuationSystem   *system.EvacuationSystem
	BossSystem         *system.BossSystem
	WaveSystem         *system.WaveSystem
	TypingSystem       *system.TypingSystem
	CombatSystem       *system.CombatSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	AnalyticsSystem    *system.AnalyticsSystem

	systems []updater
	kills   int
}

// NewGame builds a match in the preparing state. cfg is read only from here on.
func NewGame(cfg *defs.GameConfig, opts Options) *Game {
	if cfg == nil {
		panic("game config cannot be nil")
	}
	mode := opts.Mode
	if mode == "" {
		mode = defs.ModeCampaign
	}
	matchID := opts.MatchID
	if matchID == "" {
		matchID = uuid.NewString()
	}

	state := &component.GameState{
		MatchID:   matchID,
		Status:    component.StatusPreparing,
		Mode:      mode,
		Castle:    system.NewCastleState(cfg),
		Resources: component.Resources(cfg.StartingResources).Clone(),
		Slots:     system.NewSlots(cfg),
		Typing:    component.NewTypingState(),
	}
	world := entity.NewWorld(state)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(opts.Seed),
	}

	// Порядок подписки важен: аналитика раньше слушателя игры.
	g.EconomySystem = system.NewEconomySystem(world, eventDispatcher, cfg)
	g.DamageSystem = system.NewDamageSystem(world, eventDispatcher, g.EconomySystem)
	g.StatusEffectSystem = system.NewStatusEffectSystem(world, g.DamageSystem)
	g.EvacuationSystem = system.NewEvacuationSystem(world, eventDispatcher, g.EconomySystem)
	g.BossSystem = system.NewBossSystem(world, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(world, eventDispatcher, cfg, g.Rng, g.EconomySystem, g.BossSystem, g.EvacuationSystem)
	g.TypingSystem = system.NewTypingSystem(world, eventDispatcher, g.DamageSystem, g.EconomySystem, g.EvacuationSystem, g.WaveSystem)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher, cfg)
	g.MovementSystem = system.NewMovementSystem(world, eventDispatcher, g.EconomySystem)
	g.ProjectileSystem = system.NewProjectileSystem(world, g.DamageSystem, g.StatusEffectSystem)
	g.AnalyticsSystem = system.NewAnalyticsSystem(world, eventDispatcher)

	g.systems = []updater{
		g.WaveSystem,
		g.BossSystem,
		g.EvacuationSystem,
		g.StatusEffectSystem,
		g.MovementSystem,
		g.CombatSystem,
		g.ProjectileSystem,
		g.EconomySystem,
		g.TypingSystem,
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeMany(listener, event.EnemyDefeated, event.WaveCompleted, event.CastleUpgraded, event.WordCompleted)

	if opts.Sound != nil {
		eventDispatcher.SubscribeMany(opts.Sound, event.AllTypes()...)
	}
	if opts.Telemetry != nil {
		sink := opts.Telemetry
		eventDispatcher.SubscribeMany(event.ListenerFunc(func(e event.Event) {
			switch p := e.Payload.(type) {
			case event.WaveSummary:
				sink.RecordWaveSummary(p)
			case event.MatchEndedPayload:
				sink.RecordSession(g.AnalyticsSystem.SessionSummary())
			}
		}), event.WaveSummaryReady, event.MatchEnded)
	}

	g.EconomySystem.RefreshSlotUnlocks()
	log.Printf("New match %s: mode %s, seed %d, %d waves", matchID, mode, g.Rng.Seed(), g.WaveSystem.TotalWaves())
	return g
}

// Start moves a preparing match to running and opens the first countdown.
func (g *Game) Start() {
	st := g.World.State
	if st.Status != component.StatusPreparing {
		return
	}
	st.Status = component.StatusRunning
	g.EventDispatcher.Publish(st.Time, event.MatchStartedPayload{
		MatchID:    st.MatchID,
		Mode:       string(st.Mode),
		Seed:       g.Rng.Seed(),
		TotalWaves: g.WaveSystem.TotalWaves(),
	})
	g.WaveSystem.StartCountdown(0)
}

// Advance moves the simulation forward by deltaTime seconds, in steps no
// longer than config.MaxDeltaTime.
func (g *Game) Advance(deltaTime float64) {
	st := g.World.State
	for deltaTime > 0 && st.Status == component.StatusRunning {
		step := math.Min(deltaTime, config.MaxDeltaTime)
		g.step(step)
		deltaTime -= step
	}
}

func (g *Game) step(deltaTime float64) {
	st := g.World.State
	st.Time += deltaTime
	for _, s := range g.systems {
		s.Update(deltaTime)
		if st.Status != component.StatusRunning {
			break
		}
	}
	g.World.Prune()
}

// HandleKey feeds one typed character.
func (g *Game) HandleKey(r rune) system.TypingResult {
	return g.TypingSystem.HandleChar(r)
}

// Backspace removes the last typed character.
func (g *Game) Backspace() system.TypingResult {
	return g.TypingSystem.Backspace()
}

// Purge clears the typing buffer.
func (g *Game) Purge() system.TypingResult {
	return g.TypingSystem.Purge()
}

// --- Команды экономики ---

func (g *Game) PlaceTurret(slotID int, typeID string) system.CommandResult {
	if r, over := g.matchOver(); over {
		return r
	}
	return g.EconomySystem.PlaceTurret(slotID, typeID)
}

func (g *Game) UpgradeTurret(slotID int) system.CommandResult {
	if r, over := g.matchOver(); over {
		return r
	}
	return g.EconomySystem.UpgradeTurret(slotID)
}

func (g *Game) DowngradeTurret(slotID int) system.CommandResult {
	if r, over := g.matchOver(); over {
		return r
	}
	return g.EconomySystem.DowngradeTurret(slotID)
}

func (g *Game) SetTargetMode(slotID int, mode component.TargetMode) system.CommandResult {
	if r, over := g.matchOver(); over {
		return r
	}
	return g.EconomySystem.SetTargetMode(slotID, mode)
}

func (g *Game) UpgradeCastle() system.CommandResult {
	if r, over := g.matchOver(); over {
		return r
	}
	return g.EconomySystem.UpgradeCastle()
}

func (g *Game) RepairCastle() system.CommandResult {
	if r, over := g.matchOver(); over {
		return r
	}
	return g.EconomySystem.RepairCastle()
}

func (g *Game) matchOver() (system.CommandResult, bool) {
	if g.Over() {
		return system.CommandResult{Message: "match is over"}, true
	}
	return system.CommandResult{}, false
}

// --- Снимки для рендера и UI ---

// State returns the live state. Callers must treat it as read only.
func (g *Game) State() *component.GameState {
	return g.World.State
}

func (g *Game) Status() component.MatchStatus {
	return g.World.State.Status
}

// Over reports whether the match reached victory or defeat.
func (g *Game) Over() bool {
	s := g.World.State.Status
	return s == component.StatusVictory || s == component.StatusDefeat
}

func (g *Game) WPM() float64 {
	return g.TypingSystem.WPM()
}

func (g *Game) Summaries() []event.WaveSummary {
	return g.AnalyticsSystem.Summaries()
}

func (g *Game) SessionSummary() event.SessionSummary {
	return g.AnalyticsSystem.SessionSummary()
}

// TargetedEnemy returns the enemy the player is typing at, if any.
func (g *Game) TargetedEnemy() (*component.Enemy, bool) {
	id := g.World.State.Typing.ActiveEnemy
	if id == 0 {
		return nil, false
	}
	return g.World.Enemy(id)
}
