// cmd/typedefense/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/audio"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/state"
	"go-typing-defense/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

// Update runs at a fixed TPS, so every tick advances the same simulated time.
func (a *AppGame) Update() error {
	a.stateMachine.Update(1.0 / config.TicksPerSec)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "game config file (.yaml or .json), built-in default when empty")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	mode := flag.String("mode", string(defs.ModeCampaign), "campaign or practice")
	mute := flag.Bool("mute", false, "disable sound")
	telemetryPath := flag.String("telemetry", "", "append wave and session summaries to this JSON lines file")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	if m := defs.Mode(*mode); m != defs.ModeCampaign && m != defs.ModePractice {
		log.Fatalf("Unknown mode %q", *mode)
	}

	cfg := defs.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := defs.LoadGameConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	opts := app.Options{Seed: *seed, Mode: defs.Mode(*mode)}
	if !*mute {
		player := audio.NewCuePlayer(-1)
		if err := player.Initialize(); err != nil {
			// Без звука игра всё равно работает
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}
	if *telemetryPath != "" {
		f, err := os.OpenFile(*telemetryPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("Failed to open telemetry file: %v", err)
		}
		defer f.Close()
		opts.Telemetry = telemetry.NewJSONLSink(f)
	}

	sm := state.NewStateMachine(newGameFactory(cfg, opts))
	sm.SetState(state.NewMenuState(sm, "TYPE DEFENSE"))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Type Defense")
	ebiten.SetTPS(config.TicksPerSec)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}

// newGameFactory builds every match from the same options. A fixed seed gives
// the same run each time.
func newGameFactory(cfg *defs.GameConfig, opts app.Options) state.GameFactory {
	return func() *app.Game {
		return app.NewGame(cfg, opts)
	}
}
