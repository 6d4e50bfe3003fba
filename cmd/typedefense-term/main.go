// cmd/typedefense-term/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	"unicode"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/system"
	"go-typing-defense/internal/telemetry"

	"github.com/gdamore/tcell/v2"
)

const (
	fieldLeft = 8
	laneTop   = 5
	laneRows  = 4
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTyped    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleElite    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	styleEvac     = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleCastle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSlot     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

type terminalGame struct {
	screen    tcell.Screen
	newGame   func() *app.Game
	game      *app.Game
	slot      int
	archetype int
	message   string
}

func main() {
	configPath := flag.String("config", "", "game config file (.yaml or .json), built-in default when empty")
	seed := flag.Int64("seed", 0, "random seed, 0 for time based")
	mode := flag.String("mode", string(defs.ModeCampaign), "campaign or practice")
	telemetryPath := flag.String("telemetry", "", "append wave and session summaries to this JSON lines file")
	logPath := flag.String("log", "typedefense.log", "log file, the terminal is busy with the game")
	flag.Parse()

	if m := defs.Mode(*mode); m != defs.ModeCampaign && m != defs.ModePractice {
		fmt.Fprintf(os.Stderr, "Unknown mode %q\n", *mode)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg := defs.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := defs.LoadGameConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	opts := app.Options{Seed: *seed, Mode: defs.Mode(*mode)}
	if *telemetryPath != "" {
		f, err := os.OpenFile(*telemetryPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open telemetry file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		opts.Telemetry = telemetry.NewJSONLSink(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	tg := &terminalGame{
		screen:  screen,
		newGame: func() *app.Game { return app.NewGame(cfg, opts) },
	}
	tg.restart()
	tg.run()
}

func (tg *terminalGame) restart() {
	tg.game = tg.newGame()
	tg.game.Start()
	tg.slot, tg.message = 0, ""
}

// run keeps the simulation on this goroutine; the poller only forwards events.
func (tg *terminalGame) run() {
	ticker := time.NewTicker(time.Second / config.TicksPerSec)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := tg.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !tg.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			tg.game.Advance(1.0 / config.TicksPerSec)
			tg.draw()
		}
	}
}

func (tg *terminalGame) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		tg.screen.Sync()
	case *tcell.EventKey:
		return tg.handleKey(ev)
	}
	return true
}

func (tg *terminalGame) handleKey(ev *tcell.EventKey) bool {
	g := tg.game
	slots := g.State().Slots
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		if g.Over() {
			tg.restart()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		g.Backspace()
	case tcell.KeyEscape:
		g.Purge()
	case tcell.KeyTab:
		if len(slots) > 0 {
			tg.slot = (tg.slot + 1) % len(slots)
		}
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5, tcell.KeyF6:
		if len(slots) > 0 {
			tg.command(ev.Key(), slots[tg.slot])
		}
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case unicode.IsLetter(r):
			g.HandleKey(r)
		case r >= '1' && r <= '9' && int(r-'1') < len(g.Config.Turrets):
			tg.archetype = int(r - '1')
		}
	}
	return true
}

func (tg *terminalGame) command(key tcell.Key, slot *component.TurretSlot) {
	g := tg.game
	var action string
	var res system.CommandResult
	switch key {
	case tcell.KeyF1:
		typeID := g.Config.Turrets[tg.archetype].ID
		action, res = "place "+typeID, g.PlaceTurret(slot.ID, typeID)
	case tcell.KeyF2:
		action, res = "upgrade", g.UpgradeTurret(slot.ID)
	case tcell.KeyF3:
		action, res = "downgrade", g.DowngradeTurret(slot.ID)
	case tcell.KeyF4:
		action, res = "castle upgrade", g.UpgradeCastle()
	case tcell.KeyF5:
		action, res = "repair", g.RepairCastle()
	case tcell.KeyF6:
		action, res = "target mode", g.SetTargetMode(slot.ID, nextMode(slot.Mode))
	}
	if res.Success {
		tg.message = action + ": ok"
	} else {
		tg.message = action + ": " + res.Message
	}
}

func nextMode(m component.TargetMode) component.TargetMode {
	modes := []component.TargetMode{
		component.TargetNearest, component.TargetStrongest, component.TargetWeakest,
		component.TargetFastest, component.TargetFirst, component.TargetLast,
	}
	for i, tm := range modes {
		if tm == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}

func (tg *terminalGame) draw() {
	s := tg.screen
	s.Clear()
	g := tg.game
	st := g.State()
	width, _ := s.Size()
	fieldWidth := width - fieldLeft - 2
	if fieldWidth < 20 {
		fieldWidth = 20
	}

	c := st.Castle
	drawText(s, 0, 0, styleText, fmt.Sprintf("Castle L%d %.0f/%d  gold %d wood %d stone %d food %d  score %d",
		c.Level, c.Health, c.MaxHealth, st.Resources.Gold(), st.Resources["wood"], st.Resources["stone"], st.Resources["food"], st.Score))
	wave := fmt.Sprintf("wave %d", st.Wave.Index+1)
	if st.Wave.Total > 0 {
		wave += fmt.Sprintf("/%d", st.Wave.Total)
	}
	if st.Wave.InCountdown {
		wave += fmt.Sprintf("  next in %.1fs", st.Wave.CountdownRemaining)
	}
	drawText(s, 0, 1, styleText, fmt.Sprintf("%s  combo %d  wpm %.0f  accuracy %.0f%%",
		wave, st.Typing.Combo, g.WPM(), st.Typing.RollingAccuracy*100))
	drawText(s, 0, 2, styleTyped, "> "+st.Typing.Buffer)

	for lane := 0; lane < g.Config.Lanes; lane++ {
		y := laneTop + lane*laneRows
		drawText(s, 0, y, styleCastle, "[####]")
		for x := fieldLeft; x < fieldLeft+fieldWidth; x++ {
			s.SetContent(x, y+1, '.', nil, styleSlot)
		}
	}
	for i, slot := range st.Slots {
		x := fieldLeft + slot.X*fieldWidth/config.PathUnits
		y := laneTop + slot.Lane*laneRows + 2
		label := "_"
		switch {
		case !slot.Unlocked:
			label = "x"
		case slot.Turret != nil:
			label = fmt.Sprintf("%s%d", slot.Turret.TypeID[:1], slot.Turret.Level)
		}
		style := styleSlot
		if i == tg.slot {
			style = styleSelected
		}
		drawText(s, x, y, style, label)
	}
	for _, e := range st.Enemies {
		if !e.Alive() {
			continue
		}
		x := fieldLeft + int((1-e.Distance)*float64(fieldWidth))
		y := laneTop + e.Lane*laneRows
		drawText(s, x, y, styleTyped, e.Word[:e.Typed])
		drawText(s, x+e.Typed, y, enemyStyle(e), e.Remaining())
		s.SetContent(x, y+1, '@', nil, enemyStyle(e))
	}

	bottom := laneTop + g.Config.Lanes*laneRows + 1
	arch := g.Config.Turrets[tg.archetype]
	drawText(s, 0, bottom, styleText, fmt.Sprintf("turret [%d] %s  Tab slot  F1 place F2 up F3 down F4 castle F5 repair F6 mode  Ctrl-C quit",
		tg.archetype+1, arch.Name))
	drawText(s, 0, bottom+1, styleTyped, tg.message)

	if g.Over() {
		sum := g.SessionSummary()
		drawText(s, 0, bottom+3, styleTyped, fmt.Sprintf("%s  waves %d  defeated %d  breaches %d  perfect %d  - Enter to play again",
			st.Status, sum.WavesCompleted, sum.EnemiesDefeated, sum.Breaches, sum.PerfectWords))
	}
	s.Show()
}

func enemyStyle(e *component.Enemy) tcell.Style {
	switch {
	case e.Transport:
		return styleEvac
	case e.Boss:
		return styleBoss
	case len(e.Affixes) > 0:
		return styleElite
	}
	return styleEnemy
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
