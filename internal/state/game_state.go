// internal/state/game_state.go
package state

import (
	"fmt"
	"unicode"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var targetModes = []component.TargetMode{
	component.TargetNearest, component.TargetStrongest, component.TargetWeakest,
	component.TargetFastest, component.TargetFirst, component.TargetLast,
}

// GameState — экран матча: ввод, шаг симуляции, отрисовка.
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	fontFace  font.Face
	field     *ui.FieldRenderer
	wave      *ui.WaveIndicator
	castle    *ui.CastleHealthIndicator
	infoPanel *ui.InfoPanel
	slot      int // index into Slots
	archetype int // index into Config.Turrets
	chars     []rune
}

func NewGameState(sm *StateMachine, g *app.Game) *GameState {
	face := basicfont.Face7x13
	gs := &GameState{
		sm:        sm,
		game:      g,
		fontFace:  face,
		field:     ui.NewFieldRenderer(face, g.Config.Lanes),
		wave:      ui.NewWaveIndicator(config.ScreenWidth-260, 24, face),
		castle:    ui.NewCastleHealthIndicator(16, 16, face),
		infoPanel: ui.NewInfoPanel(face, g.Config),
	}
	gs.selectSlot(0)
	return gs
}

// GetGame exposes the match for the result screen.
func (g *GameState) GetGame() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleTyping()
	g.handleCommands()

	g.game.Advance(deltaTime)
	g.castle.Update(g.game.State().Castle)
	if g.game.Over() {
		g.sm.SetState(NewResultState(g.sm, g.game))
	}
}

func (g *GameState) handleTyping() {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if unicode.IsLetter(r) {
			g.game.HandleKey(r)
		} else if r >= '1' && r <= '9' {
			if idx := int(r - '1'); idx < len(g.game.Config.Turrets) {
				g.archetype = idx
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.game.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Purge()
	}
}

func (g *GameState) handleCommands() {
	slots := g.game.State().Slots
	if len(slots) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selectSlot((g.slot + 1) % len(slots))
	}
	slotID := slots[g.slot].ID
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		typeID := g.game.Config.Turrets[g.archetype].ID
		g.infoPanel.Report("place "+typeID, g.game.PlaceTurret(slotID, typeID))
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.infoPanel.Report("upgrade", g.game.UpgradeTurret(slotID))
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.infoPanel.Report("downgrade", g.game.DowngradeTurret(slotID))
	case inpututil.IsKeyJustPressed(ebiten.KeyF4):
		g.infoPanel.Report("castle upgrade", g.game.UpgradeCastle())
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		g.infoPanel.Report("repair", g.game.RepairCastle())
	case inpututil.IsKeyJustPressed(ebiten.KeyF6):
		g.infoPanel.Report("target mode", g.game.SetTargetMode(slotID, nextMode(slots[g.slot].Mode)))
	}
}

func (g *GameState) selectSlot(i int) {
	slots := g.game.State().Slots
	if i < 0 || i >= len(slots) {
		return
	}
	g.slot = i
	g.infoPanel.SetTarget(slots[i].ID)
}

// nextMode cycles through the target modes.
func nextMode(m component.TargetMode) component.TargetMode {
	for i, tm := range targetModes {
		if tm == m {
			return targetModes[(i+1)%len(targetModes)]
		}
	}
	return targetModes[0]
}

func (g *GameState) Draw(screen *ebiten.Image) {
	st := g.game.State()
	selected := 0
	if g.slot < len(st.Slots) {
		selected = st.Slots[g.slot].ID
	}
	g.field.Draw(screen, st, selected)
	g.castle.Draw(screen, st.Castle)
	g.wave.Draw(screen, st.Wave, st.Boss.Active)

	res := st.Resources
	text.Draw(screen, fmt.Sprintf("gold %d  wood %d  stone %d  food %d  score %d",
		res.Gold(), res["wood"], res["stone"], res["food"], st.Score), g.fontFace, 300, 24, config.TextLightColor)

	ts := st.Typing
	line := fmt.Sprintf("combo %d  wpm %.0f  accuracy %.0f%%", ts.Combo, g.game.WPM(), ts.RollingAccuracy*100)
	if ts.ComboWarning {
		line += "  (combo fading)"
	}
	text.Draw(screen, line, g.fontFace, 300, 24+ui.LineHeight, config.TextLightColor)
	if ts.Buffer != "" {
		text.Draw(screen, "> "+ts.Buffer, g.fontFace, 300, 24+2*ui.LineHeight, config.TypedColor)
	}

	g.infoPanel.Draw(screen, st, g.archetype)
}

func (g *GameState) Exit() {}
