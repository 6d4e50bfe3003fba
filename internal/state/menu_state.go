// internal/state/menu_state.go
package state

import (
	"go-typing-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm    *StateMachine
	title string
}

func NewMenuState(sm *StateMachine, title string) *MenuState {
	return &MenuState{sm: sm, title: title}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.StartMatch()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := basicfont.Face7x13
	x := config.ScreenWidth/2 - 160
	y := config.ScreenHeight / 3
	text.Draw(screen, m.title, face, x, y, config.TypedColor)
	lines := []string{
		"type the word above an enemy to strike it",
		"Tab: next slot   1-5: turret type   F1 place   F2 upgrade   F3 downgrade",
		"F4 castle upgrade   F5 repair   F6 target mode   Esc clear   F9 pause",
		"",
		"press Enter to start",
	}
	for i, l := range lines {
		text.Draw(screen, l, face, x, y+40+i*20, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
