// internal/state/result_state.go
package state

import (
	"fmt"

	"go-typing-defense/internal/app"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// ResultState shows the session summary after victory or defeat.
type ResultState struct {
	sm    *StateMachine
	game  *app.Game
	lines []string
}

func NewResultState(sm *StateMachine, g *app.Game) *ResultState {
	return &ResultState{sm: sm, game: g}
}

func (r *ResultState) Enter() {
	r.lines = SummaryLines(r.game)
}

func (r *ResultState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		r.sm.StartMatch()
	}
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	for i, l := range r.lines {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.TypedColor
		}
		text.Draw(screen, l, basicfont.Face7x13, 120, 120+i*20, clr)
	}
}

func (r *ResultState) Exit() {}

// SummaryLines renders the session summary as text.
func SummaryLines(g *app.Game) []string {
	st := g.State()
	sum := g.SessionSummary()
	title := "DEFEAT"
	if st.Status == component.StatusVictory {
		title = "VICTORY"
	}
	lines := []string{
		fmt.Sprintf("%s  score %d", title, st.Score),
		fmt.Sprintf("waves cleared %d (flawless %d)", sum.WavesCompleted, sum.FlawlessWaves),
		fmt.Sprintf("enemies defeated %d, breaches %d", sum.EnemiesDefeated, sum.Breaches),
		fmt.Sprintf("perfect words %d, max combo %d", sum.PerfectWords, st.Typing.MaxCombo),
		fmt.Sprintf("damage: turrets %d, typing %d, shields broken %d", sum.TurretDamage, sum.TypingDamage, sum.ShieldBreaks),
		fmt.Sprintf("gold earned %d (bonus %d), repairs %d", sum.GoldEarned, sum.GoldBonus, sum.RepairsUsed),
		fmt.Sprintf("average reaction %.2fs", sum.AverageReactionTime),
	}
	if len(sum.Milestones) > 0 {
		lines = append(lines, fmt.Sprintf("milestones: %v", sum.Milestones))
	}
	return append(lines, "", "press Enter to play again")
}
