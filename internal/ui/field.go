// internal/ui/field.go
package ui

import (
	"image/color"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FieldRenderer рисует линии, замок, слоты, врагов и снаряды.
type FieldRenderer struct {
	fontFace font.Face
	lanes    int
}

func NewFieldRenderer(face font.Face, lanes int) *FieldRenderer {
	return &FieldRenderer{fontFace: face, lanes: lanes}
}

func (r *FieldRenderer) Draw(screen *ebiten.Image, st *component.GameState, selectedSlot int) {
	screen.Fill(config.BackgroundColor)

	for lane := 0; lane < r.lanes; lane++ {
		y := LaneY(lane)
		clr := config.LaneColor
		for _, le := range st.LaneEffects {
			if le.Lane == lane {
				clr = render.Blend(config.LaneColor, config.BossColor, 0.3) // shockwave
			}
		}
		vector.DrawFilledRect(screen, FieldLeft, y-EnemyRadius-4, FieldRight-FieldLeft, 2*EnemyRadius+8, clr, false)
	}
	top := LaneY(0) - EnemyRadius - 4
	height := LaneY(r.lanes-1) - top + EnemyRadius + 4
	vector.DrawFilledRect(screen, FieldLeft-CastleWidth, top, CastleWidth, height, config.CastleColor, false)

	for _, slot := range st.Slots {
		r.drawSlot(screen, slot, slot.ID == selectedSlot)
	}
	for _, p := range st.Projectiles {
		vector.DrawFilledCircle(screen, DistanceX(p.Position), LaneY(p.Lane), 3, config.ProjectileColor, true)
	}
	for _, e := range st.Enemies {
		if e.Alive() {
			r.drawEnemy(screen, e, e.ID == st.Typing.ActiveEnemy)
		}
	}
}

func (r *FieldRenderer) drawSlot(screen *ebiten.Image, slot *component.TurretSlot, selected bool) {
	x := ScreenX(slot.X) - SlotSize/2
	y := LaneY(slot.Lane) + SlotOffset
	if !slot.Unlocked {
		vector.StrokeRect(screen, x, y, SlotSize, SlotSize, 1, render.DarkenColor(config.SlotColor, 0.5), false)
		return
	}
	vector.DrawFilledRect(screen, x, y, SlotSize, SlotSize, config.SlotColor, false)
	if slot.Turret != nil {
		label := slot.Turret.TypeID[:1]
		text.Draw(screen, label, r.fontFace, int(x)+8, int(y)+15, config.BackgroundColor)
		for i := 0; i < slot.Turret.Level; i++ {
			vector.DrawFilledRect(screen, x+float32(i)*6, y+SlotSize+2, 4, 4, config.ProjectileColor, false)
		}
	}
	if selected {
		vector.StrokeRect(screen, x-2, y-2, SlotSize+4, SlotSize+4, 2, config.SelectedColor, false)
	}
}

// EnemyColor picks the body color of an enemy.
func EnemyColor(e *component.Enemy) color.Color {
	switch {
	case e.Transport:
		return config.TransportColor
	case e.Boss:
		return config.BossColor
	case len(e.Affixes) > 0:
		return config.EliteColor
	}
	return config.EnemyColor
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy, targeted bool) {
	x := DistanceX(e.Distance)
	y := LaneY(e.Lane)
	vector.DrawFilledCircle(screen, x, y, EnemyRadius, EnemyColor(e), true)
	if e.ShieldValue() > 0 {
		vector.StrokeCircle(screen, x, y, EnemyRadius+3, 2, config.TransportColor, true)
	}
	if targeted {
		vector.StrokeCircle(screen, x, y, EnemyRadius+6, 1, config.SelectedColor, true)
	}

	// Полоска здоровья.
	if e.MaxHealth > 0 {
		w := float32(2 * EnemyRadius)
		vector.DrawFilledRect(screen, x-EnemyRadius, y+EnemyRadius+2, w, 3, config.LaneColor, false)
		vector.DrawFilledRect(screen, x-EnemyRadius, y+EnemyRadius+2, w*float32(e.Health)/float32(e.MaxHealth), 3, config.CastleColor, false)
	}

	// Слово: набранная часть жёлтым, остаток светлым.
	wx := int(x) - len(e.Word)*CharWidth/2
	wy := int(y) - EnemyRadius - 6
	typed := e.Word[:e.Typed]
	text.Draw(screen, typed, r.fontFace, wx, wy, config.TypedColor)
	text.Draw(screen, e.Remaining(), r.fontFace, wx+len(typed)*CharWidth, wy, config.TextLightColor)
}
