// internal/ui/castle_health_indicator.go
package ui

import (
	"fmt"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 14
	healthBarEase   = 0.15
)

// CastleHealthIndicator отображает здоровье замка полосой.
type CastleHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
	shown    float64
	primed   bool
}

// NewCastleHealthIndicator создает новый индикатор здоровья.
func NewCastleHealthIndicator(x, y float32, face font.Face) *CastleHealthIndicator {
	return &CastleHealthIndicator{X: x, Y: y, fontFace: face}
}

// HealthFraction is health/max clamped to [0, 1].
func HealthFraction(c component.CastleState) float32 {
	if c.MaxHealth <= 0 {
		return 0
	}
	f := float32(c.Health / float64(c.MaxHealth))
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Update eases the drawn fill toward the real health.
func (i *CastleHealthIndicator) Update(c component.CastleState) {
	target := float64(HealthFraction(c))
	if !i.primed {
		i.shown, i.primed = target, true
		return
	}
	i.shown = utils.Lerp(i.shown, target, healthBarEase)
}

func (i *CastleHealthIndicator) Draw(screen *ebiten.Image, c component.CastleState) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.LaneColor, false)
	fill := config.CastleColor
	if HealthFraction(c) < 0.33 {
		fill = config.EnemyColor
	}
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth*float32(i.shown), healthBarHeight, fill, false)
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, 1, config.TextLightColor, false)

	label := fmt.Sprintf("Castle L%d  %.0f/%d  armor %d", c.Level, c.Health, c.MaxHealth, c.Armor)
	if c.RepairCooldown > 0 {
		label += fmt.Sprintf("  repair %.0fs", c.RepairCooldown)
	}
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y)+healthBarHeight+LineHeight, config.TextLightColor)
}
