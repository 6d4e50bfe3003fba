// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"sort"
	"strings"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/system"
	"go-typing-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 120
	panelMargin    = 8
	animationSpeed = 10.0
	columnSpacing  = 400
)

// InfoPanel shows the selected slot, the turret catalog and the last command result.
type InfoPanel struct {
	IsVisible bool
	SlotID    int
	Message   string
	fontFace  font.Face
	cfg       *defs.GameConfig
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates a hidden panel.
func NewInfoPanel(face font.Face, cfg *defs.GameConfig) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		cfg:      cfg,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(slotID int) {
	p.SlotID = slotID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Report remembers the result of the last command.
func (p *InfoPanel) Report(action string, res system.CommandResult) {
	if res.Success {
		p.Message = action + ": ok" + costSuffix(" cost", res.Cost) + costSuffix(" refund", res.Refund)
		return
	}
	p.Message = action + ": " + res.Message
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY != p.targetY {
		p.currentY = utils.Approach(p.currentY, p.targetY, animationSpeed)
		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, st *component.GameState, archetype int) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, 0, y, config.ScreenWidth, panelHeight, config.BackgroundColor, false)
	vector.StrokeLine(screen, 0, y, config.ScreenWidth, y, 1, config.SlotColor, false)

	x := panelMargin
	line := int(y) + panelMargin + LineHeight
	for _, s := range p.slotLines(st) {
		text.Draw(screen, s, p.fontFace, x, line, config.TextLightColor)
		line += LineHeight
	}

	line = int(y) + panelMargin + LineHeight
	for i, arch := range p.cfg.Turrets {
		clr := config.SlotColor
		if i == archetype {
			clr = config.SelectedColor
		}
		s := fmt.Sprintf("%d %-14s %s", i+1, arch.Name, costString(system.TurretLevelCost(&p.cfg.Turrets[i], 1)))
		text.Draw(screen, s, p.fontFace, x+columnSpacing, line, clr)
		line += LineHeight
	}

	if p.Message != "" {
		text.Draw(screen, p.Message, p.fontFace, x+2*columnSpacing, int(y)+panelMargin+LineHeight, config.TypedColor)
	}
}

// slotLines describes the selected slot.
func (p *InfoPanel) slotLines(st *component.GameState) []string {
	var slot *component.TurretSlot
	for _, s := range st.Slots {
		if s.ID == p.SlotID {
			slot = s
		}
	}
	if slot == nil {
		return []string{"no slot selected"}
	}
	lines := []string{fmt.Sprintf("Slot %d  lane %d  mode %s", slot.ID, slot.Lane+1, slot.Mode)}
	if !slot.Unlocked {
		return append(lines, "locked")
	}
	if slot.Turret == nil {
		return append(lines, "empty")
	}
	arch, ok := p.cfg.Turret(slot.Turret.TypeID)
	if !ok {
		return append(lines, slot.Turret.TypeID)
	}
	stats := system.StatsFor(arch, slot.Turret.Level)
	lines = append(lines,
		fmt.Sprintf("%s L%d/%d", arch.Name, slot.Turret.Level, arch.MaxLevel),
		fmt.Sprintf("dmg %d  rate %.2f  range %d", stats.Damage, stats.FireRate, stats.Range),
	)
	if slot.Turret.Level < arch.MaxLevel {
		lines = append(lines, "upgrade "+costString(system.TurretLevelCost(arch, slot.Turret.Level+1)))
	}
	return lines
}

// costString formats a cost as "gold 100 stone 10" in name order.
func costString(c defs.Cost) string {
	keys := make([]string, 0, len(c))
	for k, v := range c {
		if v != 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %d", k, c[k]))
	}
	return strings.Join(parts, " ")
}

func costSuffix(label string, c defs.Cost) string {
	s := costString(c)
	if s == "" {
		return ""
	}
	return label + " " + s
}
