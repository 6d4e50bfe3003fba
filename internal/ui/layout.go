// internal/ui/layout.go
package ui

import (
	"go-typing-defense/internal/config"
)

// Раскладка поля: замок слева, точка появления справа.
const (
	FieldLeft   = 120
	FieldRight  = config.ScreenWidth - 60
	FieldTop    = 150
	LaneGap     = 160
	CastleWidth = 60
	SlotSize    = 22
	SlotOffset  = 44
	EnemyRadius = 14
	CharWidth   = 7
	LineHeight  = 16
)

// ScreenX maps a grid X (0 at the castle) to a screen x.
func ScreenX(gridX int) float32 {
	return FieldLeft + float32(gridX)*float32(FieldRight-FieldLeft)/config.PathUnits
}

// DistanceX maps a normalized path distance (0 at spawn, 1 at the castle) to a screen x.
func DistanceX(distance float64) float32 {
	return FieldLeft + float32(1-distance)*(FieldRight-FieldLeft)
}

// LaneY is the screen y of a lane's center line.
func LaneY(lane int) float32 {
	return FieldTop + float32(lane)*LaneGap
}
