package component

import "go-typing-defense/internal/types"

// TypingState is the player's keystroke state. Buffer is non-empty only while
// ActiveEnemy is set.
type TypingState struct {
	ActiveEnemy           types.EntityID
	Buffer                string
	Combo                 int
	MaxCombo              int
	ComboTimer            float64
	ComboWarning          bool
	Errors                int
	Window                []bool
	RollingAccuracy       float64
	DynamicDifficultyBias float64
	CorrectChars          int
	PerfectWords          int
	WordsCompleted        int
	LastChar              rune
	LastCharAt            float64
	FirstInputAt          float64 // -1 until the first keystroke
}

// NewTypingState returns the state at match start.
func NewTypingState() TypingState {
	return TypingState{RollingAccuracy: 1, FirstInputAt: -1, LastCharAt: -1}
}
