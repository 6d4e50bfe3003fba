// internal/state/state.go
package state

import (
	"go-typing-defense/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// GameFactory builds a fresh match for the play screen.
type GameFactory func() *app.Game

// StateMachine — структура для управления экранами
type StateMachine struct {
	current State
	newGame GameFactory
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine(newGame GameFactory) *StateMachine {
	return &StateMachine{newGame: newGame}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active screen.
func (sm *StateMachine) Current() State {
	return sm.current
}

// StartMatch builds a match with the factory and switches to the play screen.
func (sm *StateMachine) StartMatch() {
	g := sm.newGame()
	g.Start()
	sm.SetState(NewGameState(sm, g))
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
