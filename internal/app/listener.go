// internal/app/listener.go
package app

import (
	"log"

	"go-typing-defense/internal/balance"
	"go-typing-defense/internal/event"
)

// GameEventListener обрабатывает события, важные для основного игрового цикла:
// счётчик убийств и проверка достижений.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	if e.Type == event.EnemyDefeated {
		l.game.kills++
	}
	l.game.checkMilestones(e.Time)
}

func (g *Game) progress() balance.ProgressSnapshot {
	st := g.World.State
	return balance.ProgressSnapshot{
		Kills:           g.kills,
		MaxCombo:        st.Typing.MaxCombo,
		PerfectWords:    st.Typing.PerfectWords,
		WavesCleared:    st.Analytics.Session.WavesCompleted,
		CastleLevel:     st.Castle.Level,
		FlawlessCleared: st.Analytics.Session.FlawlessWaves > 0,
	}
}

func (g *Game) checkMilestones(at float64) {
	st := g.World.State
	updated, added := balance.CheckMilestones(g.progress(), st.Milestones)
	if len(added) == 0 {
		return
	}
	st.Milestones = updated
	for _, id := range added {
		log.Printf("Milestone reached: %s", id)
		g.EventDispatcher.Publish(at, event.MilestonePayload{ID: id})
	}
}
