package system

import (
	"log"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// EndMatch moves a running match to victory or defeat once. Later calls are no-ops.
func EndMatch(world *entity.World, eventDispatcher *event.Dispatcher, status component.MatchStatus) {
	st := world.State
	if st.Status == component.StatusVictory || st.Status == component.StatusDefeat {
		return
	}
	st.Status = status
	log.Printf("Match %s ended: %s (wave %d, score %d)", st.MatchID, status, st.Wave.Index+1, st.Score)
	eventDispatcher.Publish(st.Time, event.MatchEndedPayload{
		MatchID:   st.MatchID,
		Status:    string(status),
		WaveIndex: st.Wave.Index,
		Score:     st.Score,
	})
}
