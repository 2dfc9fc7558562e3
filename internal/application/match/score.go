package match

import (
	"fmt"

	"github.com/younwookim/pitch/internal/domain/entity"
)

// Scoreboard folds goal events into a running score
type Scoreboard struct {
	Goals      [entity.TeamCount]int
	LastScorer entity.Team
	LastTick   uint64
}

// Record applies a tick's events. It reports whether a goal was among them.
func (s *Scoreboard) Record(events []entity.Event) bool {
	scored := false
	for _, e := range events {
		if e.Kind != entity.EventGoal {
			continue
		}
		s.Goals[e.Team]++
		s.LastScorer = e.Team
		s.LastTick = e.Tick
		scored = true
	}
	return scored
}

// Total returns the number of goals scored by both sides
func (s *Scoreboard) Total() int {
	return s.Goals[entity.TeamHome] + s.Goals[entity.TeamAway]
}

func (s *Scoreboard) String() string {
	return fmt.Sprintf("%s %d - %d %s",
		entity.TeamHome, s.Goals[entity.TeamHome],
		s.Goals[entity.TeamAway], entity.TeamAway)
}
