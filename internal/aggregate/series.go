package aggregate

import (
	"sort"

	"github.com/maeel/garoustats/internal/model"
)

// streakState tracks one running streak during the chronological sweep.
type streakState struct {
	running model.Streak
	longest model.Streak
}

// observe extends or resets the running streak for one game, updating the
// stored longest. A new streak of length equal to the stored longest
// replaces it, so the record always references the most recent longest run.
// Externally observable: achievement descriptions cite the run's games.
func (s *streakState) observe(gameID string, holds bool) {
	if !holds {
		s.running = model.Streak{}
		return
	}
	if s.running.Length == 0 {
		s.running.FirstGameID = gameID
	}
	s.running.Length++
	s.running.LastGameID = gameID
	if s.running.Length >= s.longest.Length {
		s.longest = s.running
	}
}

// Series runs a single chronological sweep over the corpus and records, per
// player, the longest streak of each kind: consecutive Villageois-camp games,
// consecutive Loup-camp games, consecutive wins, consecutive losses.
// "Consecutive" means consecutive among the player's own games; games the
// player sat out neither extend nor break a streak.
func Series(corpus []model.GameRecord) map[string]*model.SeriesRecord {
	ordered := make([]model.GameRecord, len(corpus))
	copy(ordered, corpus)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].StartedAt.Equal(ordered[j].StartedAt) {
			return ordered[i].StartedAt.Before(ordered[j].StartedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	type playerStreaks struct {
		village, wolf, win, loss streakState
	}
	states := make(map[string]*playerStreaks)

	for _, g := range ordered {
		for i := range g.Entries {
			e := &g.Entries[i]
			st := states[e.Player]
			if st == nil {
				st = &playerStreaks{}
				states[e.Player] = st
			}
			macro := model.MacroOf(e.Camp)
			st.village.observe(g.ID, macro == model.MacroVillage)
			st.wolf.observe(g.ID, macro == model.MacroWolf)
			st.win.observe(g.ID, e.Win)
			st.loss.observe(g.ID, !e.Win)
		}
	}

	out := make(map[string]*model.SeriesRecord, len(states))
	for player, st := range states {
		out[player] = &model.SeriesRecord{
			Player:  player,
			Village: st.village.longest,
			Wolf:    st.wolf.longest,
			Win:     st.win.longest,
			Loss:    st.loss.longest,
		}
	}
	return out
}
