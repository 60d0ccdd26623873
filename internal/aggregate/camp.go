package aggregate

import "github.com/maeel/garoustats/internal/model"

// CampPerformance computes each player's record per macro-camp along with
// the differential against the population average for that camp.
//
// Two passes: first the population-wide win rate per macro-camp over the
// whole corpus, then each player's delta against it. Solo roles are skipped;
// a solo "camp average" would mix unrelated win conditions.
func CampPerformance(corpus []model.GameRecord) map[string]map[model.Macro]*model.CampPerf {
	// ---- Pass 1: population average per macro-camp. ----
	type campTotals struct{ games, wins int }
	totals := make(map[model.Macro]*campTotals)
	for _, g := range corpus {
		for i := range g.Entries {
			e := &g.Entries[i]
			macro := model.MacroOf(e.Camp)
			if macro != model.MacroVillage && macro != model.MacroWolf {
				continue
			}
			t := totals[macro]
			if t == nil {
				t = &campTotals{}
				totals[macro] = t
			}
			t.games++
			if e.Win {
				t.wins++
			}
		}
	}
	avg := make(map[model.Macro]float64, len(totals))
	for macro, t := range totals {
		if t.games > 0 {
			avg[macro] = float64(t.wins) / float64(t.games) * 100
		}
	}

	// ---- Pass 2: per-player records and deltas. ----
	out := make(map[string]map[model.Macro]*model.CampPerf)
	for _, g := range corpus {
		for i := range g.Entries {
			e := &g.Entries[i]
			macro := model.MacroOf(e.Camp)
			if macro != model.MacroVillage && macro != model.MacroWolf {
				continue
			}
			camps := out[e.Player]
			if camps == nil {
				camps = make(map[model.Macro]*model.CampPerf)
				out[e.Player] = camps
			}
			c := camps[macro]
			if c == nil {
				c = &model.CampPerf{Player: e.Player, Camp: macro}
				camps[macro] = c
			}
			c.Games++
			if e.Win {
				c.Wins++
			}
		}
	}
	for _, camps := range out {
		for macro, c := range camps {
			c.Delta = c.WinRate() - avg[macro]
		}
	}
	return out
}
