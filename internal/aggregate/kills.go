package aggregate

import "github.com/maeel/garoustats/internal/model"

// Kills tallies kills credited (as the killer in other players' death
// events), own deaths, and games played per player.
func Kills(corpus []model.GameRecord) map[string]*model.KillTally {
	out := make(map[string]*model.KillTally)
	get := func(player string) *model.KillTally {
		k := out[player]
		if k == nil {
			k = &model.KillTally{Player: player}
			out[player] = k
		}
		return k
	}

	for _, g := range corpus {
		for i := range g.Entries {
			e := &g.Entries[i]
			k := get(e.Player)
			k.Games++
			if e.Death != nil {
				k.Deaths++
				if e.Death.Killer != "" && e.Death.Killer != e.Player {
					get(e.Death.Killer).Kills++
				}
			}
		}
	}
	return out
}
