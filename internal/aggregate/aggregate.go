// Package aggregate computes per-player metric records from a normalized
// game corpus. Every aggregator is a pure fold over the same read-only
// corpus: no shared state, no ordering requirements between them, and the
// "all games" / "modded only" partitions reuse the same folds over a
// pre-filtered slice.
package aggregate

import (
	"github.com/maeel/garoustats/internal/model"
)

// Participation counts games and wins per player, and remembers each
// player's first game for seniority metrics. The corpus is expected in
// chronological order (the normalizer sorts it); FirstGame tracking still
// guards on timestamps so an unsorted corpus stays correct.
func Participation(corpus []model.GameRecord) map[string]*model.Participation {
	out := make(map[string]*model.Participation)
	for _, g := range corpus {
		for i := range g.Entries {
			e := &g.Entries[i]
			p := out[e.Player]
			if p == nil {
				p = &model.Participation{Player: e.Player}
				out[e.Player] = p
			}
			p.Games++
			if e.Win {
				p.Wins++
			}
			if p.FirstGameID == "" || g.StartedAt.Before(p.FirstGame) {
				p.FirstGame = g.StartedAt
				p.FirstGameID = g.ID
			}
		}
	}
	return out
}

// MapWinRates partitions each player's record by map identifier.
// Entries without a map identifier are excluded.
func MapWinRates(corpus []model.GameRecord) map[string]map[string]*model.MapRecord {
	out := make(map[string]map[string]*model.MapRecord)
	for _, g := range corpus {
		for i := range g.Entries {
			e := &g.Entries[i]
			if e.MapName == "" {
				continue
			}
			maps := out[e.Player]
			if maps == nil {
				maps = make(map[string]*model.MapRecord)
				out[e.Player] = maps
			}
			m := maps[e.MapName]
			if m == nil {
				m = &model.MapRecord{Player: e.Player, MapName: e.MapName}
				maps[e.MapName] = m
			}
			m.Games++
			if e.Win {
				m.Wins++
			}
		}
	}
	return out
}

// BestMap returns the player's best-win-rate map among maps with at least
// minGames played, breaking win-rate ties by more games, then map name.
func BestMap(maps map[string]*model.MapRecord, minGames int) (*model.MapRecord, bool) {
	var best *model.MapRecord
	for _, m := range maps {
		if m.Games < minGames {
			continue
		}
		if best == nil ||
			m.WinRate() > best.WinRate() ||
			(m.WinRate() == best.WinRate() && m.Games > best.Games) ||
			(m.WinRate() == best.WinRate() && m.Games == best.Games && m.MapName < best.MapName) {
			best = m
		}
	}
	return best, best != nil
}

// Talk sums talk-time metrics over the games that carry them. Corpus eras
// without talk tracking simply contribute nothing.
func Talk(corpus []model.GameRecord) map[string]*model.TalkStats {
	out := make(map[string]*model.TalkStats)
	for _, g := range corpus {
		for i := range g.Entries {
			e := &g.Entries[i]
			if !e.HasTalk {
				continue
			}
			t := out[e.Player]
			if t == nil {
				t = &model.TalkStats{Player: e.Player}
				out[e.Player] = t
			}
			t.Games++
			t.Seconds += e.TalkSeconds
		}
	}
	return out
}
