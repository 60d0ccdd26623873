// Package relation computes head-to-head and teammate statistics between a
// target player and every other player sharing games with them.
package relation

import (
	"sort"

	"github.com/maeel/garoustats/internal/model"
)

// Badness cutoffs for the negative superlatives. A worst teammate or worst
// matchup is only surfaced below these win rates; a "worst" record above the
// cutoff is not worth an achievement.
const (
	worstTeammateCutoff = 60.0
	worstMatchupCutoff  = 40.0
)

// Compute builds the relationship list for a target player. Shared games
// split into two disjoint subsets: same macro-camp and mutually-opposing
// macro-camps per the static camp relation table. Games where the pair sits
// in unrelated camps (e.g. two different solo roles) count toward neither.
// Only relationships reaching minShared games in at least one subset are
// retained. Win counts are the target's wins; opposing-camp games can end
// with a third camp winning, so the other player's symmetric entry carries
// its own opposing-win count.
func Compute(target string, corpus []model.GameRecord, minShared int) []model.RelationStats {
	rels := make(map[string]*model.RelationStats)

	for _, g := range corpus {
		te := g.Entry(target)
		if te == nil {
			continue
		}
		for i := range g.Entries {
			oe := &g.Entries[i]
			if oe.Player == target {
				continue
			}
			var sameCamp bool
			switch {
			case sameMacroMain(te.Camp, oe.Camp):
				sameCamp = true
			case model.Opposes(te.Camp, oe.Camp):
				sameCamp = false
			default:
				continue
			}
			r := rels[oe.Player]
			if r == nil {
				r = &model.RelationStats{Other: oe.Player}
				rels[oe.Player] = r
			}
			if sameCamp {
				r.SameCampGames++
				if te.Win {
					r.SameCampWins++
				}
			} else {
				r.OpposingGames++
				if te.Win {
					r.OpposingWins++
				}
			}
		}
	}

	out := make([]model.RelationStats, 0, len(rels))
	for _, r := range rels {
		if r.SameCampGames >= minShared || r.OpposingGames >= minShared {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other < out[j].Other })
	return out
}

// sameMacroMain reports whether both camps are in the same main faction.
// Two solo roles are never "same camp" even when the role name matches;
// solo win conditions are individual.
func sameMacroMain(a, b model.Camp) bool {
	ra, rb := model.RelationOf(a), model.RelationOf(b)
	return !ra.Solo && !rb.Solo && ra.Macro == rb.Macro
}

// Superlatives are the extreme relationships extracted from a player's
// relation list.
type Superlatives struct {
	BestTeammate  *model.RelationStats
	WorstTeammate *model.RelationStats
	BestMatchup   *model.RelationStats
	WorstMatchup  *model.RelationStats
}

// Extract reduces the relationship list to its superlatives. Best teammate
// is the max same-camp win rate among entries with enough same-camp games;
// the worst teammate is only surfaced when distinct from the best and below
// the badness cutoff. Matchups work the same way over the opposing subset.
// Ties resolve to the earlier entry in the (id-sorted) list, keeping the
// reduction deterministic.
func Extract(rels []model.RelationStats, minShared int) Superlatives {
	var s Superlatives
	for i := range rels {
		r := &rels[i]
		if r.SameCampGames >= minShared {
			if s.BestTeammate == nil || r.SameCampWinRate() > s.BestTeammate.SameCampWinRate() {
				s.BestTeammate = r
			}
			if s.WorstTeammate == nil || r.SameCampWinRate() < s.WorstTeammate.SameCampWinRate() {
				s.WorstTeammate = r
			}
		}
		if r.OpposingGames >= minShared {
			if s.BestMatchup == nil || r.OpposingWinRate() > s.BestMatchup.OpposingWinRate() {
				s.BestMatchup = r
			}
			if s.WorstMatchup == nil || r.OpposingWinRate() < s.WorstMatchup.OpposingWinRate() {
				s.WorstMatchup = r
			}
		}
	}
	if s.WorstTeammate != nil {
		if s.WorstTeammate == s.BestTeammate || s.WorstTeammate.SameCampWinRate() >= worstTeammateCutoff {
			s.WorstTeammate = nil
		}
	}
	if s.WorstMatchup != nil {
		if s.WorstMatchup == s.BestMatchup || s.WorstMatchup.OpposingWinRate() >= worstMatchupCutoff {
			s.WorstMatchup = nil
		}
	}
	return s
}
