package aggregate

import (
	"sort"

	"github.com/maeel/garoustats/internal/model"
)

// Voting folds every vote event in every game into per-player voting
// behavior: active/skip/abstention counts, accuracy against the target's
// camp relation, and timing stats over the votes that carry a timestamp
// offset. Votes without an offset are excluded from timing sums entirely,
// never treated as zero delay.
func Voting(corpus []model.GameRecord) map[string]*model.VotingStats {
	out := make(map[string]*model.VotingStats)
	get := func(player string) *model.VotingStats {
		v := out[player]
		if v == nil {
			v = &model.VotingStats{Player: player}
			out[player] = v
		}
		return v
	}

	for _, g := range corpus {
		campOf := make(map[string]model.Camp, len(g.Entries))
		for i := range g.Entries {
			campOf[g.Entries[i].Player] = g.Entries[i].Camp
		}

		// timedVote is one timestamped vote within a meeting, across all voters.
		type timedVote struct {
			player   string
			offsetMs int
		}
		timedByMeeting := make(map[int][]timedVote)

		for i := range g.Entries {
			e := &g.Entries[i]
			v := get(e.Player)
			v.Meetings += e.Meetings()
			for _, vote := range e.Votes {
				switch {
				case vote.Abstained():
					v.Abstentions++
				case vote.Skipped():
					v.Skips++
				default:
					v.ActiveVotes++
					if target, ok := campOf[vote.Target]; ok {
						if model.Opposes(e.Camp, target) {
							v.OpposingTargets++
						} else if sameMainCamp(e.Camp, target) {
							v.OwnCampTargets++
						}
					}
				}
				if vote.HasOffset && !vote.Abstained() {
					timedByMeeting[vote.Meeting] = append(timedByMeeting[vote.Meeting], timedVote{e.Player, vote.OffsetMs})
				}
			}
		}

		// Timing: position percentile among same-meeting voters and delay
		// behind the meeting's first voter.
		for _, votes := range timedByMeeting {
			sort.Slice(votes, func(i, j int) bool {
				if votes[i].offsetMs != votes[j].offsetMs {
					return votes[i].offsetMs < votes[j].offsetMs
				}
				return votes[i].player < votes[j].player
			})
			first := votes[0].offsetMs
			for idx, tv := range votes {
				v := get(tv.player)
				v.TimedVotes++
				if len(votes) > 1 {
					v.PositionPctSum += float64(idx) / float64(len(votes)-1) * 100
				}
				v.DelayMsSum += float64(tv.offsetMs - first)
			}
		}
	}
	return out
}

// sameMainCamp reports whether both camps belong to the same main faction.
// Solo roles have no "own camp" for accuracy purposes.
func sameMainCamp(a, b model.Camp) bool {
	ra, rb := model.RelationOf(a), model.RelationOf(b)
	return !ra.Solo && !rb.Solo && ra.Macro == rb.Macro
}
