package model

import "time"

// SkipTarget is the sentinel target id recorded when a player explicitly
// votes to skip a meeting (as opposed to not voting at all).
const SkipTarget = "__skip__"

// VoteEvent is one player's vote in one deliberation meeting.
// An empty Target means the player attended the meeting but cast no vote;
// SkipTarget means an explicit skip. OffsetMs is the delay from meeting
// start to the vote; older corpus entries carry no timing, in which case
// HasOffset is false and timing-based aggregates must skip the vote.
type VoteEvent struct {
	Meeting   int
	Target    string
	OffsetMs  int
	HasOffset bool
}

// Abstained reports whether this vote event is an attended-but-silent meeting.
func (v VoteEvent) Abstained() bool { return v.Target == "" }

// Skipped reports whether this vote event is an explicit skip.
func (v VoteEvent) Skipped() bool { return v.Target == SkipTarget }

// Active reports whether this vote targets another player.
func (v VoteEvent) Active() bool { return v.Target != "" && v.Target != SkipTarget }

// Death cause tags.
const (
	DeathWolf   = "wolf"   // killed during the night
	DeathVote   = "vote"   // voted out at a meeting
	DeathHunter = "hunter" // shot by the hunter
	DeathLover  = "lover"  // died of a broken heart
	DeathOther  = "other"
)

// DeathEvent records a player's elimination. Killer is the canonical id of
// the credited killer, empty for deaths with no killer (vote-outs count the
// vote itself, not a player).
type DeathEvent struct {
	Killer  string
	Type    string
	Meeting int
}

// PlayerGameEntry is one player's participation in one game.
// Player holds the canonical id produced by the identity resolver;
// RawName keeps the display name as it appeared in the source record.
type PlayerGameEntry struct {
	Player      string
	RawName     string
	Camp        Camp
	Win         bool
	MapName     string
	TalkSeconds float64
	HasTalk     bool
	Votes       []VoteEvent
	Death       *DeathEvent
}

// Meetings returns the number of meetings the player could vote in.
func (e *PlayerGameEntry) Meetings() int { return len(e.Votes) }

// GameRecord is one completed match.
type GameRecord struct {
	ID        string
	StartedAt time.Time
	Modded    bool
	Entries   []PlayerGameEntry
}

// Entry returns the entry for the given canonical player id, or nil.
func (g *GameRecord) Entry(player string) *PlayerGameEntry {
	for i := range g.Entries {
		if g.Entries[i].Player == player {
			return &g.Entries[i]
		}
	}
	return nil
}

// ---- Per-player aggregates ----

// Participation holds a player's overall game and win counts.
type Participation struct {
	Player      string
	Games       int
	Wins        int
	FirstGameID string
	FirstGame   time.Time
}

func (p *Participation) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return float64(p.Wins) / float64(p.Games) * 100
}

func (p *Participation) Losses() int { return p.Games - p.Wins }

// MapRecord holds a player's record on one map.
type MapRecord struct {
	Player  string
	MapName string
	Games   int
	Wins    int
}

func (m *MapRecord) WinRate() float64 {
	if m.Games == 0 {
		return 0
	}
	return float64(m.Wins) / float64(m.Games) * 100
}

// CampPerf holds a player's record in one macro-camp, with the differential
// against the population-wide average win rate for that camp.
type CampPerf struct {
	Player string
	Camp   Macro
	Games  int
	Wins   int
	Delta  float64 // player win rate minus population average, percentage points
}

func (c *CampPerf) WinRate() float64 {
	if c.Games == 0 {
		return 0
	}
	return float64(c.Wins) / float64(c.Games) * 100
}

// StreakKind enumerates the four tracked streak conditions.
type StreakKind int

const (
	StreakVillage StreakKind = iota // consecutive games in the Villageois macro-camp
	StreakWolf                     // consecutive games in the Loup macro-camp
	StreakWin
	StreakLoss
)

func (k StreakKind) String() string {
	switch k {
	case StreakVillage:
		return "village"
	case StreakWolf:
		return "wolf"
	case StreakWin:
		return "win"
	case StreakLoss:
		return "loss"
	default:
		return "?"
	}
}

// Streak is one run of consecutive qualifying games, bounded by the ids of
// the first and last game of the run.
type Streak struct {
	Length      int
	FirstGameID string
	LastGameID  string
}

// SeriesRecord holds the longest observed streak of each kind for one player.
// A later streak of equal length replaces the stored one, so the references
// always point at the most recent longest run.
type SeriesRecord struct {
	Player  string
	Village Streak
	Wolf    Streak
	Win     Streak
	Loss    Streak
}

// Longest returns the stored longest streak of the given kind.
func (s *SeriesRecord) Longest(kind StreakKind) Streak {
	switch kind {
	case StreakVillage:
		return s.Village
	case StreakWolf:
		return s.Wolf
	case StreakWin:
		return s.Win
	default:
		return s.Loss
	}
}

// KillTally holds kill/death counts for one player.
type KillTally struct {
	Player string
	Games  int
	Kills  int
	Deaths int
}

func (k *KillTally) KillsPerGame() float64 {
	if k.Games == 0 {
		return 0
	}
	return float64(k.Kills) / float64(k.Games)
}

func (k *KillTally) DeathRate() float64 {
	if k.Games == 0 {
		return 0
	}
	return float64(k.Deaths) / float64(k.Games) * 100
}

// VotingStats holds a player's voting behavior across all their meetings.
// Timing sums only cover votes that carried a timestamp offset.
type VotingStats struct {
	Player      string
	Meetings    int
	ActiveVotes int
	Skips       int
	Abstentions int

	// Accuracy inputs: active votes split by the target's camp relation.
	OpposingTargets int
	OwnCampTargets  int

	TimedVotes     int
	PositionPctSum float64
	DelayMsSum     float64
}

func (v *VotingStats) VoteRate() float64 {
	if v.Meetings == 0 {
		return 0
	}
	return float64(v.ActiveVotes) / float64(v.Meetings) * 100
}

func (v *VotingStats) SkipRate() float64 {
	if v.Meetings == 0 {
		return 0
	}
	return float64(v.Skips) / float64(v.Meetings) * 100
}

func (v *VotingStats) AbstainRate() float64 {
	if v.Meetings == 0 {
		return 0
	}
	return float64(v.Abstentions) / float64(v.Meetings) * 100
}

// Aggressiveness is the voting rate signed against the skip and abstention
// rates: +100 means a vote every meeting, -100 means never a vote. Only
// meaningful relative to other players.
func (v *VotingStats) Aggressiveness() float64 {
	if v.Meetings == 0 {
		return 0
	}
	return float64(v.ActiveVotes-v.Skips-v.Abstentions) / float64(v.Meetings) * 100
}

// Accuracy is the fraction of camp-relevant votes cast against the opposing
// camp rather than the player's own. Votes against unrelated camps count to
// neither side.
func (v *VotingStats) Accuracy() float64 {
	relevant := v.OpposingTargets + v.OwnCampTargets
	if relevant == 0 {
		return 0
	}
	return float64(v.OpposingTargets) / float64(relevant) * 100
}

// AvgPositionPct is the average position percentile among same-meeting
// voters (0 = always first to vote).
func (v *VotingStats) AvgPositionPct() float64 {
	if v.TimedVotes == 0 {
		return 0
	}
	return v.PositionPctSum / float64(v.TimedVotes)
}

// AvgDelayMs is the average delay behind the first voter of the meeting.
func (v *VotingStats) AvgDelayMs() float64 {
	if v.TimedVotes == 0 {
		return 0
	}
	return v.DelayMsSum / float64(v.TimedVotes)
}

// TalkStats holds talk-time totals over games that carried talk metrics.
type TalkStats struct {
	Player  string
	Games   int
	Seconds float64
}

func (t *TalkStats) AvgSeconds() float64 {
	if t.Games == 0 {
		return 0
	}
	return t.Seconds / float64(t.Games)
}

// RelationStats holds head-to-head and teammate statistics between a target
// player and one other player. Win counts are from the target's perspective;
// opposing-camp games can end with neither side winning, so the other
// player's symmetric entry is not simply the complement.
type RelationStats struct {
	Other         string
	SameCampGames int
	SameCampWins  int
	OpposingGames int
	OpposingWins  int
}

func (r *RelationStats) SameCampWinRate() float64 {
	if r.SameCampGames == 0 {
		return 0
	}
	return float64(r.SameCampWins) / float64(r.SameCampGames) * 100
}

func (r *RelationStats) OpposingWinRate() float64 {
	if r.OpposingGames == 0 {
		return 0
	}
	return float64(r.OpposingWins) / float64(r.OpposingGames) * 100
}
