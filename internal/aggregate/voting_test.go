package aggregate

import (
	"testing"

	"github.com/maeel/garoustats/internal/model"
)

func withVotes(e model.PlayerGameEntry, votes ...model.VoteEvent) model.PlayerGameEntry {
	e.Votes = votes
	return e
}

func vote(meeting int, target string) model.VoteEvent {
	return model.VoteEvent{Meeting: meeting, Target: target}
}

func timedVote(meeting int, target string, offsetMs int) model.VoteEvent {
	return model.VoteEvent{Meeting: meeting, Target: target, OffsetMs: offsetMs, HasOffset: true}
}

func TestVoting_Counts(t *testing.T) {
	corpus := []model.GameRecord{
		game(1,
			withVotes(entry("alice", model.CampVillageois, true),
				vote(1, "wolf"),
				vote(2, model.SkipTarget),
				vote(3, ""),
			),
			entry("wolf", model.CampLoup, false),
		),
	}

	v := Voting(corpus)["alice"]
	if v.Meetings != 3 {
		t.Fatalf("meetings: want 3, got %d", v.Meetings)
	}
	if v.ActiveVotes != 1 || v.Skips != 1 || v.Abstentions != 1 {
		t.Errorf("counts: want 1/1/1, got %d/%d/%d", v.ActiveVotes, v.Skips, v.Abstentions)
	}
	if got := v.Aggressiveness(); got < -33.4 || got > -33.2 {
		t.Errorf("aggressiveness: want ~-33.3, got %f", got)
	}
}

func TestVoting_Accuracy(t *testing.T) {
	corpus := []model.GameRecord{
		game(1,
			withVotes(entry("alice", model.CampVillageois, true),
				vote(1, "wolf"),    // opposing camp
				vote(2, "bob"),     // own camp
				vote(3, "loner"),   // solo target: counts to neither
			),
			entry("bob", model.CampVillageois, true),
			entry("wolf", model.CampLoup, false),
			entry("loner", model.CampAgent, false),
		),
	}

	v := Voting(corpus)["alice"]
	if v.OpposingTargets != 1 || v.OwnCampTargets != 1 {
		t.Fatalf("accuracy inputs: want 1 opposing / 1 own, got %d / %d", v.OpposingTargets, v.OwnCampTargets)
	}
	if v.Accuracy() != 50.0 {
		t.Errorf("accuracy: want 50.0, got %f", v.Accuracy())
	}
}

// TestVoting_TimingExcludesOffsetlessVotes: votes without a timestamp offset
// contribute to counts but never to timing sums.
func TestVoting_TimingExcludesOffsetlessVotes(t *testing.T) {
	corpus := []model.GameRecord{
		game(1,
			withVotes(entry("alice", model.CampVillageois, true),
				timedVote(1, "wolf", 2000),
				vote(2, "wolf"), // no offset — excluded from timing
			),
			withVotes(entry("bob", model.CampVillageois, true),
				timedVote(1, "wolf", 500),
			),
			entry("wolf", model.CampLoup, false),
		),
	}

	stats := Voting(corpus)
	alice, bob := stats["alice"], stats["bob"]

	if alice.TimedVotes != 1 {
		t.Fatalf("alice timed votes: want 1, got %d", alice.TimedVotes)
	}
	// bob voted first (500ms), alice second: delay 1500ms, position 100%.
	if alice.AvgDelayMs() != 1500.0 {
		t.Errorf("alice delay: want 1500, got %f", alice.AvgDelayMs())
	}
	if alice.AvgPositionPct() != 100.0 {
		t.Errorf("alice position pct: want 100, got %f", alice.AvgPositionPct())
	}
	if bob.AvgDelayMs() != 0.0 || bob.AvgPositionPct() != 0.0 {
		t.Errorf("bob (first voter): want 0 delay / 0 position, got %f / %f", bob.AvgDelayMs(), bob.AvgPositionPct())
	}
}

func TestVoting_EmptyCorpus(t *testing.T) {
	if got := Voting(nil); len(got) != 0 {
		t.Errorf("empty corpus: want empty map, got %d entries", len(got))
	}
}
