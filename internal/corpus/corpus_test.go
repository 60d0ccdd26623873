package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maeel/garoustats/internal/identity"
	"github.com/maeel/garoustats/internal/model"
)

func boolPtr(b bool) *bool        { return &b }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func normalize(t *testing.T, raws []RawGame, resolver *identity.Resolver) []model.GameRecord {
	t.Helper()
	if resolver == nil {
		resolver = identity.NewResolver(nil)
	}
	return Normalize(raws, resolver, zerolog.Nop())
}

func rawGame(id, startedAt string, players ...RawPlayer) RawGame {
	return RawGame{ID: id, StartedAt: startedAt, Players: players}
}

func rawPlayer(name, camp string, win bool) RawPlayer {
	return RawPlayer{Name: name, Camp: camp, Win: boolPtr(win)}
}

func TestNormalize_DropsIncompleteGames(t *testing.T) {
	raws := []RawGame{
		rawGame("", "2023-03-01T21:00:00Z", rawPlayer("alice", "Villageois", true)),
		rawGame("g2", "not-a-timestamp", rawPlayer("alice", "Villageois", true)),
		// Missing win flag on one player drops the whole game.
		rawGame("g3", "2023-03-03T21:00:00Z",
			rawPlayer("alice", "Villageois", true),
			RawPlayer{Name: "bob", Camp: "Loup"},
		),
		rawGame("g4", "2023-03-04T21:00:00Z", rawPlayer("alice", "Villageois", true)),
	}

	got := normalize(t, raws, nil)
	if len(got) != 1 || got[0].ID != "g4" {
		t.Fatalf("want only g4 to survive, got %+v", got)
	}
}

func TestNormalize_SortsChronologically(t *testing.T) {
	raws := []RawGame{
		rawGame("g-b", "2023-03-02T21:00:00Z", rawPlayer("alice", "Villageois", true)),
		rawGame("g-c", "2023-03-01T21:00:00Z", rawPlayer("alice", "Villageois", true)),
		// Same start time as g-c: id breaks the tie.
		rawGame("g-a", "2023-03-01T21:00:00Z", rawPlayer("alice", "Villageois", true)),
	}

	got := normalize(t, raws, nil)
	if len(got) != 3 {
		t.Fatalf("want 3 games, got %d", len(got))
	}
	for i, want := range []string{"g-a", "g-c", "g-b"} {
		if got[i].ID != want {
			t.Errorf("position %d: want %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestNormalize_CanonicalizesIdentities(t *testing.T) {
	resolver := identity.NewResolver(map[string]identity.AliasSet{
		"Ponce": {IDs: []string{"42"}, Names: []string{"poncefleur"}},
	})
	raws := []RawGame{
		rawGame("g1", "2023-03-01T21:00:00Z",
			RawPlayer{ID: "42", Name: "ponce_stream", Camp: "Loup", Win: boolPtr(true)},
		),
		rawGame("g2", "2023-03-02T21:00:00Z",
			rawPlayer("PonceFleur", "Villageois", false),
		),
	}

	got := normalize(t, raws, resolver)
	if len(got) != 2 {
		t.Fatalf("want 2 games, got %d", len(got))
	}
	for _, g := range got {
		e := g.Entry("Ponce")
		if e == nil {
			t.Fatalf("game %s: entry not canonicalized to Ponce: %+v", g.ID, g.Entries)
		}
	}
	if got[0].Entries[0].RawName != "ponce_stream" {
		t.Errorf("raw name must be preserved, got %s", got[0].Entries[0].RawName)
	}
}

func TestNormalize_ResolvesVoteTargetsAndKillers(t *testing.T) {
	resolver := identity.NewResolver(map[string]identity.AliasSet{
		"Ponce": {Names: []string{"poncefleur"}},
	})
	raws := []RawGame{
		rawGame("g1", "2023-03-01T21:00:00Z",
			RawPlayer{
				Name: "alice", Camp: "Villageois", Win: boolPtr(false),
				Votes: []RawVote{
					{Meeting: 1, Target: "poncefleur", OffsetMs: intPtr(1200)},
					{Meeting: 2, Target: "skip"},
					{Meeting: 3, Target: ""},
				},
				Death: &RawDeath{Killer: "PonceFleur", Type: model.DeathVote, Meeting: 3},
			},
			RawPlayer{Name: "poncefleur", Camp: "Loup", Win: boolPtr(true)},
		),
	}

	got := normalize(t, raws, resolver)
	if len(got) != 1 {
		t.Fatalf("want 1 game, got %d", len(got))
	}
	e := got[0].Entry("alice")
	if e == nil {
		t.Fatal("alice entry missing")
	}
	if len(e.Votes) != 3 {
		t.Fatalf("want 3 votes, got %d", len(e.Votes))
	}
	if e.Votes[0].Target != "Ponce" || !e.Votes[0].HasOffset || e.Votes[0].OffsetMs != 1200 {
		t.Errorf("vote 0: want canonical target Ponce at 1200ms, got %+v", e.Votes[0])
	}
	if !e.Votes[1].Skipped() {
		t.Errorf("vote 1: want skip, got %+v", e.Votes[1])
	}
	if !e.Votes[2].Abstained() || e.Votes[2].HasOffset {
		t.Errorf("vote 2: want untimed abstention, got %+v", e.Votes[2])
	}
	if e.Death == nil || e.Death.Killer != "Ponce" {
		t.Errorf("death killer: want canonical Ponce, got %+v", e.Death)
	}
}

func TestNormalize_TalkTracking(t *testing.T) {
	raws := []RawGame{
		rawGame("g1", "2023-03-01T21:00:00Z",
			RawPlayer{Name: "alice", Camp: "Villageois", Win: boolPtr(true), TalkSeconds: floatPtr(420.5)},
			rawPlayer("bob", "Loup", false),
		),
	}

	got := normalize(t, raws, nil)
	alice, bob := got[0].Entry("alice"), got[0].Entry("bob")
	if !alice.HasTalk || alice.TalkSeconds != 420.5 {
		t.Errorf("alice talk: want tracked 420.5s, got %+v", alice)
	}
	if bob.HasTalk {
		t.Error("bob has no talk measurement, must not be tracked")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	raws := []RawGame{
		rawGame("g1", "2023-03-01T21:00:00Z", rawPlayer("alice", "Villageois", true)),
	}
	data, err := json.Marshal(raws)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "corpus.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("want g1 back, got %+v", got)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestModdedOnly(t *testing.T) {
	games := []model.GameRecord{
		{ID: "g1", Modded: true},
		{ID: "g2"},
		{ID: "g3", Modded: true},
	}
	got := ModdedOnly(games)
	if len(got) != 2 || got[0].ID != "g1" || got[1].ID != "g3" {
		t.Errorf("want g1,g3, got %+v", got)
	}
	if got := ModdedOnly(nil); len(got) != 0 {
		t.Errorf("empty input: want empty output, got %+v", got)
	}
}
