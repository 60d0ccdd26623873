package storage

import (
	"reflect"
	"testing"
	"time"

	"github.com/maeel/garoustats/internal/model"
)

func openMemDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// testCorpus keeps entries in player order and votes in meeting order, the
// order LoadCorpus reconstructs.
func testCorpus() []model.GameRecord {
	return []model.GameRecord{
		{
			ID:        "g001",
			StartedAt: time.Date(2023, 3, 1, 21, 0, 0, 0, time.UTC),
			Modded:    true,
			Entries: []model.PlayerGameEntry{
				{
					Player: "alice", RawName: "Alice", Camp: model.CampVillageois, Win: true,
					MapName: "chateau", TalkSeconds: 120.5, HasTalk: true,
					Votes: []model.VoteEvent{
						{Meeting: 1, Target: "bob", OffsetMs: 800, HasOffset: true},
						{Meeting: 2, Target: model.SkipTarget},
					},
				},
				{
					Player: "bob", RawName: "bob", Camp: model.CampLoup, Win: false,
					MapName: "chateau",
					Death:   &model.DeathEvent{Killer: "alice", Type: model.DeathVote, Meeting: 2},
				},
			},
		},
		{
			ID:        "g002",
			StartedAt: time.Date(2023, 3, 2, 21, 0, 0, 0, time.UTC),
			Entries: []model.PlayerGameEntry{
				{Player: "alice", RawName: "Alice", Camp: model.CampLoup, Win: false, MapName: "village"},
			},
		},
	}
}

func TestInsertAndLoadCorpus(t *testing.T) {
	db := openMemDB(t)
	want := testCorpus()

	if err := db.InsertGames(want); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := db.LoadCorpus()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("roundtrip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

// TestInsertGames_Idempotent: re-loading the same corpus must not duplicate
// rows.
func TestInsertGames_Idempotent(t *testing.T) {
	db := openMemDB(t)
	want := testCorpus()

	for i := 0; i < 2; i++ {
		if err := db.InsertGames(want); err != nil {
			t.Fatalf("insert pass %d: %v", i, err)
		}
	}
	got, err := db.LoadCorpus()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("double insert mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestListGames_NewestFirst(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertGames(testCorpus()); err != nil {
		t.Fatal(err)
	}

	got, err := db.ListGames()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 summaries, got %d", len(got))
	}
	if got[0].ID != "g002" || got[1].ID != "g001" {
		t.Errorf("order: want g002,g001, got %s,%s", got[0].ID, got[1].ID)
	}
	if got[1].Players != 2 || !got[1].Modded || got[1].MapName != "chateau" {
		t.Errorf("g001 summary: got %+v", got[1])
	}
}

func TestGetOverview(t *testing.T) {
	db := openMemDB(t)

	empty, err := db.GetOverview()
	if err != nil {
		t.Fatal(err)
	}
	if empty.TotalGames != 0 || empty.UniquePlayers != 0 || empty.FirstGame != "" {
		t.Errorf("empty overview: got %+v", empty)
	}

	if err := db.InsertGames(testCorpus()); err != nil {
		t.Fatal(err)
	}
	ov, err := db.GetOverview()
	if err != nil {
		t.Fatal(err)
	}
	if ov.TotalGames != 2 || ov.ModdedGames != 1 || ov.UniquePlayers != 2 {
		t.Errorf("overview counts: got %+v", ov)
	}
	if ov.FirstGame != "2023-03-01T21:00:00Z" || ov.LastGame != "2023-03-02T21:00:00Z" {
		t.Errorf("overview bounds: got %+v", ov)
	}
}

func TestGetCampBreakdown(t *testing.T) {
	db := openMemDB(t)
	if err := db.InsertGames(testCorpus()); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetCampBreakdown()
	if err != nil {
		t.Fatal(err)
	}
	want := []CampCount{
		{Camp: string(model.CampLoup), Games: 2, Wins: 0},
		{Camp: string(model.CampVillageois), Games: 1, Wins: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("breakdown: got %+v, want %+v", got, want)
	}
}
