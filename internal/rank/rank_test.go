package rank

import "testing"

func TestBuild_EligibilityFilter(t *testing.T) {
	values := map[string]float64{"alice": 90, "bob": 99, "carol": 50}
	samples := map[string]int{"alice": 60, "bob": 10, "carol": 60}

	r := Build(values, samples, 50, false)

	if r.Len() != 2 {
		t.Fatalf("eligible population: want 2, got %d", r.Len())
	}
	// bob has the best raw value but never appears below the threshold.
	if _, ok := r.Lookup("bob"); ok {
		t.Error("bob is below the sample threshold and must not be ranked")
	}
	s, ok := r.Lookup("alice")
	if !ok {
		t.Fatal("alice should be ranked")
	}
	if s.Rank != 1 || s.Value != 90 || s.TotalRanked != 2 {
		t.Errorf("alice standing: want {1, 90, 2}, got %+v", s)
	}
	s, _ = r.Lookup("carol")
	if s.Rank != 2 {
		t.Errorf("carol rank: want 2, got %d", s.Rank)
	}
}

func TestBuild_Ascending(t *testing.T) {
	values := map[string]float64{"slow": 3000, "fast": 400}
	samples := map[string]int{"slow": 100, "fast": 100}

	r := Build(values, samples, 1, true)

	s, _ := r.Lookup("fast")
	if s.Rank != 1 {
		t.Errorf("ascending metric: lowest value should rank 1, got %d", s.Rank)
	}
}

// TestBuild_TieBreakByPlayerID: equal values order by canonical id, never by
// map iteration order.
func TestBuild_TieBreakByPlayerID(t *testing.T) {
	values := map[string]float64{"zoe": 50, "anna": 50, "mia": 50}
	samples := map[string]int{"zoe": 10, "anna": 10, "mia": 10}

	for range 20 {
		r := Build(values, samples, 1, false)
		got := []string{r.Entries[0].Player, r.Entries[1].Player, r.Entries[2].Player}
		want := []string{"anna", "mia", "zoe"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("tie order: want %v, got %v", want, got)
			}
		}
	}
}

func TestBuild_RankTotalConsistency(t *testing.T) {
	values := map[string]float64{"a": 1, "b": 2, "c": 3, "d": 4}
	samples := map[string]int{"a": 5, "b": 5, "c": 1, "d": 5}

	r := Build(values, samples, 2, false)

	for _, e := range r.Entries {
		s, ok := r.Lookup(e.Player)
		if !ok {
			t.Fatalf("%s: missing standing", e.Player)
		}
		if s.Rank < 1 || s.Rank > s.TotalRanked {
			t.Errorf("%s: rank %d outside [1, %d]", e.Player, s.Rank, s.TotalRanked)
		}
		if s.TotalRanked != 3 {
			t.Errorf("%s: totalRanked want 3, got %d", e.Player, s.TotalRanked)
		}
	}
}

func TestLookup_Missing(t *testing.T) {
	r := Build(map[string]float64{}, map[string]int{}, 1, false)
	if _, ok := r.Lookup("ghost"); ok {
		t.Error("empty ranking must report no standing")
	}
}
