// Package rank turns any per-player metric map into a stable ranking with
// minimum-sample eligibility and per-player standing lookup.
package rank

import "sort"

// Entry is one eligible player's position in a ranking.
type Entry struct {
	Player string
	Value  float64
	Sample int
}

// Standing locates one player within a ranking. TotalRanked counts the
// eligible population, not the full player set.
type Standing struct {
	Rank        int
	Value       float64
	TotalRanked int
}

// Ranking is a sorted, eligibility-filtered view over one metric.
type Ranking struct {
	Entries []Entry
	pos     map[string]int
}

// Build filters out players whose sample is below minSample, then sorts the
// rest: descending by value unless ascending is set (for metrics where lower
// is better, e.g. average vote delay). Ties break by canonical player id
// ascending, so the order never depends on map iteration.
func Build(values map[string]float64, samples map[string]int, minSample int, ascending bool) *Ranking {
	entries := make([]Entry, 0, len(values))
	for player, value := range values {
		if samples[player] < minSample {
			continue
		}
		entries = append(entries, Entry{Player: player, Value: value, Sample: samples[player]})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			if ascending {
				return entries[i].Value < entries[j].Value
			}
			return entries[i].Value > entries[j].Value
		}
		return entries[i].Player < entries[j].Player
	})

	pos := make(map[string]int, len(entries))
	for i, e := range entries {
		pos[e.Player] = i
	}
	return &Ranking{Entries: entries, pos: pos}
}

// Lookup returns the player's standing, or false if the player is not in
// the eligible set. Callers treat the miss as "no achievement", never as an
// error.
func (r *Ranking) Lookup(player string) (Standing, bool) {
	i, ok := r.pos[player]
	if !ok {
		return Standing{}, false
	}
	return Standing{
		Rank:        i + 1,
		Value:       r.Entries[i].Value,
		TotalRanked: len(r.Entries),
	}, true
}

// Len returns the size of the eligible population.
func (r *Ranking) Len() int { return len(r.Entries) }
