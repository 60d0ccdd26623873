// Package corpus loads raw game records from their JSON source and
// normalizes them into the canonical shape the aggregators consume.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/maeel/garoustats/internal/identity"
	"github.com/maeel/garoustats/internal/model"
)

// Raw JSON shapes, as exported by the session recorder. Victory flags and
// camps are pointers so that missing fields are distinguishable from zero
// values when validating.
type RawGame struct {
	ID        string      `json:"id"`
	StartedAt string      `json:"startedAt"`
	Modded    bool        `json:"modded"`
	MapName   string      `json:"map"`
	Players   []RawPlayer `json:"players"`
}

type RawPlayer struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Camp        string     `json:"camp"`
	Win         *bool      `json:"win"`
	TalkSeconds *float64   `json:"talkSeconds,omitempty"`
	Votes       []RawVote  `json:"votes,omitempty"`
	Death       *RawDeath  `json:"death,omitempty"`
}

type RawVote struct {
	Meeting  int    `json:"meeting"`
	Target   string `json:"target"` // "" = abstain, "skip" = explicit skip
	OffsetMs *int   `json:"offsetMs,omitempty"`
}

type RawDeath struct {
	Killer  string `json:"killer,omitempty"`
	Type    string `json:"type"`
	Meeting int    `json:"meeting"`
}

// Load reads and decodes a corpus JSON file.
func Load(path string) ([]RawGame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var games []RawGame
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	return games, nil
}

// Normalize canonicalizes every player identity and validates that each
// record carries the fields downstream aggregators rely on. Records missing
// required fields are dropped with a warning, never fatally: partial corpora
// are expected. Output is sorted by (StartedAt, ID) so the chronological
// sweep downstream sees a stable order.
func Normalize(raws []RawGame, resolver *identity.Resolver, log zerolog.Logger) []model.GameRecord {
	out := make([]model.GameRecord, 0, len(raws))

games:
	for _, rg := range raws {
		if rg.ID == "" {
			log.Warn().Str("startedAt", rg.StartedAt).Msg("dropping game without id")
			continue
		}
		startedAt, err := time.Parse(time.RFC3339, rg.StartedAt)
		if err != nil {
			log.Warn().Str("game", rg.ID).Str("startedAt", rg.StartedAt).Msg("dropping game with unparseable start time")
			continue
		}

		game := model.GameRecord{
			ID:        rg.ID,
			StartedAt: startedAt,
			Modded:    rg.Modded,
			Entries:   make([]model.PlayerGameEntry, 0, len(rg.Players)),
		}
		for _, rp := range rg.Players {
			if rp.Camp == "" || rp.Win == nil {
				log.Warn().Str("game", rg.ID).Str("player", rp.Name).Msg("dropping game with incomplete player entry")
				continue games
			}
			canonical := resolver.Resolve(rp.ID, rp.Name)
			if !resolver.Resolved(rp.ID, rp.Name) {
				log.Debug().Str("game", rg.ID).Str("name", rp.Name).Msg("unresolved identity, using raw name")
			}

			entry := model.PlayerGameEntry{
				Player:  canonical,
				RawName: rp.Name,
				Camp:    model.Camp(rp.Camp),
				Win:     *rp.Win,
				MapName: rg.MapName,
			}
			if rp.TalkSeconds != nil {
				entry.TalkSeconds = *rp.TalkSeconds
				entry.HasTalk = true
			}
			for _, rv := range rp.Votes {
				ve := model.VoteEvent{Meeting: rv.Meeting}
				switch rv.Target {
				case "":
					// attended, no vote
				case "skip":
					ve.Target = model.SkipTarget
				default:
					// Vote targets are display names in the source; resolve
					// them so accuracy aggregation compares canonical ids.
					ve.Target = resolver.Resolve("", rv.Target)
				}
				if rv.OffsetMs != nil {
					ve.OffsetMs = *rv.OffsetMs
					ve.HasOffset = true
				}
				entry.Votes = append(entry.Votes, ve)
			}
			if rp.Death != nil {
				death := model.DeathEvent{
					Type:    rp.Death.Type,
					Meeting: rp.Death.Meeting,
				}
				if death.Type == "" {
					death.Type = model.DeathOther
				}
				if rp.Death.Killer != "" {
					death.Killer = resolver.Resolve("", rp.Death.Killer)
				}
				entry.Death = &death
			}
			game.Entries = append(game.Entries, entry)
		}
		out = append(out, game)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].StartedAt.Before(out[j].StartedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ModdedOnly returns the subset of games played under the extended ruleset.
// The slice shares backing records with the input; records are read-only
// throughout the pipeline.
func ModdedOnly(games []model.GameRecord) []model.GameRecord {
	var out []model.GameRecord
	for _, g := range games {
		if g.Modded {
			out = append(out, g)
		}
	}
	return out
}
