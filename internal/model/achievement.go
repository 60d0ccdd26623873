package model

import (
	"encoding/json"
	"time"
)

// Category classifies an achievement for the presentation layer.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryPerformance Category = "performance"
	CategorySeries      Category = "series"
	CategoryKills       Category = "kills"
	CategoryHistory     Category = "history"
	CategoryComparison  Category = "comparison"
	CategoryMap         Category = "map"
	CategoryVoting      Category = "voting"
	CategoryLoot        Category = "loot"
)

// Polarity marks whether an achievement is flattering or not.
type Polarity string

const (
	PolarityGood Polarity = "good"
	PolarityBad  Polarity = "bad"
)

// Navigation is a structured hint telling the presentation layer where an
// achievement links to. It is a closed set of variants keyed by the
// achievement's category; the core treats the payload as opaque.
type Navigation interface {
	navigation()
}

// TabNav points at a dashboard tab, optionally a sub-tab.
type TabNav struct {
	Tab    string `json:"tab"`
	SubTab string `json:"subTab,omitempty"`
}

// ChartNav points at a specific chart section within a tab.
type ChartNav struct {
	Tab          string `json:"tab"`
	SubTab       string `json:"subTab,omitempty"`
	ChartSection string `json:"chartSection"`
}

// CompareNav points at the head-to-head view against a specific player.
type CompareNav struct {
	Opponent string `json:"opponent"`
}

func (TabNav) navigation()     {}
func (ChartNav) navigation()   {}
func (CompareNav) navigation() {}

func (n TabNav) MarshalJSON() ([]byte, error) {
	type alias TabNav
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{"tab", alias(n)})
}

func (n ChartNav) MarshalJSON() ([]byte, error) {
	type alias ChartNav
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{"chart", alias(n)})
}

func (n CompareNav) MarshalJSON() ([]byte, error) {
	type alias CompareNav
	return json.Marshal(struct {
		Kind string `json:"kind"`
		alias
	}{"compare", alias(n)})
}

// Achievement is one ranked or comparative fact about a player.
// ID is derived from the metric name plus the corpus-variant suffix so that
// regeneration over an unchanged corpus is idempotent. Rank is 0 for
// comparison-category facts, which carry no global rank. MinSample is the
// metric's eligibility threshold, carried as data rather than re-derived
// from the rendered description.
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Polarity    Polarity   `json:"polarity"`
	Category    Category   `json:"category"`
	Rank        int        `json:"rank,omitempty"`
	Value       float64    `json:"value"`
	TotalRanked int        `json:"totalRanked,omitempty"`
	MinSample   int        `json:"minSample,omitempty"`
	Nav         Navigation `json:"navigation"`
}

// Dossier is the per-player output of a full precompute run: one achievement
// list per corpus partition, never merged.
type Dossier struct {
	AllGames   []Achievement `json:"allGamesAchievements"`
	ModdedOnly []Achievement `json:"moddedOnlyAchievements"`
}

// ExportDoc is the persisted shape of an ahead-of-time run over every player.
type ExportDoc struct {
	GeneratedAt      time.Time          `json:"generatedAt"`
	TotalPlayers     int                `json:"totalPlayers"`
	TotalGames       int                `json:"totalGames"`
	TotalModdedGames int                `json:"totalModdedGames"`
	Players          map[string]Dossier `json:"players"`
}
