// Package achievement joins aggregator rankings with a target player and
// renders the typed achievement facts the presentation layer consumes.
package achievement

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maeel/garoustats/internal/corpus"
	"github.com/maeel/garoustats/internal/model"
	"github.com/maeel/garoustats/internal/rank"
	"github.com/maeel/garoustats/internal/relation"
)

// Corpus-variant suffixes. Achievement ids embed the suffix so the two
// partitions can never collide for the same metric.
const (
	VariantAll    = ""
	VariantModded = "-modded"
)

// Partition holds one corpus variant with its aggregates and rankings
// precomputed, ready to assemble achievements for any number of players.
type Partition struct {
	corpus   []model.GameRecord
	suffix   string
	aggs     *aggregates
	rankings map[string]*rank.Ranking
}

// NewPartition folds the corpus once and builds one ranking per registered
// metric. The corpus slice is treated as immutable from here on.
func NewPartition(games []model.GameRecord, suffix string) *Partition {
	p := &Partition{
		corpus:   games,
		suffix:   suffix,
		aggs:     fold(games),
		rankings: make(map[string]*rank.Ranking, len(metricTable)),
	}
	for _, def := range metricTable {
		values, samples := def.extract(p.aggs)
		p.rankings[def.name] = rank.Build(values, samples, def.minSample, def.ascending)
	}
	return p
}

// Players returns the canonical ids of every player in the partition,
// sorted ascending.
func (p *Partition) Players() []string {
	players := make([]string, 0, len(p.aggs.part))
	for player := range p.aggs.part {
		players = append(players, player)
	}
	sort.Strings(players)
	return players
}

// Ranking returns the full ranking for a registered metric name, or nil.
func (p *Partition) Ranking(name string) *rank.Ranking {
	return p.rankings[name]
}

// Build assembles the achievement list for one player over this partition.
// A player below a metric's eligibility threshold, or a metric with an
// empty aggregate (older corpus eras lack voting or talk data), simply
// contributes nothing; absence is the expected state, not an error.
// The result is never nil: an empty partition encodes as [] so consumers
// of the export document always see both lists.
func (p *Partition) Build(player string) []model.Achievement {
	out := make([]model.Achievement, 0, len(metricTable))
	for _, def := range metricTable {
		r := p.rankings[def.name]
		if r == nil || r.Len() == 0 {
			continue
		}
		s, ok := r.Lookup(player)
		if !ok {
			continue
		}
		detail := ""
		if def.detail != nil {
			detail = def.detail(p.aggs, player)
		}
		out = append(out, model.Achievement{
			ID:          def.name + p.suffix,
			Title:       def.title,
			Description: def.describe(s, detail),
			Polarity:    def.polarity,
			Category:    def.category,
			Rank:        s.Rank,
			Value:       s.Value,
			TotalRanked: s.TotalRanked,
			MinSample:   def.minSample,
			Nav:         def.nav,
		})
	}
	out = append(out, p.comparisons(player)...)
	return out
}

// comparisons renders the pairwise superlatives. These facts carry no
// global rank; their value is the relationship's win rate.
func (p *Partition) comparisons(player string) []model.Achievement {
	rels := relation.Compute(player, p.corpus, minShared)
	if len(rels) == 0 {
		return nil
	}
	sup := relation.Extract(rels, minShared)

	var out []model.Achievement
	add := func(name, title string, polarity model.Polarity, r *model.RelationStats, value float64, desc string) {
		out = append(out, model.Achievement{
			ID:          name + p.suffix,
			Title:       title,
			Description: desc,
			Polarity:    polarity,
			Category:    model.CategoryComparison,
			Value:       value,
			MinSample:   minShared,
			Nav:         model.CompareNav{Opponent: r.Other},
		})
	}

	if r := sup.BestTeammate; r != nil {
		add("best-teammate", "Duo de choc", model.PolarityGood, r, r.SameCampWinRate(),
			fmt.Sprintf("%.1f %% de victoires aux côtés de %s (%d parties dans le même camp, min. %d)",
				r.SameCampWinRate(), r.Other, r.SameCampGames, minShared))
	}
	if r := sup.WorstTeammate; r != nil {
		add("worst-teammate", "Association de malfaiteurs", model.PolarityBad, r, r.SameCampWinRate(),
			fmt.Sprintf("seulement %.1f %% de victoires aux côtés de %s (%d parties dans le même camp, min. %d)",
				r.SameCampWinRate(), r.Other, r.SameCampGames, minShared))
	}
	if r := sup.BestMatchup; r != nil {
		add("best-matchup", "Bête noire", model.PolarityGood, r, r.OpposingWinRate(),
			fmt.Sprintf("%.1f %% de victoires face à %s (%d parties en camps opposés, min. %d)",
				r.OpposingWinRate(), r.Other, r.OpposingGames, minShared))
	}
	if r := sup.WorstMatchup; r != nil {
		add("worst-matchup", "Mauvais souvenir", model.PolarityBad, r, r.OpposingWinRate(),
			fmt.Sprintf("seulement %.1f %% de victoires face à %s (%d parties en camps opposés, min. %d)",
				r.OpposingWinRate(), r.Other, r.OpposingGames, minShared))
	}
	return out
}

// Build assembles both partition lists for one player from a raw corpus.
func Build(games []model.GameRecord, player string) model.Dossier {
	return model.Dossier{
		AllGames:   NewPartition(games, VariantAll).Build(player),
		ModdedOnly: NewPartition(corpus.ModdedOnly(games), VariantModded).Build(player),
	}
}

// BuildAll precomputes every player's dossier over both corpus partitions.
// Per-player assembly is independent, so players are mapped in parallel;
// the shared partitions are read-only once constructed. workers <= 0 uses
// one worker per CPU.
func BuildAll(games []model.GameRecord, workers int) (*model.ExportDoc, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	modded := corpus.ModdedOnly(games)
	all := NewPartition(games, VariantAll)
	moddedPart := NewPartition(modded, VariantModded)

	players := all.Players()
	dossiers := make([]model.Dossier, len(players))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, player := range players {
		g.Go(func() error {
			dossiers[i] = model.Dossier{
				AllGames:   all.Build(player),
				ModdedOnly: moddedPart.Build(player),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc := &model.ExportDoc{
		GeneratedAt:      time.Now().UTC(),
		TotalPlayers:     len(players),
		TotalGames:       len(games),
		TotalModdedGames: len(modded),
		Players:          make(map[string]model.Dossier, len(players)),
	}
	for i, player := range players {
		doc.Players[player] = dossiers[i]
	}
	return doc, nil
}
