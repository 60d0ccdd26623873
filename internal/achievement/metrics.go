package achievement

import (
	"fmt"
	"time"

	"github.com/maeel/garoustats/internal/aggregate"
	"github.com/maeel/garoustats/internal/model"
	"github.com/maeel/garoustats/internal/rank"
)

// aggregates bundles every aggregator's output over one corpus partition.
type aggregates struct {
	part   map[string]*model.Participation
	maps   map[string]map[string]*model.MapRecord
	camps  map[string]map[model.Macro]*model.CampPerf
	series map[string]*model.SeriesRecord
	kills  map[string]*model.KillTally
	voting map[string]*model.VotingStats
	talk   map[string]*model.TalkStats
}

func fold(corpus []model.GameRecord) *aggregates {
	return &aggregates{
		part:   aggregate.Participation(corpus),
		maps:   aggregate.MapWinRates(corpus),
		camps:  aggregate.CampPerformance(corpus),
		series: aggregate.Series(corpus),
		kills:  aggregate.Kills(corpus),
		voting: aggregate.Voting(corpus),
		talk:   aggregate.Talk(corpus),
	}
}

// metricDef is one row of the static metric table: everything Achievement
// Assembly needs to turn a ranking standing into a rendered achievement.
// The eligibility threshold lives here as data; descriptions mention it for
// humans but are never parsed back.
type metricDef struct {
	name      string
	category  model.Category
	polarity  model.Polarity
	minSample int
	ascending bool
	title     string
	nav       model.Navigation

	// extract pulls (value, sample) per player out of the aggregates.
	extract func(a *aggregates) (map[string]float64, map[string]int)
	// detail, when set, supplies a per-player fragment for the description
	// (map name, streak bounds).
	detail func(a *aggregates, player string) string
	// describe renders the description from the standing and the detail.
	describe func(s rank.Standing, detail string) string
}

// Sample-size thresholds. These gate ranking eligibility per metric.
const (
	minGamesWinRate  = 50
	minGamesLosses   = 25
	minGamesCamp     = 25
	minGamesStreak   = 10
	minGamesKills    = 25
	minGamesTalk     = 25
	minGamesMap      = 10
	minMeetingsVotes = 50
	minRelevantVotes = 50
	minTimedVotes    = 25

	// minShared gates pairwise relationships (shared games in one subset).
	minShared = 10
)

func participationMetric(get func(p *model.Participation) float64) func(a *aggregates) (map[string]float64, map[string]int) {
	return func(a *aggregates) (map[string]float64, map[string]int) {
		values := make(map[string]float64, len(a.part))
		samples := make(map[string]int, len(a.part))
		for player, p := range a.part {
			values[player] = get(p)
			samples[player] = p.Games
		}
		return values, samples
	}
}

func campMetric(macro model.Macro) func(a *aggregates) (map[string]float64, map[string]int) {
	return func(a *aggregates) (map[string]float64, map[string]int) {
		values := make(map[string]float64)
		samples := make(map[string]int)
		for player, camps := range a.camps {
			if c, ok := camps[macro]; ok {
				values[player] = c.Delta
				samples[player] = c.Games
			}
		}
		return values, samples
	}
}

func streakMetric(kind model.StreakKind) func(a *aggregates) (map[string]float64, map[string]int) {
	return func(a *aggregates) (map[string]float64, map[string]int) {
		values := make(map[string]float64)
		samples := make(map[string]int)
		for player, s := range a.series {
			streak := s.Longest(kind)
			if streak.Length == 0 {
				continue
			}
			values[player] = float64(streak.Length)
			if p, ok := a.part[player]; ok {
				samples[player] = p.Games
			}
		}
		return values, samples
	}
}

func streakDetail(kind model.StreakKind) func(a *aggregates, player string) string {
	return func(a *aggregates, player string) string {
		s, ok := a.series[player]
		if !ok {
			return ""
		}
		streak := s.Longest(kind)
		if streak.Length == 0 {
			return ""
		}
		return fmt.Sprintf("du match %s au match %s", streak.FirstGameID, streak.LastGameID)
	}
}

// metricTable is the full static registry. Order here is the order
// achievements appear in a player's list.
var metricTable = []metricDef{
	{
		name:      "games-played",
		category:  model.CategoryGeneral,
		polarity:  model.PolarityGood,
		minSample: 1,
		title:     "Pilier du village",
		nav:       model.TabNav{Tab: "stats"},
		extract:   participationMetric(func(p *model.Participation) float64 { return float64(p.Games) }),
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.0f parties jouées — n°%d sur %d", s.Value, s.Rank, s.TotalRanked)
		},
	},
	{
		name:      "win-rate",
		category:  model.CategoryGeneral,
		polarity:  model.PolarityGood,
		minSample: minGamesWinRate,
		title:     "Machine à gagner",
		nav:       model.TabNav{Tab: "stats"},
		extract:   participationMetric(func(p *model.Participation) float64 { return p.WinRate() }),
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.1f %% de victoires — n°%d sur %d (min. %d parties)",
				s.Value, s.Rank, s.TotalRanked, minGamesWinRate)
		},
	},
	{
		name:      "losses",
		category:  model.CategoryGeneral,
		polarity:  model.PolarityBad,
		minSample: minGamesLosses,
		title:     "Poissard",
		nav:       model.TabNav{Tab: "stats"},
		extract:   participationMetric(func(p *model.Participation) float64 { return float64(p.Losses()) }),
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.0f défaites encaissées — n°%d sur %d (min. %d parties)",
				s.Value, s.Rank, s.TotalRanked, minGamesLosses)
		},
	},
	{
		name:      "talk-time",
		category:  model.CategoryGeneral,
		polarity:  model.PolarityGood,
		minSample: minGamesTalk,
		title:     "Moulin à paroles",
		nav:       model.TabNav{Tab: "stats", SubTab: "talk"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, t := range a.talk {
				values[player] = t.AvgSeconds()
				samples[player] = t.Games
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.0f s de parole par partie — n°%d sur %d (min. %d parties mesurées)",
				s.Value, s.Rank, s.TotalRanked, minGamesTalk)
		},
	},
	{
		name:      "village-performance",
		category:  model.CategoryPerformance,
		polarity:  model.PolarityGood,
		minSample: minGamesCamp,
		title:     "Fierté du village",
		nav:       model.TabNav{Tab: "stats", SubTab: "camps"},
		extract:   campMetric(model.MacroVillage),
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%+.1f pts face à la moyenne du camp Villageois — n°%d sur %d (min. %d parties)",
				s.Value, s.Rank, s.TotalRanked, minGamesCamp)
		},
	},
	{
		name:      "wolf-performance",
		category:  model.CategoryPerformance,
		polarity:  model.PolarityGood,
		minSample: minGamesCamp,
		title:     "Loup alpha",
		nav:       model.TabNav{Tab: "stats", SubTab: "camps"},
		extract:   campMetric(model.MacroWolf),
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%+.1f pts face à la moyenne du camp Loup — n°%d sur %d (min. %d parties)",
				s.Value, s.Rank, s.TotalRanked, minGamesCamp)
		},
	},
	{
		name:      "win-streak",
		category:  model.CategorySeries,
		polarity:  model.PolarityGood,
		minSample: minGamesStreak,
		title:     "Invincible",
		nav:       model.TabNav{Tab: "history", SubTab: "series"},
		extract:   streakMetric(model.StreakWin),
		detail:    streakDetail(model.StreakWin),
		describe: func(s rank.Standing, detail string) string {
			return fmt.Sprintf("%.0f victoires consécutives %s — n°%d sur %d", s.Value, detail, s.Rank, s.TotalRanked)
		},
	},
	{
		name:      "loss-streak",
		category:  model.CategorySeries,
		polarity:  model.PolarityBad,
		minSample: minGamesStreak,
		title:     "Descente aux enfers",
		nav:       model.TabNav{Tab: "history", SubTab: "series"},
		extract:   streakMetric(model.StreakLoss),
		detail:    streakDetail(model.StreakLoss),
		describe: func(s rank.Standing, detail string) string {
			return fmt.Sprintf("%.0f défaites consécutives %s — n°%d sur %d", s.Value, detail, s.Rank, s.TotalRanked)
		},
	},
	{
		name:      "village-streak",
		category:  model.CategorySeries,
		polarity:  model.PolarityGood,
		minSample: minGamesStreak,
		title:     "Villageois modèle",
		nav:       model.TabNav{Tab: "history", SubTab: "series"},
		extract:   streakMetric(model.StreakVillage),
		detail:    streakDetail(model.StreakVillage),
		describe: func(s rank.Standing, detail string) string {
			return fmt.Sprintf("%.0f parties consécutives côté Villageois %s — n°%d sur %d", s.Value, detail, s.Rank, s.TotalRanked)
		},
	},
	{
		name:      "wolf-streak",
		category:  model.CategorySeries,
		polarity:  model.PolarityGood,
		minSample: minGamesStreak,
		title:     "Carnivore",
		nav:       model.TabNav{Tab: "history", SubTab: "series"},
		extract:   streakMetric(model.StreakWolf),
		detail:    streakDetail(model.StreakWolf),
		describe: func(s rank.Standing, detail string) string {
			return fmt.Sprintf("%.0f parties consécutives côté Loup %s — n°%d sur %d", s.Value, detail, s.Rank, s.TotalRanked)
		},
	},
	{
		name:      "kills-per-game",
		category:  model.CategoryKills,
		polarity:  model.PolarityGood,
		minSample: minGamesKills,
		title:     "Grand prédateur",
		nav:       model.ChartNav{Tab: "stats", SubTab: "kills", ChartSection: "kills"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, k := range a.kills {
				values[player] = k.KillsPerGame()
				samples[player] = k.Games
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.2f éliminations par partie — n°%d sur %d (min. %d parties)",
				s.Value, s.Rank, s.TotalRanked, minGamesKills)
		},
	},
	{
		name:      "death-rate",
		category:  model.CategoryKills,
		polarity:  model.PolarityBad,
		minSample: minGamesKills,
		title:     "Cible favorite",
		nav:       model.ChartNav{Tab: "stats", SubTab: "kills", ChartSection: "deaths"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, k := range a.kills {
				values[player] = k.DeathRate()
				samples[player] = k.Games
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("mort dans %.1f %% de ses parties — n°%d sur %d (min. %d parties)",
				s.Value, s.Rank, s.TotalRanked, minGamesKills)
		},
	},
	{
		name:      "seniority",
		category:  model.CategoryHistory,
		polarity:  model.PolarityGood,
		minSample: 1,
		ascending: true, // earliest first game ranks first
		title:     "Vétéran",
		nav:       model.TabNav{Tab: "history"},
		extract:   participationMetric(func(p *model.Participation) float64 { return float64(p.FirstGame.Unix()) }),
		describe: func(s rank.Standing, _ string) string {
			first := time.Unix(int64(s.Value), 0).UTC()
			return fmt.Sprintf("première partie le %s — n°%d sur %d", first.Format("02/01/2006"), s.Rank, s.TotalRanked)
		},
	},
	{
		name:      "best-map",
		category:  model.CategoryMap,
		polarity:  model.PolarityGood,
		minSample: minGamesMap,
		title:     "Maître des lieux",
		nav:       model.ChartNav{Tab: "stats", SubTab: "maps", ChartSection: "map-winrate"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, maps := range a.maps {
				if best, ok := aggregate.BestMap(maps, minGamesMap); ok {
					values[player] = best.WinRate()
					samples[player] = best.Games
				}
			}
			return values, samples
		},
		detail: func(a *aggregates, player string) string {
			if best, ok := aggregate.BestMap(a.maps[player], minGamesMap); ok {
				return best.MapName
			}
			return ""
		},
		describe: func(s rank.Standing, detail string) string {
			return fmt.Sprintf("%.1f %% de victoires sur %s — n°%d sur %d (min. %d parties sur la carte)",
				s.Value, detail, s.Rank, s.TotalRanked, minGamesMap)
		},
	},
	{
		name:      "vote-accuracy",
		category:  model.CategoryVoting,
		polarity:  model.PolarityGood,
		minSample: minRelevantVotes,
		title:     "Flair infaillible",
		nav:       model.TabNav{Tab: "votes", SubTab: "accuracy"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, v := range a.voting {
				values[player] = v.Accuracy()
				samples[player] = v.OpposingTargets + v.OwnCampTargets
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.1f %% de votes contre le camp adverse — n°%d sur %d (min. %d votes)",
				s.Value, s.Rank, s.TotalRanked, minRelevantVotes)
		},
	},
	{
		name:      "aggressiveness",
		category:  model.CategoryVoting,
		polarity:  model.PolarityGood,
		minSample: minMeetingsVotes,
		title:     "Gâchette facile",
		nav:       model.TabNav{Tab: "votes", SubTab: "behavior"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, v := range a.voting {
				values[player] = v.Aggressiveness()
				samples[player] = v.Meetings
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("indice d'agressivité au vote de %+.0f — n°%d sur %d (min. %d réunions)",
				s.Value, s.Rank, s.TotalRanked, minMeetingsVotes)
		},
	},
	{
		name:      "no-vote-rate",
		category:  model.CategoryVoting,
		polarity:  model.PolarityBad,
		minSample: minMeetingsVotes,
		title:     "Abstentionniste",
		nav:       model.TabNav{Tab: "votes", SubTab: "behavior"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, v := range a.voting {
				values[player] = v.SkipRate() + v.AbstainRate()
				samples[player] = v.Meetings
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.1f %% de réunions sans vote — n°%d sur %d (min. %d réunions)",
				s.Value, s.Rank, s.TotalRanked, minMeetingsVotes)
		},
	},
	{
		name:      "vote-speed",
		category:  model.CategoryVoting,
		polarity:  model.PolarityGood,
		minSample: minTimedVotes,
		ascending: true, // fastest average delay ranks first
		title:     "Premier à dégainer",
		nav:       model.TabNav{Tab: "votes", SubTab: "timing"},
		extract: func(a *aggregates) (map[string]float64, map[string]int) {
			values := make(map[string]float64)
			samples := make(map[string]int)
			for player, v := range a.voting {
				if v.TimedVotes == 0 {
					continue
				}
				values[player] = v.AvgDelayMs()
				samples[player] = v.TimedVotes
			}
			return values, samples
		},
		describe: func(s rank.Standing, _ string) string {
			return fmt.Sprintf("%.0f ms de délai moyen derrière le premier votant — n°%d sur %d (min. %d votes horodatés)",
				s.Value, s.Rank, s.TotalRanked, minTimedVotes)
		},
	},
}

// MetricNames lists the registered ranked metrics, in table order.
func MetricNames() []string {
	names := make([]string, 0, len(metricTable))
	for _, def := range metricTable {
		names = append(names, def.name)
	}
	return names
}
