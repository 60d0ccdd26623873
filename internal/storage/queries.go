package storage

import (
	"fmt"
	"time"

	"github.com/maeel/garoustats/internal/model"
)

// InsertGames bulk-inserts normalized game records in one transaction.
// INSERT OR REPLACE keeps re-loading the same corpus idempotent.
func (db *DB) InsertGames(games []model.GameRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	gameStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO games(id, started_at, modded, map_name)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer gameStmt.Close()

	entryStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO entries(game_id, player, raw_name, camp, win, talk_seconds, has_talk)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer entryStmt.Close()

	voteStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO votes(game_id, player, meeting, target, offset_ms, has_offset)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer voteStmt.Close()

	deathStmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO deaths(game_id, player, killer, death_type, meeting)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer deathStmt.Close()

	for _, g := range games {
		mapName := ""
		if len(g.Entries) > 0 {
			mapName = g.Entries[0].MapName
		}
		if _, err := gameStmt.Exec(g.ID, g.StartedAt.UTC().Format(time.RFC3339), boolInt(g.Modded), mapName); err != nil {
			return fmt.Errorf("insert game %s: %w", g.ID, err)
		}
		for i := range g.Entries {
			e := &g.Entries[i]
			if _, err := entryStmt.Exec(g.ID, e.Player, e.RawName, string(e.Camp), boolInt(e.Win), e.TalkSeconds, boolInt(e.HasTalk)); err != nil {
				return fmt.Errorf("insert entry %s/%s: %w", g.ID, e.Player, err)
			}
			for _, v := range e.Votes {
				if _, err := voteStmt.Exec(g.ID, e.Player, v.Meeting, v.Target, v.OffsetMs, boolInt(v.HasOffset)); err != nil {
					return fmt.Errorf("insert vote %s/%s: %w", g.ID, e.Player, err)
				}
			}
			if e.Death != nil {
				if _, err := deathStmt.Exec(g.ID, e.Player, e.Death.Killer, e.Death.Type, e.Death.Meeting); err != nil {
					return fmt.Errorf("insert death %s/%s: %w", g.ID, e.Player, err)
				}
			}
		}
	}
	return tx.Commit()
}

// LoadCorpus rebuilds the full normalized corpus, ordered chronologically
// with game id as tie-break (the same order the pipeline's sweep expects).
func (db *DB) LoadCorpus() ([]model.GameRecord, error) {
	rows, err := db.conn.Query(`SELECT id, started_at, modded, map_name FROM games ORDER BY started_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []model.GameRecord
	index := make(map[string]int)
	mapNames := make(map[string]string)
	for rows.Next() {
		var g model.GameRecord
		var startedAt, mapName string
		var modded int
		if err := rows.Scan(&g.ID, &startedAt, &modded, &mapName); err != nil {
			return nil, err
		}
		g.StartedAt, err = time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("game %s: bad started_at %q: %w", g.ID, startedAt, err)
		}
		g.Modded = modded != 0
		index[g.ID] = len(games)
		mapNames[g.ID] = mapName
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.loadEntries(games, index, mapNames); err != nil {
		return nil, err
	}
	if err := db.loadVotes(games, index); err != nil {
		return nil, err
	}
	if err := db.loadDeaths(games, index); err != nil {
		return nil, err
	}
	return games, nil
}

func (db *DB) loadEntries(games []model.GameRecord, index map[string]int, mapNames map[string]string) error {
	rows, err := db.conn.Query(`
		SELECT game_id, player, raw_name, camp, win, talk_seconds, has_talk
		FROM entries ORDER BY game_id, player`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var gameID, camp string
		var e model.PlayerGameEntry
		var win, hasTalk int
		if err := rows.Scan(&gameID, &e.Player, &e.RawName, &camp, &win, &e.TalkSeconds, &hasTalk); err != nil {
			return err
		}
		i, ok := index[gameID]
		if !ok {
			continue
		}
		e.Camp = model.Camp(camp)
		e.Win = win != 0
		e.HasTalk = hasTalk != 0
		e.MapName = mapNames[gameID]
		games[i].Entries = append(games[i].Entries, e)
	}
	return rows.Err()
}

func (db *DB) loadVotes(games []model.GameRecord, index map[string]int) error {
	rows, err := db.conn.Query(`
		SELECT game_id, player, meeting, target, offset_ms, has_offset
		FROM votes ORDER BY game_id, player, meeting`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var gameID, player string
		var v model.VoteEvent
		var hasOffset int
		if err := rows.Scan(&gameID, &player, &v.Meeting, &v.Target, &v.OffsetMs, &hasOffset); err != nil {
			return err
		}
		v.HasOffset = hasOffset != 0
		i, ok := index[gameID]
		if !ok {
			continue
		}
		if e := games[i].Entry(player); e != nil {
			e.Votes = append(e.Votes, v)
		}
	}
	return rows.Err()
}

func (db *DB) loadDeaths(games []model.GameRecord, index map[string]int) error {
	rows, err := db.conn.Query(`
		SELECT game_id, player, killer, death_type, meeting
		FROM deaths ORDER BY game_id, player`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var gameID, player string
		var d model.DeathEvent
		if err := rows.Scan(&gameID, &player, &d.Killer, &d.Type, &d.Meeting); err != nil {
			return err
		}
		i, ok := index[gameID]
		if !ok {
			continue
		}
		if e := games[i].Entry(player); e != nil {
			death := d
			e.Death = &death
		}
	}
	return rows.Err()
}

// GameSummary is a lightweight record for the list command.
type GameSummary struct {
	ID        string
	StartedAt string
	Modded    bool
	MapName   string
	Players   int
}

// ListGames returns game summaries, newest first.
func (db *DB) ListGames() ([]GameSummary, error) {
	rows, err := db.conn.Query(`
		SELECT g.id, g.started_at, g.modded, g.map_name, COUNT(e.player)
		FROM games g LEFT JOIN entries e ON e.game_id = g.id
		GROUP BY g.id ORDER BY g.started_at DESC, g.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameSummary
	for rows.Next() {
		var s GameSummary
		var modded int
		if err := rows.Scan(&s.ID, &s.StartedAt, &modded, &s.MapName, &s.Players); err != nil {
			return nil, err
		}
		s.Modded = modded != 0
		out = append(out, s)
	}
	return out, rows.Err()
}

// Overview holds corpus-wide counters for the summary command.
type Overview struct {
	TotalGames    int
	ModdedGames   int
	UniquePlayers int
	FirstGame     string
	LastGame      string
}

// GetOverview computes the corpus overview.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	err := db.conn.QueryRow(`
		SELECT COUNT(1),
		       COALESCE(SUM(modded), 0),
		       COALESCE(MIN(started_at), ''),
		       COALESCE(MAX(started_at), '')
		FROM games`).Scan(&ov.TotalGames, &ov.ModdedGames, &ov.FirstGame, &ov.LastGame)
	if err != nil {
		return ov, err
	}
	err = db.conn.QueryRow(`SELECT COUNT(DISTINCT player) FROM entries`).Scan(&ov.UniquePlayers)
	return ov, err
}

// CampCount is one row of the camp distribution breakdown.
type CampCount struct {
	Camp  string
	Games int
	Wins  int
}

// GetCampBreakdown returns per-camp participation and win counts.
func (db *DB) GetCampBreakdown() ([]CampCount, error) {
	rows, err := db.conn.Query(`
		SELECT camp, COUNT(1), COALESCE(SUM(win), 0)
		FROM entries GROUP BY camp ORDER BY COUNT(1) DESC, camp`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CampCount
	for rows.Next() {
		var c CampCount
		if err := rows.Scan(&c.Camp, &c.Games, &c.Wins); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
