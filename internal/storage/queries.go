package storage

import (
	"database/sql"
	"fmt"

	"github.com/statzone/iplstats/internal/model"
)

// InsertMatches bulk-inserts match records in a transaction. Uses
// INSERT OR REPLACE so re-ingesting the same CSV is idempotent.
func (db *DB) InsertMatches(records []model.MatchRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			id, season, city, date, team1, team2,
			toss_decision, winner, venue, result,
			result_margin, target_runs, super_over, player_of_match
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		_, err = stmt.Exec(
			r.ID, r.Season, nullStr(r.City), r.Date.Format("2006-01-02"),
			r.Team1, r.Team2,
			nullStr(tossStr(r)), nullStr(r.Winner), nullStr(r.Venue), nullStr(resultStr(r)),
			nullFloat(r.ResultMargin, r.HasMargin),
			nullFloat(r.TargetRuns, r.HasTarget),
			boolInt(r.SuperOver), nullStr(r.PlayerOfMatch),
		)
		if err != nil {
			return fmt.Errorf("insert match %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// CountMatches returns the number of stored matches.
func (db *DB) CountMatches() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(1) FROM matches").Scan(&n)
	return n, err
}

// QueryRaw runs an arbitrary query and returns columns plus stringified
// rows, for the sql command's table output.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var out [][]string
	for rows.Next() {
		raw := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make([]string, len(cols))
		for i, v := range raw {
			switch t := v.(type) {
			case nil:
				row[i] = "NULL"
			case []byte:
				row[i] = string(t)
			default:
				row[i] = fmt.Sprintf("%v", t)
			}
		}
		out = append(out, row)
	}
	return cols, out, rows.Err()
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(v float64, ok bool) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: ok}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func tossStr(r *model.MatchRecord) string {
	if r.TossDecision == model.TossUnknown {
		return ""
	}
	return r.TossDecision.String()
}

func resultStr(r *model.MatchRecord) string {
	if r.Result == model.ResultUnknown {
		return ""
	}
	return r.Result.String()
}
