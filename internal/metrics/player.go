package metrics

import (
	"time"

	"github.com/statzone/iplstats/internal/model"
)

// PlayerOverview summarizes a player's award-winning matches.
type PlayerOverview struct {
	Awards        int
	TeamsInvolved int // distinct teams appearing in the player's POTM matches
	FirstAward    time.Time
	HasFirstAward bool
}

// PlayerStats computes the overview block from a player's POTM subset.
func PlayerStats(records []model.MatchRecord) PlayerOverview {
	ov := PlayerOverview{Awards: len(records)}

	teams := make(map[string]struct{})
	for i := range records {
		r := &records[i]
		if r.Team1 != "" {
			teams[r.Team1] = struct{}{}
		}
		if r.Team2 != "" {
			teams[r.Team2] = struct{}{}
		}
		if !ov.HasFirstAward || r.Date.Before(ov.FirstAward) {
			ov.FirstAward = r.Date
			ov.HasFirstAward = true
		}
	}
	ov.TeamsInvolved = len(teams)
	return ov
}

// AwardsBySeason counts POTM awards per season, ordered by season.
func AwardsBySeason(records []model.MatchRecord) []model.Point {
	return SeasonCounts(records)
}

// AwardLeaders counts POTM awards per player across the whole subset, most
// decorated first, truncated to topN (<= 0 keeps everything).
func AwardLeaders(records []model.MatchRecord, topN int) []model.Point {
	counts := make(map[string]int)
	for i := range records {
		if p := records[i].PlayerOfMatch; p != "" {
			counts[p]++
		}
	}
	return TopN(descendingPoints(counts), topN)
}
