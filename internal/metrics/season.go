package metrics

import (
	"github.com/statzone/iplstats/internal/model"
)

// SeasonOverview summarizes one season's matches.
type SeasonOverview struct {
	Matches    int
	Teams      int // distinct participating teams
	SuperOvers int
}

// SeasonStats computes the overview block from a season subset.
func SeasonStats(records []model.MatchRecord) SeasonOverview {
	ov := SeasonOverview{Matches: len(records)}
	teams := make(map[string]struct{})
	for i := range records {
		r := &records[i]
		if r.Team1 != "" {
			teams[r.Team1] = struct{}{}
		}
		if r.Team2 != "" {
			teams[r.Team2] = struct{}{}
		}
		if r.SuperOver {
			ov.SuperOvers++
		}
	}
	ov.Teams = len(teams)
	return ov
}

// AvgResultMargin is the mean win margin over non-null values, undefined
// when the subset has none.
func AvgResultMargin(records []model.MatchRecord) float64 {
	return Mean(MarginValues(records))
}

// TargetMarginScatter pairs target runs with result margin per match, tagged
// by result type. Matches missing either number are skipped.
func TargetMarginScatter(records []model.MatchRecord) []model.ScatterPoint {
	var out []model.ScatterPoint
	for i := range records {
		r := &records[i]
		if !r.HasTarget || !r.HasMargin {
			continue
		}
		out = append(out, model.ScatterPoint{
			X:   r.TargetRuns,
			Y:   r.ResultMargin,
			Tag: r.Result.String(),
		})
	}
	return out
}
