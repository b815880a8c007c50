package metrics

import (
	"sort"
	"time"

	"github.com/statzone/iplstats/internal/model"
)

// VenueOverview summarizes the matches hosted at one ground.
type VenueOverview struct {
	Matches       int
	City          string // "N/A" when no match carries a city
	FirstMatch    time.Time
	HasFirstMatch bool
}

// VenueStats computes the overview block from a venue subset. The city is
// the first non-null city value among the matches.
func VenueStats(records []model.MatchRecord) VenueOverview {
	ov := VenueOverview{Matches: len(records), City: "N/A"}
	for i := range records {
		r := &records[i]
		if ov.City == "N/A" && r.City != "" {
			ov.City = r.City
		}
		if !ov.HasFirstMatch || r.Date.Before(ov.FirstMatch) {
			ov.FirstMatch = r.Date
			ov.HasFirstMatch = true
		}
	}
	return ov
}

// TeamWinsAt counts wins per team at the venue, descending, truncated to
// topN for display (topN <= 0 keeps everything).
func TeamWinsAt(records []model.MatchRecord, topN int) []model.Point {
	return TopN(WinnerCounts(records), topN)
}

// SeasonResultSeries breaks hosted matches down by season and result type:
// one series per result type, season-labelled, seasons ascending. Seasons
// where a result type never occurred carry an explicit zero so the series
// stay aligned.
func SeasonResultSeries(records []model.MatchRecord) []model.Series {
	type key struct{ season, result string }
	counts := make(map[key]int)
	seasonSet := make(map[string]struct{})
	resultSet := make(map[string]struct{})
	for i := range records {
		r := &records[i]
		if r.Season == "" || r.Result == model.ResultUnknown {
			continue
		}
		counts[key{r.Season, r.Result.String()}]++
		seasonSet[r.Season] = struct{}{}
		resultSet[r.Result.String()] = struct{}{}
	}

	seasons := make([]string, 0, len(seasonSet))
	for s := range seasonSet {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)
	results := make([]string, 0, len(resultSet))
	for r := range resultSet {
		results = append(results, r)
	}
	sort.Strings(results)

	out := make([]model.Series, 0, len(results))
	for _, res := range results {
		s := model.Series{Name: res}
		for _, season := range seasons {
			s.Points = append(s.Points, model.Point{
				Label: season,
				Value: float64(counts[key{season, res}]),
			})
		}
		out = append(out, s)
	}
	return out
}

// AvgTargetRuns is the mean target over non-null values, undefined when the
// subset has none.
func AvgTargetRuns(records []model.MatchRecord) float64 {
	return Mean(TargetValues(records))
}
