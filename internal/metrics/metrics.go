// Package metrics computes descriptive aggregates over filtered match
// subsets. Every function is pure: records in, scalars/series out, no
// shared state. Means and rates over zero records return the undefined
// sentinel instead of failing; callers decide how to label it.
package metrics

import (
	"math"
	"sort"

	"github.com/statzone/iplstats/internal/model"
)

// Undefined is the sentinel for a mean or percentage over zero records.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether v is the undefined-metric sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }

// Mean returns the arithmetic mean of vals, or the undefined sentinel for an
// empty input.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return Undefined()
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// WinPercentage is wins/total*100, undefined when total is zero. Rounding
// happens at presentation time only.
func WinPercentage(wins, total int) float64 {
	if total == 0 {
		return Undefined()
	}
	return float64(wins) / float64(total) * 100
}

// SeasonCounts counts records per season, ordered by season ascending.
func SeasonCounts(records []model.MatchRecord) []model.Point {
	counts := make(map[string]int)
	for i := range records {
		if s := records[i].Season; s != "" {
			counts[s]++
		}
	}
	return ascendingPoints(counts)
}

// ResultTypeCounts counts records per result type, most frequent first.
func ResultTypeCounts(records []model.MatchRecord) []model.Point {
	counts := make(map[string]int)
	for i := range records {
		if records[i].Result != model.ResultUnknown {
			counts[records[i].Result.String()]++
		}
	}
	return descendingPoints(counts)
}

// ResultShare converts result-type counts into unrounded percentages of the
// decided-or-not total.
func ResultShare(records []model.MatchRecord) []model.Point {
	points := ResultTypeCounts(records)
	total := 0.0
	for _, p := range points {
		total += p.Value
	}
	if total == 0 {
		return nil
	}
	for i := range points {
		points[i].Value = points[i].Value / total * 100
	}
	return points
}

// WinnerCounts counts wins per team across the subset, most wins first.
// Ties and no-results carry no winner and are excluded.
func WinnerCounts(records []model.MatchRecord) []model.Point {
	counts := make(map[string]int)
	for i := range records {
		if w := records[i].Winner; w != "" {
			counts[w]++
		}
	}
	return descendingPoints(counts)
}

// MarginValues extracts the non-null result margins, histogram-ready.
func MarginValues(records []model.MatchRecord) []float64 {
	var out []float64
	for i := range records {
		if records[i].HasMargin {
			out = append(out, records[i].ResultMargin)
		}
	}
	return out
}

// TargetValues extracts the non-null target-runs values.
func TargetValues(records []model.MatchRecord) []float64 {
	var out []float64
	for i := range records {
		if records[i].HasTarget {
			out = append(out, records[i].TargetRuns)
		}
	}
	return out
}

// TopN truncates a points slice for display; n <= 0 means no limit.
func TopN(points []model.Point, n int) []model.Point {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[:n]
}

func ascendingPoints(counts map[string]int) []model.Point {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	points := make([]model.Point, 0, len(labels))
	for _, l := range labels {
		points = append(points, model.Point{Label: l, Value: float64(counts[l])})
	}
	return points
}

func descendingPoints(counts map[string]int) []model.Point {
	points := make([]model.Point, 0, len(counts))
	for l, c := range counts {
		points = append(points, model.Point{Label: l, Value: float64(c)})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Value != points[j].Value {
			return points[i].Value > points[j].Value
		}
		return points[i].Label < points[j].Label
	})
	return points
}
