package model

import (
	"fmt"
	"strings"
	"time"
)

// EntityCategory selects which MatchRecord fields drive filtering and which
// metric group applies.
type EntityCategory int

const (
	CategoryPlayer EntityCategory = iota
	CategoryTeam
	CategoryVenue
	CategorySeason
)

func (c EntityCategory) String() string {
	switch c {
	case CategoryPlayer:
		return "Player"
	case CategoryTeam:
		return "Team"
	case CategoryVenue:
		return "Venue"
	case CategorySeason:
		return "Season"
	default:
		return "?"
	}
}

// Categories returns all selectable categories in display order.
func Categories() []EntityCategory {
	return []EntityCategory{CategoryPlayer, CategoryTeam, CategoryVenue, CategorySeason}
}

// ParseCategory accepts a category name case-insensitively.
func ParseCategory(s string) (EntityCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "player":
		return CategoryPlayer, nil
	case "team":
		return CategoryTeam, nil
	case "venue":
		return CategoryVenue, nil
	case "season":
		return CategorySeason, nil
	default:
		return 0, fmt.Errorf("unknown category %q (expected player, team, venue or season)", s)
	}
}

// TossDecision is the choice made by the toss winner.
type TossDecision int

const (
	TossUnknown TossDecision = iota
	TossBat
	TossField
)

func (d TossDecision) String() string {
	switch d {
	case TossBat:
		return "bat"
	case TossField:
		return "field"
	default:
		return "?"
	}
}

// ResultType describes how a match was decided.
type ResultType int

const (
	ResultUnknown ResultType = iota
	ResultRuns
	ResultWickets
	ResultTie
	ResultNoResult
)

func (r ResultType) String() string {
	switch r {
	case ResultRuns:
		return "runs"
	case ResultWickets:
		return "wickets"
	case ResultTie:
		return "tie"
	case ResultNoResult:
		return "no result"
	default:
		return "?"
	}
}

// MatchRecord is one row of the historical dataset: a single IPL match.
// Empty strings stand for null values; ResultMargin and TargetRuns carry
// explicit presence flags because the source encodes missing numbers as NA.
type MatchRecord struct {
	ID     int
	Date   time.Time
	Season string

	Team1  string
	Team2  string
	Winner string // empty for ties and no-results

	Venue string
	City  string

	TossDecision TossDecision
	Result       ResultType
	ResultMargin float64
	HasMargin    bool
	TargetRuns   float64
	HasTarget    bool
	SuperOver    bool

	PlayerOfMatch string
}

// Involves reports whether the team played in this match on either side.
func (r *MatchRecord) Involves(team string) bool {
	return r.Team1 == team || r.Team2 == team
}

// Decided reports whether the match produced a winner.
func (r *MatchRecord) Decided() bool {
	return r.Winner != ""
}

// Selection pairs a primary entity value with an optional secondary one.
// An empty Secondary denotes single-entity mode.
type Selection struct {
	Primary   string
	Secondary string
}

func (s Selection) Dual() bool {
	return strings.TrimSpace(s.Secondary) != ""
}

// View identifies one of the five analysis views.
type View int

const (
	ViewOverview View = iota
	ViewTrend
	ViewResults
	ViewComparative
	ViewRecords
)

func (v View) String() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewTrend:
		return "Trend"
	case ViewResults:
		return "Results"
	case ViewComparative:
		return "Comparative"
	case ViewRecords:
		return "Records"
	default:
		return "?"
	}
}

// Views returns the five views in display order.
func Views() []View {
	return []View{ViewOverview, ViewTrend, ViewResults, ViewComparative, ViewRecords}
}

// ParseView accepts a view name case-insensitively.
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "overview":
		return ViewOverview, nil
	case "trend":
		return ViewTrend, nil
	case "results":
		return ViewResults, nil
	case "comparative":
		return ViewComparative, nil
	case "records":
		return ViewRecords, nil
	default:
		return 0, fmt.Errorf("unknown view %q", s)
	}
}

// Scalar is one named metric value in a bundle. Counts render as integers,
// percentages with a % suffix, everything else as a 1-decimal float. Text
// scalars (e.g. a city name) carry their display string directly. Undefined
// marks a mean/rate over zero records and renders as "N/A".
type Scalar struct {
	Name      string
	Value     float64
	Text      string
	IsCount   bool
	IsPercent bool
	Undefined bool
}

// Count builds an integer scalar.
func Count(name string, n int) Scalar {
	return Scalar{Name: name, Value: float64(n), IsCount: true}
}

// Number builds a float scalar; an undefined sentinel value marks it N/A.
func Number(name string, v float64, undefined bool) Scalar {
	return Scalar{Name: name, Value: v, Undefined: undefined}
}

// Percent builds a percentage scalar; an undefined sentinel value marks it N/A.
func Percent(name string, v float64, undefined bool) Scalar {
	return Scalar{Name: name, Value: v, IsPercent: true, Undefined: undefined}
}

// Label builds a text scalar.
func Label(name, text string) Scalar {
	return Scalar{Name: name, Text: text}
}

// Point is one (label, value) entry of a series.
type Point struct {
	Label string
	Value float64
}

// Series is an ordered, named sequence of points ready for charting or
// tabulation.
type Series struct {
	Name   string
	Points []Point
}

// ScatterPoint is one (x, y) pair tagged by result type, used by the Season
// target-vs-margin scatter.
type ScatterPoint struct {
	X   float64
	Y   float64
	Tag string
}

// Distribution is a named, histogram-ready list of numeric values (win
// margins, targets). No binning happens here; that is presentation work.
type Distribution struct {
	Name   string
	Values []float64
}

// MetricBundle is the computed output for one (category, selection, view)
// combination.
type MetricBundle struct {
	Scalars       []Scalar
	Series        []Series
	Scatter       []ScatterPoint
	Distributions []Distribution

	// Rows carries the raw matching records, Records view only.
	Rows []MatchRecord

	// Notice is an informational marker (e.g. Comparative view without a
	// second selection). It is not an error.
	Notice string

	// Err marks a view whose computation failed; other views are unaffected.
	Err error
}

// AnalysisResult maps each of the five views to its computed bundle for one
// query.
type AnalysisResult struct {
	Category  EntityCategory
	Selection Selection
	Dual      bool
	Views     map[View]*MetricBundle
}

// View returns the bundle for v, never nil.
func (r *AnalysisResult) View(v View) *MetricBundle {
	if b, ok := r.Views[v]; ok && b != nil {
		return b
	}
	return &MetricBundle{}
}
