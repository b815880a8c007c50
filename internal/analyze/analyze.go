// Package analyze orchestrates one comparison query: it resolves the
// selection into record subsets, decides single vs. dual mode, and invokes
// the per-category metric functions for each of the five views. Category
// branching is a dispatch table rather than conditional chains repeated per
// view, so adding a category is mechanical.
package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/metrics"
	"github.com/statzone/iplstats/internal/model"
	"github.com/statzone/iplstats/internal/resolve"
)

// MissingSelectionError rejects a query with an empty primary selection.
// It is a soft condition: the analysis simply does not run.
type MissingSelectionError struct {
	Category model.EntityCategory
}

func (e *MissingSelectionError) Error() string {
	return fmt.Sprintf("no %s selected", strings.ToLower(e.Category.String()))
}

// Options is the request-scoped configuration for one query. There is no
// process-wide toggle state; every knob travels with the request.
type Options struct {
	// TopN truncates descending win-count series for display; <= 0 keeps
	// everything.
	TopN int
}

const defaultTopN = 10

// request carries the resolved state of one query through the view funcs.
type request struct {
	ds        *dataset.Dataset
	category  model.EntityCategory
	primary   string
	secondary string
	prim      []model.MatchRecord
	sec       []model.MatchRecord
	dual      bool
	topN      int
}

type viewFunc func(*request) *model.MetricBundle

var dispatch = map[model.EntityCategory]map[model.View]viewFunc{
	model.CategoryPlayer: {
		model.ViewOverview:    playerOverview,
		model.ViewTrend:       playerTrend,
		model.ViewResults:     playerResults,
		model.ViewComparative: playerComparative,
	},
	model.CategoryTeam: {
		model.ViewOverview:    teamOverview,
		model.ViewTrend:       teamTrend,
		model.ViewResults:     teamResults,
		model.ViewComparative: teamComparative,
	},
	model.CategoryVenue: {
		model.ViewOverview:    venueOverview,
		model.ViewTrend:       venueTrend,
		model.ViewResults:     venueResults,
		model.ViewComparative: venueComparative,
	},
	model.CategorySeason: {
		model.ViewOverview:    seasonOverview,
		model.ViewTrend:       seasonTrend,
		model.ViewResults:     seasonResults,
		model.ViewComparative: seasonComparative,
	},
}

// Analyze runs one full query. Validation errors (empty primary, unknown
// entity) abort before any aggregation; a failure inside a single view is
// captured in that view's bundle and the remaining views still compute.
func Analyze(ds *dataset.Dataset, cat model.EntityCategory, primary, secondary string, opts Options) (*model.AnalysisResult, error) {
	primary = strings.TrimSpace(primary)
	secondary = strings.TrimSpace(secondary)
	if primary == "" {
		return nil, &MissingSelectionError{Category: cat}
	}

	prim, err := resolve.Filter(ds, cat, primary)
	if err != nil {
		return nil, err
	}

	req := &request{
		ds:       ds,
		category: cat,
		primary:  primary,
		prim:     prim,
		topN:     opts.TopN,
	}
	if req.topN == 0 {
		req.topN = defaultTopN
	}
	if secondary != "" {
		sec, err := resolve.Filter(ds, cat, secondary)
		if err != nil {
			return nil, err
		}
		req.secondary = secondary
		req.sec = sec
		req.dual = true
	}

	res := &model.AnalysisResult{
		Category:  cat,
		Selection: model.Selection{Primary: primary, Secondary: secondary},
		Dual:      req.dual,
		Views:     make(map[model.View]*model.MetricBundle, len(model.Views())),
	}
	for _, v := range model.Views() {
		res.Views[v] = computeView(req, v)
	}
	return res, nil
}

func computeView(req *request, v model.View) (b *model.MetricBundle) {
	defer func() {
		if r := recover(); r != nil {
			b = &model.MetricBundle{Err: fmt.Errorf("%s view failed: %v", v, r)}
		}
	}()

	if v == model.ViewRecords {
		return recordsView(req)
	}
	if v == model.ViewComparative && !req.dual {
		return &model.MetricBundle{
			Notice: fmt.Sprintf("select a second %s to compare", strings.ToLower(req.category.String())),
		}
	}
	return dispatch[req.category][v](req)
}

// recordsView returns the raw matching rows. Player, Team and Venue records
// list newest first; Season records list oldest first. The asymmetry is
// inherited behavior, kept on purpose.
func recordsView(req *request) *model.MetricBundle {
	rows := make([]model.MatchRecord, len(req.prim))
	copy(rows, req.prim)

	ascending := req.category == model.CategorySeason
	sort.SliceStable(rows, func(i, j int) bool {
		if ascending {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].Date.After(rows[j].Date)
	})

	return &model.MetricBundle{
		Scalars: []model.Scalar{model.Count("Matches", len(rows))},
		Rows:    rows,
	}
}

// ---- Player views ----

func playerOverview(req *request) *model.MetricBundle {
	ov := metrics.PlayerStats(req.prim)
	first := "N/A"
	if ov.HasFirstAward {
		first = ov.FirstAward.Format("2006-01-02")
	}
	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count("Player of Match Awards", ov.Awards),
			model.Count("Teams Involved", ov.TeamsInvolved),
			model.Label("First Award", first),
		},
		Series: []model.Series{
			{Name: "POTM Awards by Season", Points: metrics.AwardsBySeason(req.prim)},
		},
	}
}

func playerTrend(req *request) *model.MetricBundle {
	b := &model.MetricBundle{
		Series: []model.Series{
			{Name: req.primary, Points: metrics.AwardsBySeason(req.prim)},
		},
	}
	if req.dual {
		b.Series = append(b.Series, model.Series{
			Name:   req.secondary,
			Points: metrics.AwardsBySeason(req.sec),
		})
	}
	return b
}

func playerResults(req *request) *model.MetricBundle {
	return &model.MetricBundle{
		Series: []model.Series{
			{Name: "Result Types", Points: metrics.ResultTypeCounts(req.prim)},
		},
		Distributions: []model.Distribution{
			{Name: "Win Margins", Values: metrics.MarginValues(req.prim)},
		},
	}
}

func playerComparative(req *request) *model.MetricBundle {
	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count(req.primary+" POTM Awards", len(req.prim)),
			model.Count(req.secondary+" POTM Awards", len(req.sec)),
		},
		Series: []model.Series{
			{Name: req.primary, Points: metrics.AwardsBySeason(req.prim)},
			{Name: req.secondary, Points: metrics.AwardsBySeason(req.sec)},
		},
	}
}

// ---- Team views ----

func teamOverview(req *request) *model.MetricBundle {
	ov := metrics.TeamStats(req.prim, req.primary)
	split := metrics.TeamSeasonWinLoss(req.prim, req.primary)

	wins := model.Series{Name: "Wins"}
	losses := model.Series{Name: "Losses"}
	for _, s := range split {
		wins.Points = append(wins.Points, model.Point{Label: s.Season, Value: float64(s.Wins)})
		losses.Points = append(losses.Points, model.Point{Label: s.Season, Value: float64(s.Losses)})
	}

	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count("Total Matches", ov.Matches),
			model.Count("Wins", ov.Wins),
			model.Percent("Win Percentage", ov.WinPct, metrics.IsUndefined(ov.WinPct)),
		},
		Series: []model.Series{wins, losses},
	}
}

func teamTrend(req *request) *model.MetricBundle {
	b := &model.MetricBundle{
		Series: []model.Series{
			{Name: req.primary + " Win %", Points: metrics.TeamWinPctBySeason(req.prim, req.primary)},
		},
	}
	if req.dual {
		b.Series = append(b.Series, model.Series{
			Name:   req.secondary + " Win %",
			Points: metrics.TeamWinPctBySeason(req.sec, req.secondary),
		})
	}
	return b
}

func teamResults(req *request) *model.MetricBundle {
	toss := metrics.TeamTossOutcomes(req.prim, req.primary)
	won := model.Series{Name: "Toss Decision: Won"}
	lost := model.Series{Name: "Toss Decision: Lost"}
	for _, t := range toss {
		won.Points = append(won.Points, model.Point{Label: t.Decision, Value: float64(t.Won)})
		lost.Points = append(lost.Points, model.Point{Label: t.Decision, Value: float64(t.Lost)})
	}
	return &model.MetricBundle{
		Series: []model.Series{
			won,
			lost,
			{Name: "Result Share %", Points: metrics.ResultShare(req.prim)},
		},
	}
}

func teamComparative(req *request) *model.MetricBundle {
	a := metrics.TeamStats(req.prim, req.primary)
	b := metrics.TeamStats(req.sec, req.secondary)

	direct, err := resolve.HeadToHead(req.ds, req.primary, req.secondary)
	if err != nil {
		return &model.MetricBundle{Err: fmt.Errorf("head-to-head: %w", err)}
	}
	h2h := metrics.HeadToHeadWins(direct)

	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count(req.primary+" Matches", a.Matches),
			model.Count(req.primary+" Wins", a.Wins),
			model.Percent(req.primary+" Win %", a.WinPct, metrics.IsUndefined(a.WinPct)),
			model.Count(req.secondary+" Matches", b.Matches),
			model.Count(req.secondary+" Wins", b.Wins),
			model.Percent(req.secondary+" Win %", b.WinPct, metrics.IsUndefined(b.WinPct)),
			model.Count("Direct Matches", h2h.Matches),
			model.Count("Ties", h2h.Ties),
			model.Count("No Results", h2h.NoResults),
		},
		Series: []model.Series{
			{Name: "Head-to-Head Wins", Points: h2h.Wins},
		},
	}
}

// ---- Venue views ----

func venueOverview(req *request) *model.MetricBundle {
	ov := metrics.VenueStats(req.prim)
	first := "N/A"
	if ov.HasFirstMatch {
		first = ov.FirstMatch.Format("2006-01-02")
	}
	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count("Total Matches Hosted", ov.Matches),
			model.Label("Home City", ov.City),
			model.Label("First Match", first),
		},
		Series: []model.Series{
			{Name: "Result Share %", Points: metrics.ResultShare(req.prim)},
		},
	}
}

func venueTrend(req *request) *model.MetricBundle {
	b := &model.MetricBundle{
		Series: []model.Series{
			{Name: req.primary, Points: metrics.SeasonCounts(req.prim)},
		},
	}
	if req.dual {
		b.Series = append(b.Series, model.Series{
			Name:   req.secondary,
			Points: metrics.SeasonCounts(req.sec),
		})
	}
	return b
}

func venueResults(req *request) *model.MetricBundle {
	b := &model.MetricBundle{
		Series: []model.Series{
			{Name: "Most Successful Teams", Points: metrics.TeamWinsAt(req.prim, req.topN)},
		},
	}
	b.Series = append(b.Series, metrics.SeasonResultSeries(req.prim)...)
	return b
}

func venueComparative(req *request) *model.MetricBundle {
	avgA := metrics.AvgTargetRuns(req.prim)
	avgB := metrics.AvgTargetRuns(req.sec)
	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count(req.primary+" Matches", len(req.prim)),
			model.Number(req.primary+" Avg Target", avgA, metrics.IsUndefined(avgA)),
			model.Count(req.secondary+" Matches", len(req.sec)),
			model.Number(req.secondary+" Avg Target", avgB, metrics.IsUndefined(avgB)),
		},
		Distributions: []model.Distribution{
			{Name: req.primary + " Win Margins", Values: metrics.MarginValues(req.prim)},
			{Name: req.secondary + " Win Margins", Values: metrics.MarginValues(req.sec)},
		},
	}
}

// ---- Season views ----

func seasonOverview(req *request) *model.MetricBundle {
	ov := metrics.SeasonStats(req.prim)
	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count("Total Matches", ov.Matches),
			model.Count("Teams Participated", ov.Teams),
			model.Count("Super Overs", ov.SuperOvers),
		},
		Series: []model.Series{
			{Name: "Team Wins", Points: metrics.WinnerCounts(req.prim)},
		},
	}
}

func seasonTrend(req *request) *model.MetricBundle {
	avgT := metrics.AvgTargetRuns(req.prim)
	avgM := metrics.AvgResultMargin(req.prim)
	scalars := []model.Scalar{
		model.Number(req.primary+" Avg Target Runs", avgT, metrics.IsUndefined(avgT)),
		model.Number(req.primary+" Avg Win Margin", avgM, metrics.IsUndefined(avgM)),
	}
	if req.dual {
		avgT2 := metrics.AvgTargetRuns(req.sec)
		avgM2 := metrics.AvgResultMargin(req.sec)
		scalars = append(scalars,
			model.Number(req.secondary+" Avg Target Runs", avgT2, metrics.IsUndefined(avgT2)),
			model.Number(req.secondary+" Avg Win Margin", avgM2, metrics.IsUndefined(avgM2)),
		)
	}
	return &model.MetricBundle{Scalars: scalars}
}

func seasonResults(req *request) *model.MetricBundle {
	return &model.MetricBundle{
		Distributions: []model.Distribution{
			{Name: "Win Margins", Values: metrics.MarginValues(req.prim)},
		},
		Scatter: metrics.TargetMarginScatter(req.prim),
	}
}

func seasonComparative(req *request) *model.MetricBundle {
	a := metrics.SeasonStats(req.prim)
	b := metrics.SeasonStats(req.sec)
	avgA := metrics.AvgTargetRuns(req.prim)
	avgB := metrics.AvgTargetRuns(req.sec)

	const topTeams = 5
	return &model.MetricBundle{
		Scalars: []model.Scalar{
			model.Count(req.primary+" Matches", a.Matches),
			model.Number(req.primary+" Avg Target", avgA, metrics.IsUndefined(avgA)),
			model.Count(req.primary+" Super Overs", a.SuperOvers),
			model.Count(req.secondary+" Matches", b.Matches),
			model.Number(req.secondary+" Avg Target", avgB, metrics.IsUndefined(avgB)),
			model.Count(req.secondary+" Super Overs", b.SuperOvers),
		},
		Series: []model.Series{
			{Name: "Top Teams " + req.primary, Points: metrics.TopN(metrics.WinnerCounts(req.prim), topTeams)},
			{Name: "Top Teams " + req.secondary, Points: metrics.TopN(metrics.WinnerCounts(req.sec), topTeams)},
		},
	}
}
