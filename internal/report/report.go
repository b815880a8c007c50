// Package report renders metric bundles as terminal tables. All numeric
// rounding to one decimal happens here, at presentation time; bundles carry
// unrounded values.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/statzone/iplstats/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintAnalysis renders every view of the result in order. maxRows caps the
// Records table; <= 0 means no cap.
func PrintAnalysis(w io.Writer, res *model.AnalysisResult, maxRows int) {
	mode := "single"
	if res.Dual {
		mode = "dual"
	}
	header := fmt.Sprintf("\n%s Analysis: %s", res.Category, res.Selection.Primary)
	if res.Dual {
		header += " vs " + res.Selection.Secondary
	}
	fmt.Fprintf(w, "%s  (%s mode)\n", header, mode)

	for _, v := range model.Views() {
		PrintView(w, v, res.View(v), maxRows)
	}
}

// PrintView renders one view's bundle.
func PrintView(w io.Writer, view model.View, b *model.MetricBundle, maxRows int) {
	fmt.Fprintf(w, "\n--- %s ---\n\n", view)

	if b.Err != nil {
		fmt.Fprintf(w, "  error: %v\n", b.Err)
		return
	}
	if b.Notice != "" {
		fmt.Fprintf(w, "  %s\n", b.Notice)
	}

	if len(b.Scalars) > 0 {
		t := newTable(w)
		t.Header("METRIC", "VALUE")
		for _, s := range b.Scalars {
			t.Append(s.Name, FormatScalar(s))
		}
		t.Render()
	}

	for _, series := range b.Series {
		printSeries(w, series)
	}
	for _, d := range b.Distributions {
		printDistribution(w, d)
	}
	if len(b.Scatter) > 0 {
		printScatter(w, b.Scatter, maxRows)
	}
	if view == model.ViewRecords {
		PrintRecords(w, b.Rows, maxRows)
	}
}

// FormatScalar renders a scalar for display: counts as integers, percentages
// with one decimal and a % suffix, floats with one decimal, undefined values
// as "N/A".
func FormatScalar(s model.Scalar) string {
	switch {
	case s.Text != "":
		return s.Text
	case s.Undefined:
		return "N/A"
	case s.IsCount:
		return strconv.Itoa(int(s.Value))
	case s.IsPercent:
		return fmt.Sprintf("%.1f%%", s.Value)
	default:
		return fmt.Sprintf("%.1f", s.Value)
	}
}

func printSeries(w io.Writer, s model.Series) {
	if len(s.Points) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", s.Name)
	t := newTable(w)
	t.Header("LABEL", "VALUE")
	for _, p := range s.Points {
		t.Append(p.Label, formatValue(p.Value))
	}
	t.Render()
}

// formatValue prints whole numbers without a fraction and everything else
// with one decimal.
func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return fmt.Sprintf("%.1f", v)
}

// printDistribution summarizes a value list: the terminal has no histogram,
// so n/min/mean/max stand in for one.
func printDistribution(w io.Writer, d model.Distribution) {
	if len(d.Values) == 0 {
		fmt.Fprintf(w, "\n%s: no data\n", d.Name)
		return
	}
	vals := append([]float64(nil), d.Values...)
	sort.Float64s(vals)
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	fmt.Fprintf(w, "\n%s: n=%d  min=%s  mean=%s  max=%s\n",
		d.Name, len(vals),
		formatValue(vals[0]),
		fmt.Sprintf("%.1f", sum/float64(len(vals))),
		formatValue(vals[len(vals)-1]))
}

func printScatter(w io.Writer, points []model.ScatterPoint, maxRows int) {
	fmt.Fprintf(w, "\nTarget Runs vs Win Margin\n")
	t := newTable(w)
	t.Header("TARGET", "MARGIN", "RESULT")
	for i, p := range points {
		if maxRows > 0 && i >= maxRows {
			fmt.Fprintf(w, "  … %d more\n", len(points)-maxRows)
			break
		}
		t.Append(formatValue(p.X), formatValue(p.Y), p.Tag)
	}
	t.Render()
}

// PrintRecords renders raw match rows. maxRows <= 0 prints everything.
func PrintRecords(w io.Writer, rows []model.MatchRecord, maxRows int) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "  (no matches)")
		return
	}
	t := newTable(w)
	t.Header("DATE", "SEASON", "TEAM 1", "TEAM 2", "WINNER", "VENUE", "RESULT", "MARGIN", "POTM")

	shown := len(rows)
	if maxRows > 0 && maxRows < shown {
		shown = maxRows
	}
	for i := 0; i < shown; i++ {
		r := &rows[i]
		winner := r.Winner
		if winner == "" {
			winner = "—"
		}
		margin := "—"
		if r.HasMargin {
			margin = formatValue(r.ResultMargin)
		}
		potm := r.PlayerOfMatch
		if potm == "" {
			potm = "—"
		}
		t.Append(
			r.Date.Format("2006-01-02"),
			r.Season,
			r.Team1,
			r.Team2,
			winner,
			r.Venue,
			r.Result.String(),
			margin,
			potm,
		)
	}
	t.Render()
	if shown < len(rows) {
		fmt.Fprintf(w, "\n(%d of %d rows shown)\n", shown, len(rows))
	} else {
		fmt.Fprintf(w, "\n(%d rows)\n", len(rows))
	}
}

// PrintValues renders a distinct-value listing for one category.
func PrintValues(w io.Writer, cat model.EntityCategory, values []string) {
	fmt.Fprintf(w, "%d %ss:\n", len(values), cat)
	for _, v := range values {
		fmt.Fprintf(w, "  %s\n", v)
	}
}
