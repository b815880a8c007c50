// Package export persists an analysis result outside the terminal, as JSON
// or as a spreadsheet. Undefined metric values are exported as nulls/"N/A",
// never as NaN.
package export

import (
	"io"

	json "github.com/goccy/go-json"

	"github.com/statzone/iplstats/internal/metrics"
	"github.com/statzone/iplstats/internal/model"
)

type scalarDTO struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value"`
	Text  string   `json:"text,omitempty"`
}

type pointDTO struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type seriesDTO struct {
	Name   string     `json:"name"`
	Points []pointDTO `json:"points"`
}

type scatterDTO struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Tag string  `json:"tag"`
}

type distributionDTO struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type rowDTO struct {
	ID            int      `json:"id"`
	Date          string   `json:"date"`
	Season        string   `json:"season"`
	Team1         string   `json:"team1"`
	Team2         string   `json:"team2"`
	Winner        string   `json:"winner,omitempty"`
	Venue         string   `json:"venue,omitempty"`
	City          string   `json:"city,omitempty"`
	Result        string   `json:"result"`
	ResultMargin  *float64 `json:"result_margin"`
	TargetRuns    *float64 `json:"target_runs"`
	SuperOver     bool     `json:"super_over"`
	PlayerOfMatch string   `json:"player_of_match,omitempty"`
}

type bundleDTO struct {
	Scalars       []scalarDTO       `json:"scalars,omitempty"`
	Series        []seriesDTO       `json:"series,omitempty"`
	Scatter       []scatterDTO      `json:"scatter,omitempty"`
	Distributions []distributionDTO `json:"distributions,omitempty"`
	Rows          []rowDTO          `json:"rows,omitempty"`
	Notice        string            `json:"notice,omitempty"`
	Error         string            `json:"error,omitempty"`
}

type resultDTO struct {
	Category  string               `json:"category"`
	Primary   string               `json:"primary"`
	Secondary string               `json:"secondary,omitempty"`
	Dual      bool                 `json:"dual"`
	Views     map[string]bundleDTO `json:"views"`
}

// WriteJSON encodes the result as indented JSON.
func WriteJSON(w io.Writer, res *model.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDTO(res))
}

func toDTO(res *model.AnalysisResult) resultDTO {
	out := resultDTO{
		Category:  res.Category.String(),
		Primary:   res.Selection.Primary,
		Secondary: res.Selection.Secondary,
		Dual:      res.Dual,
		Views:     make(map[string]bundleDTO, len(res.Views)),
	}
	for _, v := range model.Views() {
		out.Views[v.String()] = bundleToDTO(res.View(v))
	}
	return out
}

func bundleToDTO(b *model.MetricBundle) bundleDTO {
	dto := bundleDTO{Notice: b.Notice}
	if b.Err != nil {
		dto.Error = b.Err.Error()
	}
	for _, s := range b.Scalars {
		d := scalarDTO{Name: s.Name, Text: s.Text}
		if s.Text == "" && !s.Undefined {
			v := s.Value
			d.Value = &v
		}
		dto.Scalars = append(dto.Scalars, d)
	}
	for _, s := range b.Series {
		sd := seriesDTO{Name: s.Name, Points: []pointDTO{}}
		for _, p := range s.Points {
			sd.Points = append(sd.Points, pointDTO{Label: p.Label, Value: p.Value})
		}
		dto.Series = append(dto.Series, sd)
	}
	for _, p := range b.Scatter {
		dto.Scatter = append(dto.Scatter, scatterDTO{X: p.X, Y: p.Y, Tag: p.Tag})
	}
	for _, d := range b.Distributions {
		dto.Distributions = append(dto.Distributions, distributionDTO{Name: d.Name, Values: d.Values})
	}
	for i := range b.Rows {
		dto.Rows = append(dto.Rows, rowToDTO(&b.Rows[i]))
	}
	return dto
}

func rowToDTO(r *model.MatchRecord) rowDTO {
	dto := rowDTO{
		ID:            r.ID,
		Date:          r.Date.Format("2006-01-02"),
		Season:        r.Season,
		Team1:         r.Team1,
		Team2:         r.Team2,
		Winner:        r.Winner,
		Venue:         r.Venue,
		City:          r.City,
		Result:        r.Result.String(),
		SuperOver:     r.SuperOver,
		PlayerOfMatch: r.PlayerOfMatch,
	}
	if r.HasMargin {
		v := r.ResultMargin
		dto.ResultMargin = &v
	}
	if r.HasTarget {
		v := r.TargetRuns
		dto.TargetRuns = &v
	}
	return dto
}

// displayValue is shared with the spreadsheet writer: a scalar cell is its
// text, its value, or "N/A".
func displayValue(s model.Scalar) any {
	switch {
	case s.Text != "":
		return s.Text
	case s.Undefined || metrics.IsUndefined(s.Value):
		return "N/A"
	case s.IsCount:
		return int(s.Value)
	default:
		return s.Value
	}
}
