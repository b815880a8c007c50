package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/statzone/iplstats/internal/model"
)

// WriteXLSX writes the result as a workbook with one sheet per view.
func WriteXLSX(path string, res *model.AnalysisResult) error {
	f := excelize.NewFile()
	defer f.Close()

	views := model.Views()
	for i, v := range views {
		sheet := v.String()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}
		if err := writeBundle(f, sheet, res.View(v)); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeBundle(f *excelize.File, sheet string, b *model.MetricBundle) error {
	row := 1
	set := func(col int, r int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, r)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	if b.Err != nil {
		return set(1, row, "error: "+b.Err.Error())
	}
	if b.Notice != "" {
		if err := set(1, row, b.Notice); err != nil {
			return err
		}
		row += 2
	}

	for _, s := range b.Scalars {
		if err := set(1, row, s.Name); err != nil {
			return err
		}
		if err := set(2, row, displayValue(s)); err != nil {
			return err
		}
		row++
	}
	if len(b.Scalars) > 0 {
		row++
	}

	for _, series := range b.Series {
		if err := set(1, row, series.Name); err != nil {
			return err
		}
		row++
		for _, p := range series.Points {
			if err := set(1, row, p.Label); err != nil {
				return err
			}
			if err := set(2, row, p.Value); err != nil {
				return err
			}
			row++
		}
		row++
	}

	for _, d := range b.Distributions {
		if err := set(1, row, d.Name); err != nil {
			return err
		}
		for i, v := range d.Values {
			if err := set(i+2, row, v); err != nil {
				return err
			}
		}
		row++
	}
	if len(b.Distributions) > 0 {
		row++
	}

	if len(b.Scatter) > 0 {
		for i, h := range []string{"target_runs", "result_margin", "result"} {
			if err := set(i+1, row, h); err != nil {
				return err
			}
		}
		row++
		for _, p := range b.Scatter {
			if err := set(1, row, p.X); err != nil {
				return err
			}
			if err := set(2, row, p.Y); err != nil {
				return err
			}
			if err := set(3, row, p.Tag); err != nil {
				return err
			}
			row++
		}
		row++
	}

	if len(b.Rows) > 0 {
		headers := []string{"id", "date", "season", "team1", "team2", "winner", "venue", "city", "result", "result_margin", "target_runs", "super_over", "player_of_match"}
		for i, h := range headers {
			if err := set(i+1, row, h); err != nil {
				return err
			}
		}
		row++
		for i := range b.Rows {
			r := &b.Rows[i]
			cells := []any{
				r.ID, r.Date.Format("2006-01-02"), r.Season, r.Team1, r.Team2,
				r.Winner, r.Venue, r.City, r.Result.String(),
			}
			if r.HasMargin {
				cells = append(cells, r.ResultMargin)
			} else {
				cells = append(cells, "")
			}
			if r.HasTarget {
				cells = append(cells, r.TargetRuns)
			} else {
				cells = append(cells, "")
			}
			super := "N"
			if r.SuperOver {
				super = "Y"
			}
			cells = append(cells, super, r.PlayerOfMatch)
			for col, v := range cells {
				if err := set(col+1, row, v); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}
