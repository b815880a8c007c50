// Package dataset loads the static IPL match table from CSV and exposes
// typed records plus null-safe distinct-value listing. The table is loaded
// once and never mutated; all downstream aggregation is read-only.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/statzone/iplstats/internal/model"
)

// DataLoadError is fatal at startup: the source file is missing or malformed.
type DataLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dataset %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %s", e.Path, e.Reason)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// requiredColumns is the exact header set the loader insists on. Extra
// columns are tolerated and ignored; a missing one fails the load.
var requiredColumns = []string{
	"id", "season", "city", "date", "team1", "team2",
	"toss_decision", "winner", "venue", "result",
	"result_margin", "target_runs", "super_over", "player_of_match",
}

// dateLayouts covers the formats seen across IPL dataset dumps.
var dateLayouts = []string{"2006-01-02", "02-01-2006", "2006/01/02"}

// Dataset is the parsed, immutable match table with per-category
// distinct-value indexes.
type Dataset struct {
	Records  []model.MatchRecord
	distinct map[model.EntityCategory][]string
}

// Load parses the CSV at path. It fails with *DataLoadError on a missing
// file, a missing required column, or an unparseable date.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "open source", Err: err}
	}
	defer f.Close()

	ds, err := parse(path, f)
	if err != nil {
		return nil, err
	}
	slog.Info("dataset loaded", "path", path, "matches", len(ds.Records))
	return ds, nil
}

var (
	sharedOnce sync.Once
	shared     *Dataset
	sharedErr  error
)

// Shared returns the process-wide dataset, loading it on first use. The
// first path wins; the cache lives for the process lifetime.
func Shared(path string) (*Dataset, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = Load(path)
	})
	return shared, sharedErr
}

func parse(path string, f io.Reader) (*Dataset, error) {
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, &DataLoadError{Path: path, Reason: "read header", Err: err}
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &DataLoadError{Path: path, Reason: fmt.Sprintf("missing column %q", col)}
		}
	}

	var records []model.MatchRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataLoadError{Path: path, Reason: fmt.Sprintf("read row %d", line+1), Err: err}
		}
		line++

		rec, err := parseRecord(idx, row, line)
		if err != nil {
			return nil, &DataLoadError{Path: path, Reason: fmt.Sprintf("row %d", line), Err: err}
		}
		records = append(records, rec)
	}

	ds := &Dataset{Records: records}
	ds.buildDistinct()
	return ds, nil
}

// cell returns the named field with NA-as-null normalization applied.
func cell(idx map[string]int, row []string, col string) string {
	i := idx[col]
	if i >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[i])
	if v == "NA" || v == "N/A" {
		return ""
	}
	return v
}

func parseRecord(idx map[string]int, row []string, line int) (model.MatchRecord, error) {
	var rec model.MatchRecord

	if raw := cell(idx, row, "id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return rec, fmt.Errorf("id %q: %w", raw, err)
		}
		rec.ID = id
	} else {
		rec.ID = line - 1
	}

	rawDate := cell(idx, row, "date")
	date, err := parseDate(rawDate)
	if err != nil {
		return rec, err
	}
	rec.Date = date

	rec.Season = cell(idx, row, "season")
	rec.City = cell(idx, row, "city")
	rec.Team1 = cell(idx, row, "team1")
	rec.Team2 = cell(idx, row, "team2")
	rec.Winner = cell(idx, row, "winner")
	rec.Venue = cell(idx, row, "venue")
	rec.PlayerOfMatch = cell(idx, row, "player_of_match")

	switch strings.ToLower(cell(idx, row, "toss_decision")) {
	case "bat":
		rec.TossDecision = model.TossBat
	case "field", "bowl":
		rec.TossDecision = model.TossField
	}

	switch strings.ToLower(cell(idx, row, "result")) {
	case "runs":
		rec.Result = model.ResultRuns
	case "wickets":
		rec.Result = model.ResultWickets
	case "tie":
		rec.Result = model.ResultTie
	case "no result":
		rec.Result = model.ResultNoResult
	}

	// Numeric columns follow the source's permissive encoding: anything
	// unparseable counts as null rather than failing the load.
	if raw := cell(idx, row, "result_margin"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			rec.ResultMargin = v
			rec.HasMargin = true
		}
	}
	if raw := cell(idx, row, "target_runs"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			rec.TargetRuns = v
			rec.HasTarget = true
		}
	}
	rec.SuperOver = strings.EqualFold(cell(idx, row, "super_over"), "Y")

	return rec, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func (d *Dataset) buildDistinct() {
	sets := map[model.EntityCategory]map[string]struct{}{
		model.CategoryPlayer: {},
		model.CategoryTeam:   {},
		model.CategoryVenue:  {},
		model.CategorySeason: {},
	}
	add := func(cat model.EntityCategory, v string) {
		if v != "" {
			sets[cat][v] = struct{}{}
		}
	}
	for i := range d.Records {
		r := &d.Records[i]
		add(model.CategoryPlayer, r.PlayerOfMatch)
		add(model.CategoryTeam, r.Team1)
		add(model.CategoryTeam, r.Team2)
		add(model.CategoryVenue, r.Venue)
		add(model.CategorySeason, r.Season)
	}

	d.distinct = make(map[model.EntityCategory][]string, len(sets))
	for cat, set := range sets {
		vals := make([]string, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		d.distinct[cat] = vals
	}
}

// DistinctValues returns the sorted distinct-value domain of a category,
// null/empty values excluded.
func (d *Dataset) DistinctValues(cat model.EntityCategory) []string {
	return d.distinct[cat]
}

// Contains reports whether value is in the category's distinct-value domain.
func (d *Dataset) Contains(cat model.EntityCategory, value string) bool {
	vals := d.distinct[cat]
	i := sort.SearchStrings(vals, value)
	return i < len(vals) && vals[i] == value
}

// Len returns the number of loaded matches.
func (d *Dataset) Len() int { return len(d.Records) }
