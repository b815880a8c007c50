// Package resolve turns a validated (category, value) selection into the
// subset of match records it denotes. Filtering is expressed as boolean
// expressions evaluated per record with go-bexpr, so each category is one
// expression template rather than a hand-rolled predicate.
package resolve

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-bexpr"

	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/model"
)

// UnknownEntityError rejects a selection value absent from the category's
// distinct-value domain. Only the current query is affected.
type UnknownEntityError struct {
	Category model.EntityCategory
	Value    string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown %s %q", strings.ToLower(e.Category.String()), e.Value)
}

// Filter returns the records matching value under the category's rule:
// Player matches the player-of-match column, Team matches either side,
// Venue and Season match their columns directly.
func Filter(ds *dataset.Dataset, cat model.EntityCategory, value string) ([]model.MatchRecord, error) {
	if !ds.Contains(cat, value) {
		return nil, &UnknownEntityError{Category: cat, Value: value}
	}
	return matching(ds, categoryExpr(cat, value))
}

// HeadToHead returns the direct matches between two validated teams, in
// either team1/team2 order.
func HeadToHead(ds *dataset.Dataset, teamA, teamB string) ([]model.MatchRecord, error) {
	for _, team := range []string{teamA, teamB} {
		if !ds.Contains(model.CategoryTeam, team) {
			return nil, &UnknownEntityError{Category: model.CategoryTeam, Value: team}
		}
	}
	expr := fmt.Sprintf("(Team1 == %s and Team2 == %s) or (Team1 == %s and Team2 == %s)",
		quote(teamA), quote(teamB), quote(teamB), quote(teamA))
	return matching(ds, expr)
}

func matching(ds *dataset.Dataset, expr string) ([]model.MatchRecord, error) {
	ev, err := bexpr.CreateEvaluator(expr)
	if err != nil {
		return nil, fmt.Errorf("parse filter expression %q: %w", expr, err)
	}

	out := []model.MatchRecord{}
	for i := range ds.Records {
		rec := &ds.Records[i]
		ok, err := ev.Evaluate(recordVars(rec))
		if err != nil {
			return nil, fmt.Errorf("evaluate filter on match %d: %w", rec.ID, err)
		}
		if ok {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func categoryExpr(cat model.EntityCategory, value string) string {
	v := quote(value)
	switch cat {
	case model.CategoryPlayer:
		return fmt.Sprintf("PlayerOfMatch == %s", v)
	case model.CategoryTeam:
		return fmt.Sprintf("Team1 == %s or Team2 == %s", v, v)
	case model.CategoryVenue:
		return fmt.Sprintf("Venue == %s", v)
	default:
		return fmt.Sprintf("Season == %s", v)
	}
}

// recordVars exposes the filterable columns of a record to the evaluator.
func recordVars(r *model.MatchRecord) map[string]string {
	return map[string]string{
		"PlayerOfMatch": r.PlayerOfMatch,
		"Team1":         r.Team1,
		"Team2":         r.Team2,
		"Venue":         r.Venue,
		"Season":        r.Season,
	}
}

// quote renders a value as a bexpr string literal. Venue and player names
// carry quotes and punctuation, so escaping is not optional.
func quote(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `"`, `\"`)
	return `"` + v + `"`
}
