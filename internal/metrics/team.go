package metrics

import (
	"sort"

	"github.com/statzone/iplstats/internal/model"
)

// TeamOverview summarizes a team's record across its subset.
type TeamOverview struct {
	Matches int
	Wins    int
	WinPct  float64 // undefined sentinel when Matches is zero
}

// TeamStats computes matches, wins and win percentage for a team subset.
// The subset must already be filtered to matches involving the team.
func TeamStats(records []model.MatchRecord, team string) TeamOverview {
	ov := TeamOverview{Matches: len(records)}
	for i := range records {
		if records[i].Winner == team {
			ov.Wins++
		}
	}
	ov.WinPct = WinPercentage(ov.Wins, ov.Matches)
	return ov
}

// SeasonWinLoss is a team's per-season win/loss split. Losses include ties
// and no-results, matching the source's winner-or-not accounting.
type SeasonWinLoss struct {
	Season string
	Wins   int
	Losses int
}

// TeamSeasonWinLoss splits a team's matches into wins and losses per season,
// ordered by season.
func TeamSeasonWinLoss(records []model.MatchRecord, team string) []SeasonWinLoss {
	type wl struct{ wins, losses int }
	bySeason := make(map[string]*wl)
	for i := range records {
		r := &records[i]
		if r.Season == "" {
			continue
		}
		e := bySeason[r.Season]
		if e == nil {
			e = &wl{}
			bySeason[r.Season] = e
		}
		if r.Winner == team {
			e.wins++
		} else {
			e.losses++
		}
	}

	seasons := make([]string, 0, len(bySeason))
	for s := range bySeason {
		seasons = append(seasons, s)
	}
	sort.Strings(seasons)

	out := make([]SeasonWinLoss, 0, len(seasons))
	for _, s := range seasons {
		e := bySeason[s]
		out = append(out, SeasonWinLoss{Season: s, Wins: e.wins, Losses: e.losses})
	}
	return out
}

// TeamWinPctBySeason is the team's per-season win percentage series. Seasons
// with no matches never appear, so every point is defined.
func TeamWinPctBySeason(records []model.MatchRecord, team string) []model.Point {
	split := TeamSeasonWinLoss(records, team)
	points := make([]model.Point, 0, len(split))
	for _, s := range split {
		points = append(points, model.Point{
			Label: s.Season,
			Value: WinPercentage(s.Wins, s.Wins+s.Losses),
		})
	}
	return points
}

// TossOutcome cross-tabulates one toss decision against the team's outcome.
type TossOutcome struct {
	Decision string
	Won      int
	Lost     int
}

// TeamTossOutcomes cross-tabulates the match's toss decision against whether
// the team won, bat first then field.
func TeamTossOutcomes(records []model.MatchRecord, team string) []TossOutcome {
	out := []TossOutcome{
		{Decision: model.TossBat.String()},
		{Decision: model.TossField.String()},
	}
	for i := range records {
		r := &records[i]
		var row *TossOutcome
		switch r.TossDecision {
		case model.TossBat:
			row = &out[0]
		case model.TossField:
			row = &out[1]
		default:
			continue
		}
		if r.Winner == team {
			row.Won++
		} else {
			row.Lost++
		}
	}
	return out
}

// HeadToHead is the outcome split of direct matches between two teams.
// Ties and no-results are counted separately and never attributed to either
// team, so Wins values sum to the number of decided direct matches.
type HeadToHead struct {
	Matches   int
	Wins      []model.Point
	Ties      int
	NoResults int
}

// HeadToHeadWins groups direct matches between a team pair by winner.
func HeadToHeadWins(direct []model.MatchRecord) HeadToHead {
	h := HeadToHead{Matches: len(direct)}
	for i := range direct {
		r := &direct[i]
		switch {
		case r.Result == model.ResultTie:
			h.Ties++
		case r.Result == model.ResultNoResult || !r.Decided():
			h.NoResults++
		}
	}
	decided := make([]model.MatchRecord, 0, len(direct))
	for i := range direct {
		if direct[i].Decided() && direct[i].Result != model.ResultTie && direct[i].Result != model.ResultNoResult {
			decided = append(decided, direct[i])
		}
	}
	h.Wins = WinnerCounts(decided)
	return h
}
