package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statzone/iplstats/internal/model"
)

const (
	mumbai  = "Mumbai Indians"
	chennai = "Chennai Super Kings"
)

// mumbaiSubset builds 10 Mumbai matches across two seasons: 5 wins,
// 3 defeats, 1 tie and 1 no-result.
func mumbaiSubset() []model.MatchRecord {
	records := make([]model.MatchRecord, 0, 10)
	for i := 0; i < 5; i++ {
		records = append(records, mkMatch(i, "2016", mumbai, chennai, mumbai))
	}
	for i := 5; i < 8; i++ {
		records = append(records, mkMatch(i, "2017", mumbai, chennai, chennai))
	}
	tie := mkMatch(8, "2017", mumbai, chennai, "")
	tie.Result = model.ResultTie
	noResult := mkMatch(9, "2017", mumbai, chennai, "")
	noResult.Result = model.ResultNoResult
	return append(records, tie, noResult)
}

func TestTeamStats(t *testing.T) {
	ov := TeamStats(mumbaiSubset(), mumbai)
	assert.Equal(t, 10, ov.Matches)
	assert.Equal(t, 5, ov.Wins)
	assert.Equal(t, 50.0, ov.WinPct)
}

func TestTeamStatsEmptySubset(t *testing.T) {
	ov := TeamStats(nil, mumbai)
	assert.Zero(t, ov.Matches)
	assert.True(t, IsUndefined(ov.WinPct))
}

func TestTeamSeasonWinLossCountsUndecidedAsLosses(t *testing.T) {
	split := TeamSeasonWinLoss(mumbaiSubset(), mumbai)
	require.Len(t, split, 2)

	assert.Equal(t, "2016", split[0].Season)
	assert.Equal(t, 5, split[0].Wins)
	assert.Equal(t, 0, split[0].Losses)

	// The tie and the no-result land on the loss side: the team did not win.
	assert.Equal(t, "2017", split[1].Season)
	assert.Equal(t, 0, split[1].Wins)
	assert.Equal(t, 5, split[1].Losses)
}

func TestTeamWinPctBySeason(t *testing.T) {
	points := TeamWinPctBySeason(mumbaiSubset(), mumbai)
	require.Len(t, points, 2)
	assert.Equal(t, 100.0, points[0].Value)
	assert.Equal(t, 0.0, points[1].Value)
}

func TestTeamTossOutcomes(t *testing.T) {
	records := mumbaiSubset()
	for i := range records {
		if i%2 == 0 {
			records[i].TossDecision = model.TossBat
		} else {
			records[i].TossDecision = model.TossField
		}
	}
	// One record without a toss decision must be skipped entirely.
	records[0].TossDecision = model.TossUnknown

	rows := TeamTossOutcomes(records, mumbai)
	require.Len(t, rows, 2)
	assert.Equal(t, "bat", rows[0].Decision)
	assert.Equal(t, "field", rows[1].Decision)
	assert.Equal(t, 9, rows[0].Won+rows[0].Lost+rows[1].Won+rows[1].Lost)
}

func TestHeadToHeadWinsSumToDecided(t *testing.T) {
	h := HeadToHeadWins(mumbaiSubset())
	assert.Equal(t, 10, h.Matches)
	assert.Equal(t, 1, h.Ties)
	assert.Equal(t, 1, h.NoResults)

	decided := 0.0
	for _, p := range h.Wins {
		decided += p.Value
	}
	assert.Equal(t, 8.0, decided)
	require.Len(t, h.Wins, 2)
	assert.Equal(t, mumbai, h.Wins[0].Label)
	assert.Equal(t, 5.0, h.Wins[0].Value)
}
