package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statzone/iplstats/internal/model"
)

// mkMatch builds a decided runs-result match; tests mutate the fields they
// care about.
func mkMatch(id int, season, team1, team2, winner string) model.MatchRecord {
	return model.MatchRecord{
		ID:     id,
		Date:   time.Date(2016, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, id),
		Season: season,
		Team1:  team1,
		Team2:  team2,
		Winner: winner,
		Result: model.ResultRuns,
	}
}

func TestMeanEmptyIsUndefined(t *testing.T) {
	assert.True(t, IsUndefined(Mean(nil)))
	assert.Equal(t, 42.0, Mean([]float64{42}))
	assert.Equal(t, 15.0, Mean([]float64{10, 20}))
}

func TestWinPercentage(t *testing.T) {
	assert.True(t, IsUndefined(WinPercentage(0, 0)))
	assert.Equal(t, 50.0, WinPercentage(5, 10))
	// Unrounded until presentation.
	assert.InDelta(t, 33.333333, WinPercentage(1, 3), 1e-4)
}

func TestSeasonCountsAscending(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2017", "A", "B", "A"),
		mkMatch(2, "2008", "A", "B", "B"),
		mkMatch(3, "2017", "A", "B", "A"),
		mkMatch(4, "2012", "A", "B", "A"),
	}
	points := SeasonCounts(records)
	require.Len(t, points, 3)
	assert.Equal(t, "2008", points[0].Label)
	assert.Equal(t, "2012", points[1].Label)
	assert.Equal(t, "2017", points[2].Label)
	assert.Equal(t, 2.0, points[2].Value)
}

func TestResultShareSumsToHundred(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "B"),
		mkMatch(3, "2016", "A", "B", "A"),
	}
	records[1].Result = model.ResultWickets
	records[2].Result = model.ResultWickets

	share := ResultShare(records)
	require.Len(t, share, 2)
	// Most frequent first.
	assert.Equal(t, model.ResultWickets.String(), share[0].Label)
	total := 0.0
	for _, p := range share {
		total += p.Value
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	assert.Nil(t, ResultShare(nil))
}

func TestWinnerCountsExcludesUndecided(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "A"),
		mkMatch(3, "2016", "A", "B", "B"),
		mkMatch(4, "2016", "A", "B", ""),
	}
	records[3].Result = model.ResultNoResult

	points := WinnerCounts(records)
	require.Len(t, points, 2)
	assert.Equal(t, "A", points[0].Label)
	assert.Equal(t, 2.0, points[0].Value)
	assert.Equal(t, "B", points[1].Label)
}

func TestTopN(t *testing.T) {
	points := []model.Point{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	assert.Len(t, TopN(points, 2), 2)
	assert.Len(t, TopN(points, 0), 3)
	assert.Len(t, TopN(points, 10), 3)
}

func TestMarginAndTargetValuesSkipNulls(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "B"),
	}
	records[0].ResultMargin = 20
	records[0].HasMargin = true
	records[0].TargetRuns = 180
	records[0].HasTarget = true

	assert.Equal(t, []float64{20}, MarginValues(records))
	assert.Equal(t, []float64{180}, TargetValues(records))
}
