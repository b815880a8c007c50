package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statzone/iplstats/internal/model"
)

func TestSeasonStats(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "B", "C", "C"),
		mkMatch(3, "2016", "A", "C", "A"),
	}
	records[1].SuperOver = true

	ov := SeasonStats(records)
	assert.Equal(t, 3, ov.Matches)
	assert.Equal(t, 3, ov.Teams)
	assert.Equal(t, 1, ov.SuperOvers)
}

func TestAvgResultMargin(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "B"),
	}
	records[0].ResultMargin, records[0].HasMargin = 10, true
	records[1].ResultMargin, records[1].HasMargin = 30, true

	assert.Equal(t, 20.0, AvgResultMargin(records))
	assert.True(t, IsUndefined(AvgResultMargin(nil)))
}

func TestTargetMarginScatterSkipsPartialRows(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "B"),
		mkMatch(3, "2016", "A", "B", "A"),
	}
	records[0].TargetRuns, records[0].HasTarget = 170, true
	records[0].ResultMargin, records[0].HasMargin = 25, true
	records[0].Result = model.ResultWickets
	records[1].TargetRuns, records[1].HasTarget = 150, true // margin missing

	points := TargetMarginScatter(records)
	require.Len(t, points, 1)
	assert.Equal(t, 170.0, points[0].X)
	assert.Equal(t, 25.0, points[0].Y)
	assert.Equal(t, "wickets", points[0].Tag)
}
