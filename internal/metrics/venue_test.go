package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statzone/iplstats/internal/model"
)

func TestVenueStatsCityFromFirstNonNull(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "B"),
	}
	records[1].City = "Mumbai"

	ov := VenueStats(records)
	assert.Equal(t, 2, ov.Matches)
	assert.Equal(t, "Mumbai", ov.City)
	require.True(t, ov.HasFirstMatch)
	assert.Equal(t, records[0].Date, ov.FirstMatch)
}

func TestVenueStatsNoCity(t *testing.T) {
	ov := VenueStats([]model.MatchRecord{mkMatch(1, "2016", "A", "B", "A")})
	assert.Equal(t, "N/A", ov.City)
}

func TestVenueStatsEmpty(t *testing.T) {
	ov := VenueStats(nil)
	assert.Zero(t, ov.Matches)
	assert.False(t, ov.HasFirstMatch)
	assert.True(t, ov.FirstMatch.Equal(time.Time{}))
}

func TestTeamWinsAtTruncates(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "A"),
		mkMatch(3, "2016", "A", "C", "C"),
		mkMatch(4, "2016", "B", "C", "B"),
	}
	points := TeamWinsAt(records, 2)
	require.Len(t, points, 2)
	assert.Equal(t, "A", points[0].Label)
	assert.Equal(t, 2.0, points[0].Value)
}

func TestSeasonResultSeriesZeroFilled(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2017", "A", "B", "B"),
	}
	records[1].Result = model.ResultWickets

	series := SeasonResultSeries(records)
	require.Len(t, series, 2)
	for _, s := range series {
		require.Len(t, s.Points, 2, "series %q must cover every season", s.Name)
		assert.Equal(t, "2016", s.Points[0].Label)
		assert.Equal(t, "2017", s.Points[1].Label)
	}
	// "runs" happened in 2016 only; 2017 carries an explicit zero.
	runs := series[0]
	assert.Equal(t, "runs", runs.Name)
	assert.Equal(t, 1.0, runs.Points[0].Value)
	assert.Equal(t, 0.0, runs.Points[1].Value)
}

func TestAvgTargetRuns(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "B"),
		mkMatch(3, "2016", "A", "B", "A"),
	}
	records[0].TargetRuns, records[0].HasTarget = 160, true
	records[1].TargetRuns, records[1].HasTarget = 200, true

	assert.Equal(t, 180.0, AvgTargetRuns(records))
	assert.True(t, IsUndefined(AvgTargetRuns(nil)))
}
