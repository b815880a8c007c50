package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statzone/iplstats/internal/model"
)

func TestPlayerStats(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(3, "2016", "Mumbai Indians", "Chennai Super Kings", "Mumbai Indians"),
		mkMatch(1, "2016", "Mumbai Indians", "Royal Challengers Bangalore", "Mumbai Indians"),
		mkMatch(7, "2017", "Kolkata Knight Riders", "Mumbai Indians", "Mumbai Indians"),
	}

	ov := PlayerStats(records)
	assert.Equal(t, 3, ov.Awards)
	assert.Equal(t, 4, ov.TeamsInvolved)
	require.True(t, ov.HasFirstAward)
	assert.Equal(t, records[1].Date, ov.FirstAward)
}

func TestPlayerStatsEmpty(t *testing.T) {
	ov := PlayerStats(nil)
	assert.Zero(t, ov.Awards)
	assert.False(t, ov.HasFirstAward)
}

func TestAwardLeaders(t *testing.T) {
	records := []model.MatchRecord{
		mkMatch(1, "2016", "A", "B", "A"),
		mkMatch(2, "2016", "A", "B", "A"),
		mkMatch(3, "2016", "A", "B", "B"),
		mkMatch(4, "2016", "A", "B", "B"),
	}
	records[0].PlayerOfMatch = "V Kohli"
	records[1].PlayerOfMatch = "V Kohli"
	records[2].PlayerOfMatch = "MS Dhoni"
	// records[3] has no POTM and must not count.

	leaders := AwardLeaders(records, 10)
	require.Len(t, leaders, 2)
	assert.Equal(t, "V Kohli", leaders[0].Label)
	assert.Equal(t, 2.0, leaders[0].Value)

	assert.Len(t, AwardLeaders(records, 1), 1)
}
