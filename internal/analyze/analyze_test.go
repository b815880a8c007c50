package analyze

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statzone/iplstats/internal/dataset"
	"github.com/statzone/iplstats/internal/model"
	"github.com/statzone/iplstats/internal/resolve"
)

const fixtureCSV = `id,season,city,date,team1,team2,toss_decision,winner,venue,result,result_margin,target_runs,super_over,player_of_match
1,2016,Mumbai,2016-04-09,Mumbai Indians,Chennai Super Kings,bat,Mumbai Indians,Wankhede Stadium,runs,25,180,N,RG Sharma
2,2016,Chennai,2016-04-12,Chennai Super Kings,Mumbai Indians,field,Chennai Super Kings,MA Chidambaram Stadium,wickets,6,150,N,MS Dhoni
3,2016,Bangalore,2016-04-20,Royal Challengers Bangalore,Mumbai Indians,field,Mumbai Indians,M Chinnaswamy Stadium,wickets,7,165,N,RG Sharma
4,2017,Mumbai,2017-04-10,Mumbai Indians,Chennai Super Kings,field,,Wankhede Stadium,tie,,155,Y,
5,2017,Kolkata,2017-04-14,Kolkata Knight Riders,Chennai Super Kings,bat,Chennai Super Kings,Eden Gardens,wickets,5,140,N,MS Dhoni
`

func loadFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	ds, err := dataset.Load(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return ds
}

func TestAnalyzeSingleModeComparativeNotice(t *testing.T) {
	ds := loadFixture(t)
	res, err := Analyze(ds, model.CategoryTeam, "Mumbai Indians", "", Options{})
	require.NoError(t, err)
	assert.False(t, res.Dual)

	comp := res.View(model.ViewComparative)
	assert.Equal(t, "select a second team to compare", comp.Notice)
	assert.Empty(t, comp.Scalars)

	// The other views still compute.
	ov := res.View(model.ViewOverview)
	require.NotEmpty(t, ov.Scalars)
	assert.Equal(t, "Total Matches", ov.Scalars[0].Name)
	assert.Equal(t, 4.0, ov.Scalars[0].Value)
}

func TestAnalyzeDualModeHeadToHead(t *testing.T) {
	ds := loadFixture(t)
	res, err := Analyze(ds, model.CategoryTeam, "Mumbai Indians", "Chennai Super Kings", Options{})
	require.NoError(t, err)
	assert.True(t, res.Dual)

	comp := res.View(model.ViewComparative)
	require.NoError(t, comp.Err)

	byName := make(map[string]float64)
	for _, s := range comp.Scalars {
		byName[s.Name] = s.Value
	}
	assert.Equal(t, 3.0, byName["Direct Matches"])
	assert.Equal(t, 1.0, byName["Ties"])
	assert.Equal(t, 0.0, byName["No Results"])

	require.Len(t, comp.Series, 1)
	decided := 0.0
	for _, p := range comp.Series[0].Points {
		decided += p.Value
	}
	assert.Equal(t, 2.0, decided)
}

func TestAnalyzeRecordsOrdering(t *testing.T) {
	ds := loadFixture(t)

	// Team records list newest first.
	team, err := Analyze(ds, model.CategoryTeam, "Chennai Super Kings", "", Options{})
	require.NoError(t, err)
	rows := team.View(model.ViewRecords).Rows
	require.Len(t, rows, 4)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i-1].Date.Before(rows[i].Date))
	}

	// Season records list oldest first.
	season, err := Analyze(ds, model.CategorySeason, "2016", "", Options{})
	require.NoError(t, err)
	rows = season.View(model.ViewRecords).Rows
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.False(t, rows[i-1].Date.After(rows[i].Date))
	}
}

func TestAnalyzeRecordsCountScalar(t *testing.T) {
	ds := loadFixture(t)
	res, err := Analyze(ds, model.CategoryPlayer, "RG Sharma", "", Options{})
	require.NoError(t, err)

	rec := res.View(model.ViewRecords)
	require.Len(t, rec.Scalars, 1)
	assert.Equal(t, "Matches", rec.Scalars[0].Name)
	assert.Equal(t, float64(len(rec.Rows)), rec.Scalars[0].Value)
}

func TestAnalyzeMissingPrimary(t *testing.T) {
	ds := loadFixture(t)
	_, err := Analyze(ds, model.CategoryTeam, "  ", "", Options{})
	var missing *MissingSelectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, model.CategoryTeam, missing.Category)
}

func TestAnalyzeUnknownEntity(t *testing.T) {
	ds := loadFixture(t)
	_, err := Analyze(ds, model.CategorySeason, "2030", "", Options{})
	var unknown *resolve.UnknownEntityError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "2030", unknown.Value)
}

func TestAnalyzeSeasonViews(t *testing.T) {
	ds := loadFixture(t)
	res, err := Analyze(ds, model.CategorySeason, "2017", "2016", Options{})
	require.NoError(t, err)

	ov := res.View(model.ViewOverview)
	byName := make(map[string]float64)
	for _, s := range ov.Scalars {
		byName[s.Name] = s.Value
	}
	assert.Equal(t, 2.0, byName["Total Matches"])
	assert.Equal(t, 1.0, byName["Super Overs"])

	// The 2017 tie has no margin; only the KKR match contributes a point.
	results := res.View(model.ViewResults)
	require.Len(t, results.Distributions, 1)
	assert.Equal(t, []float64{5}, results.Distributions[0].Values)
	require.Len(t, results.Scatter, 1)
	assert.Equal(t, "wickets", results.Scatter[0].Tag)

	comp := res.View(model.ViewComparative)
	require.NoError(t, comp.Err)
	require.Len(t, comp.Series, 2)
	assert.Equal(t, "Top Teams 2017", comp.Series[0].Name)
}

func TestAnalyzeVenueViews(t *testing.T) {
	ds := loadFixture(t)
	res, err := Analyze(ds, model.CategoryVenue, "Wankhede Stadium", "", Options{TopN: 3})
	require.NoError(t, err)

	ov := res.View(model.ViewOverview)
	labels := make(map[string]string)
	for _, s := range ov.Scalars {
		labels[s.Name] = s.Text
	}
	assert.Equal(t, "Mumbai", labels["Home City"])
	assert.Equal(t, "2016-04-09", labels["First Match"])

	results := res.View(model.ViewResults)
	require.NotEmpty(t, results.Series)
	assert.Equal(t, "Most Successful Teams", results.Series[0].Name)
}
