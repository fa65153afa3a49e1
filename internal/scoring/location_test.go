package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

func locFeatures(cand, job *types.Location) (*features.CandidateFeatures, *features.JobFeatures) {
	return &features.CandidateFeatures{Location: cand}, &features.JobFeatures{Location: job}
}

func TestScoreLocation_MissingEitherSideIsInapplicable(t *testing.T) {
	cf, jf := locFeatures(nil, &types.Location{City: "Berlin"})
	_, ok := ScoreLocation(cf, jf)
	assert.False(t, ok)

	cf, jf = locFeatures(&types.Location{City: "Berlin"}, nil)
	_, ok = ScoreLocation(cf, jf)
	assert.False(t, ok)
}

func TestScoreLocation_RemoteJob(t *testing.T) {
	cf, jf := locFeatures(
		&types.Location{City: "Lisbon", Country: "PT"},
		&types.Location{City: "Berlin", Country: "DE", Remote: true},
	)

	ds, ok := ScoreLocation(cf, jf)
	require.True(t, ok)
	assert.InDelta(t, 1.0, ds.Score, 0.0001)
}

func TestScoreLocation_SameCity(t *testing.T) {
	cf, jf := locFeatures(
		&types.Location{City: "berlin", Country: "DE"},
		&types.Location{City: "Berlin", Country: "DE"},
	)

	ds, ok := ScoreLocation(cf, jf)
	require.True(t, ok)
	assert.InDelta(t, 1.0, ds.Score, 0.0001, "city comparison is case-insensitive")
}

func TestScoreLocation_SameCountryTiers(t *testing.T) {
	job := &types.Location{City: "Munich", Country: "DE"}

	relocate, _ := ScoreLocation(locFeatures(&types.Location{City: "Berlin", Country: "DE", WillingToRelocate: true}, job))
	longCommute, _ := ScoreLocation(locFeatures(&types.Location{City: "Berlin", Country: "DE", CommuteKm: 80}, job))
	shortCommute, _ := ScoreLocation(locFeatures(&types.Location{City: "Berlin", Country: "DE", CommuteKm: 20}, job))
	rigid, _ := ScoreLocation(locFeatures(&types.Location{City: "Berlin", Country: "DE"}, job))

	assert.InDelta(t, 0.8, relocate.Score, 0.0001)
	assert.InDelta(t, 0.6, longCommute.Score, 0.0001)
	assert.InDelta(t, 0.4, shortCommute.Score, 0.0001)
	assert.InDelta(t, 0.3, rigid.Score, 0.0001)
}

func TestScoreLocation_DifferentCountry(t *testing.T) {
	job := &types.Location{City: "Austin", Country: "US"}

	relocate, _ := ScoreLocation(locFeatures(&types.Location{City: "Berlin", Country: "DE", WillingToRelocate: true}, job))
	rigid, _ := ScoreLocation(locFeatures(&types.Location{City: "Berlin", Country: "DE"}, job))

	assert.InDelta(t, 0.5, relocate.Score, 0.0001)
	assert.InDelta(t, 0.1, rigid.Score, 0.0001)
}
