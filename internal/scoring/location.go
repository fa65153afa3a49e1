package scoring

import (
	"strings"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// Commute distance tiers in kilometers
const (
	commuteComfortableKm = 50.0
)

// ScoreLocation scores geographic fit: 1.0 for an exact city match or a
// remote-eligible job, partial credit by declared relocation willingness
// and commute distance tiers. Returns false when either side declares no
// location at all.
func ScoreLocation(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	if cf.Location == nil || jf.Location == nil {
		return types.DimensionScore{}, false
	}

	ds := types.DimensionScore{
		Dimension:    types.DimensionLocation,
		Completeness: 1.0,
		WeightFactor: 1.0,
	}

	cand := cf.Location
	job := jf.Location

	sameCity := cand.City != "" && strings.EqualFold(cand.City, job.City)
	sameCountry := cand.Country != "" && strings.EqualFold(cand.Country, job.Country)

	switch {
	case job.Remote:
		ds.Score = 1.0
		ds.Rationale = "job is remote-eligible"
	case sameCity:
		ds.Score = 1.0
		ds.Rationale = "candidate is already in " + job.City
	case sameCountry && cand.WillingToRelocate:
		ds.Score = 0.8
		ds.Rationale = "same country and willing to relocate"
	case sameCountry && cand.CommuteKm >= commuteComfortableKm:
		ds.Score = 0.6
		ds.Rationale = "same country with a long declared commute range"
	case sameCountry && cand.CommuteKm > 0:
		ds.Score = 0.4
		ds.Rationale = "same country but limited commute range"
	case sameCountry:
		ds.Score = 0.3
		ds.Rationale = "same country, no declared flexibility"
	case cand.WillingToRelocate:
		ds.Score = 0.5
		ds.Rationale = "different country but willing to relocate"
	default:
		ds.Score = 0.1
		ds.Rationale = "different country with no declared flexibility"
	}

	return ds, true
}
