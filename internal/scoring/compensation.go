package scoring

import (
	"fmt"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// ScoreCompensation scores how the candidate's expectation fits the job's
// offered band: 1.0 at or below the maximum and at or above 80% of the
// minimum, decaying outside. When exactly one side is declared the score
// is a neutral 0.5 with the dimension weight halved; when neither side is
// declared the dimension is inapplicable.
func ScoreCompensation(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	hasExpectation := cf.ExpectedPay != nil
	hasBand := jf.Compensation != nil

	if !hasExpectation && !hasBand {
		return types.DimensionScore{}, false
	}

	ds := types.DimensionScore{
		Dimension:    types.DimensionCompensation,
		Completeness: 1.0,
		WeightFactor: 1.0,
	}

	if !hasExpectation || !hasBand {
		ds.Score = 0.5
		ds.WeightFactor = 0.5
		ds.Completeness = 0.4
		if hasBand {
			ds.Rationale = "candidate declares no expectation; neutral fit assumed"
		} else {
			ds.Rationale = "job declares no band; neutral fit assumed"
		}
		return ds, true
	}

	expected := *cf.ExpectedPay
	band := jf.Compensation
	lower := band.Min * 0.8

	switch {
	case expected >= lower && expected <= band.Max:
		ds.Score = 1.0
		ds.Rationale = "expectation sits inside the offered band"
	case expected > band.Max:
		// A zero maximum leaves no denominator for a relative overshoot
		if band.Max <= 0 {
			ds.Score = 0.1
			ds.Rationale = "expectation exceeds a band with no stated maximum"
			return ds, true
		}
		// Relative overshoot decays linearly
		over := (expected - band.Max) / band.Max
		ds.Score = floorClamp(1.0-over, 0.1)
		ds.Rationale = fmt.Sprintf("expectation exceeds the offered maximum by %.0f%%", over*100)
	default:
		// Asking well under the band suggests a level mismatch
		under := (lower - expected) / lower
		ds.Score = floorClamp(1.0-under, 0.1)
		ds.Rationale = fmt.Sprintf("expectation is %.0f%% below the offered band", under*100)
	}

	return ds, true
}
