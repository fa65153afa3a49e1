package scoring

import (
	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// inapplicableCompleteness is what an absent dimension contributes to the
// completeness average: we know why it is absent, but it still carries no
// signal about the match.
const inapplicableCompleteness = 0.5

// ScoreAll runs every dimension scorer over the feature bundles and
// returns the applicable dimension scores. Pure and deterministic: no
// randomness, no wall clock, safe for concurrent use.
func ScoreAll(cf *features.CandidateFeatures, jf *features.JobFeatures) map[types.Dimension]types.DimensionScore {
	scorers := []func(*features.CandidateFeatures, *features.JobFeatures) (types.DimensionScore, bool){
		ScoreSkills,
		ScoreExperience,
		ScorePersonality,
		ScoreLocation,
		ScoreEducation,
		ScoreCompensation,
		ScoreCulture,
	}

	out := make(map[types.Dimension]types.DimensionScore, len(scorers))
	for _, score := range scorers {
		if ds, ok := score(cf, jf); ok {
			out[ds.Dimension] = ds
		}
	}
	return out
}

// Aggregate combines dimension scores into an overall score and a
// confidence value. Overall is the weighted mean over applicable
// dimensions, re-normalized so applied weights sum to 1.0. Confidence is
// the average of data completeness and score consistency (1 minus the
// normalized variance of dimension scores). Both are clamped to [0,1].
// Summation runs in stable dimension order so repeated calls are
// bit-identical.
func Aggregate(scores map[types.Dimension]types.DimensionScore, w Weights) (overall, confidence float64) {
	applied := AppliedWeights(scores, w)

	for _, d := range types.AllDimensions {
		if ds, ok := scores[d]; ok {
			overall += ds.Score * applied[d]
		}
	}
	overall = clamp01(overall)

	confidence = clamp01((completeness(scores) + consistency(scores)) / 2)
	return overall, confidence
}

// AppliedWeights returns the normalized weight actually applied per
// dimension: published weight times the dimension's weight factor,
// re-normalized over the applicable dimensions so the sum is 1.0.
func AppliedWeights(scores map[types.Dimension]types.DimensionScore, w Weights) map[types.Dimension]float64 {
	raw := make(map[types.Dimension]float64, len(scores))
	total := 0.0
	for _, d := range types.AllDimensions {
		ds, ok := scores[d]
		if !ok {
			continue
		}
		weight := w.For(d) * ds.WeightFactor
		raw[d] = weight
		total += weight
	}
	if total == 0 {
		return raw
	}
	for d := range raw {
		raw[d] /= total
	}
	return raw
}

// completeness averages data quality across all published dimensions,
// counting inapplicable dimensions at a neutral half.
func completeness(scores map[types.Dimension]types.DimensionScore) float64 {
	if len(types.AllDimensions) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range types.AllDimensions {
		if ds, ok := scores[d]; ok {
			sum += ds.Completeness
		} else {
			sum += inapplicableCompleteness
		}
	}
	return sum / float64(len(types.AllDimensions))
}

// consistency maps score variance to [0,1]: dimensions that agree produce
// a consistent signal and deserve higher confidence. Variance of values
// in [0,1] peaks at 0.25, which normalizes the term.
func consistency(scores map[types.Dimension]types.DimensionScore) float64 {
	n := len(scores)
	if n < 2 {
		return 1.0
	}

	mean := 0.0
	for _, d := range types.AllDimensions {
		if ds, ok := scores[d]; ok {
			mean += ds.Score
		}
	}
	mean /= float64(n)

	variance := 0.0
	for _, d := range types.AllDimensions {
		if ds, ok := scores[d]; ok {
			diff := ds.Score - mean
			variance += diff * diff
		}
	}
	variance /= float64(n)

	return clamp01(1.0 - variance/0.25)
}
