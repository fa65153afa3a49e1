package scoring

import (
	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// Confidence on inferred-signal dimensions is capped below declared-data
// dimensions: the inputs are derived from text, not stated by either side.
const (
	inferredCompletenessCap     = 0.7
	lexicalFallbackCompleteness = 0.4
)

// ScorePersonality scores the similarity between the candidate's derived
// trait signals and the job's culture signals. Uses embedding vectors
// when the collaborator supplied them, falling back to deterministic
// lexical overlap when it did not. Returns false when either side has no
// signals to compare.
func ScorePersonality(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	return vectorDimension(types.DimensionPersonality,
		cf.TraitText, jf.CultureText, cf.TraitVector, jf.CultureVector,
		"candidate traits", "role culture")
}

// ScoreCulture scores the candidate's declared work values against the
// job's culture signals, using the same similarity machinery as the
// personality dimension. Returns false when either side has no signals.
func ScoreCulture(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	return vectorDimension(types.DimensionCulture,
		cf.ValueText, jf.CultureText, cf.ValueVector, jf.CultureVector,
		"candidate values", "team culture")
}

func vectorDimension(dim types.Dimension, textA, textB string, vecA, vecB []float32, labelA, labelB string) (types.DimensionScore, bool) {
	if textA == "" || textB == "" {
		return types.DimensionScore{}, false
	}

	ds := types.DimensionScore{
		Dimension:    dim,
		WeightFactor: 1.0,
	}

	if len(vecA) > 0 && len(vecB) > 0 {
		ds.Score = clamp01(embedding.CosineToUnit(embedding.Cosine(vecA, vecB)))
		ds.Completeness = inferredCompletenessCap
		ds.Rationale = labelA + " compared against " + labelB + " by embedding similarity"
		return ds, true
	}

	// Embedding collaborator unavailable: degrade to lexical overlap with
	// a neutral center so sparse text never reads as strong disagreement.
	overlap := embedding.TokenSimilarity(textA, textB)
	ds.Score = clamp01(0.5 + overlap/2)
	ds.Completeness = lexicalFallbackCompleteness
	ds.Rationale = labelA + " compared against " + labelB + " by word overlap (embeddings unavailable)"
	return ds, true
}
