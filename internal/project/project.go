// Package project estimates the achievable score after specific
// remediation and a rough timeline for getting there.
package project

import (
	"github.com/jonathan/jobmatch/internal/explain"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// gapThreshold marks dimensions considered improvable
	gapThreshold = 0.60
	// targetScore is the hypothetical level a remediated dimension reaches
	targetScore = 0.70
	// potentialCap bounds the projected score; a projection never promises
	// perfection.
	potentialCap = 0.95
)

// Build derives an improvement plan from a match result: one projection
// per gap dimension plus the combined potential score with every gap
// closed, capped at the potential ceiling.
func Build(result *types.MatchResult, w scoring.Weights) *types.ImprovementPlan {
	plan := &types.ImprovementPlan{
		CandidateID:  result.CandidateID,
		JobID:        result.JobID,
		CurrentScore: result.OverallScore,
		Timeline:     timeline(result.OverallScore),
	}

	raised := make(map[types.Dimension]types.DimensionScore, len(result.Dimensions))
	for d, ds := range result.Dimensions {
		raised[d] = ds
	}

	for _, ds := range result.DimensionList() {
		if ds.Score >= gapThreshold {
			continue
		}
		delta := explain.HypotheticalDelta(result, w, ds.Dimension, targetScore)
		plan.Projections = append(plan.Projections, types.DimensionProjection{
			Dimension:      ds.Dimension,
			CurrentScore:   ds.Score,
			TargetScore:    targetScore,
			ProjectedScore: result.OverallScore + delta,
			Delta:          delta,
		})

		lifted := raised[ds.Dimension]
		lifted.Score = targetScore
		raised[ds.Dimension] = lifted
	}

	if len(plan.Projections) == 0 {
		plan.PotentialScore = min(result.OverallScore, potentialCap)
		return plan
	}

	combined, _ := scoring.Aggregate(raised, w)
	if combined < result.OverallScore {
		combined = result.OverallScore
	}
	plan.PotentialScore = min(combined, potentialCap)
	return plan
}

// timeline maps the current overall score to a qualitative readiness window
func timeline(overall float64) string {
	switch {
	case overall >= 0.80:
		return "ready now"
	case overall >= 0.65:
		return "2-8 weeks of focused preparation"
	case overall >= 0.50:
		return "1-3 months of preparation"
	default:
		return "3-6 months of sustained improvement"
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
