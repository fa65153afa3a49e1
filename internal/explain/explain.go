// Package explain converts a MatchResult into a human-auditable view:
// match level, ranked strengths and gaps, and an actionable plan.
package explain

import (
	"fmt"
	"sort"

	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/types"
)

// Thresholds for bucketing dimensions and match levels
const (
	strengthThreshold = 0.70
	gapThreshold      = 0.60
	gapTarget         = 0.70 // hypothetical score a closed gap is raised to
)

// matchLevel maps an overall score to its named tier
func matchLevel(overall float64) types.MatchLevel {
	switch {
	case overall >= 0.85:
		return types.LevelExcellent
	case overall >= 0.70:
		return types.LevelStrong
	case overall >= 0.55:
		return types.LevelGood
	case overall >= 0.40:
		return types.LevelFair
	default:
		return types.LevelDeveloping
	}
}

// recommendations maps each tier to its fixed recommendation string
var recommendations = map[types.MatchLevel]string{
	types.LevelExcellent:  "Excellent match. Apply with confidence.",
	types.LevelStrong:     "Strong match. Apply, and tailor your application to close the remaining gaps.",
	types.LevelGood:       "Good match. A targeted application addressing the gaps below could work well.",
	types.LevelFair:       "Fair match. Close the highest-impact gaps before applying.",
	types.LevelDeveloping: "Developing match. Build the core requirements before investing in an application.",
}

// dimensionLabels for rationale text
var dimensionLabels = map[types.Dimension]string{
	types.DimensionSkills:       "skill coverage",
	types.DimensionExperience:   "experience level",
	types.DimensionPersonality:  "personality fit",
	types.DimensionLocation:     "location fit",
	types.DimensionEducation:    "education",
	types.DimensionCompensation: "compensation alignment",
	types.DimensionCulture:      "culture alignment",
}

// Generate derives an Explanation from a match result under the given
// weight table. Pure: the result is never mutated.
func Generate(result *types.MatchResult, w scoring.Weights) *types.Explanation {
	level := matchLevel(result.OverallScore)

	exp := &types.Explanation{
		CandidateID:    result.CandidateID,
		JobID:          result.JobID,
		OverallScore:   result.OverallScore,
		Confidence:     result.Confidence,
		Level:          level,
		Recommendation: recommendations[level],
		Strengths:      strengths(result),
		Gaps:           gaps(result, w),
	}
	exp.ActionPlan = actionPlan(result, w, exp.Gaps)
	return exp
}

// strengths lists dimensions scoring at or above the strength threshold,
// sorted by score descending with dimension order as a stable tiebreak.
func strengths(result *types.MatchResult) []types.Highlight {
	out := make([]types.Highlight, 0)
	for _, ds := range result.DimensionList() {
		if ds.Score < strengthThreshold {
			continue
		}
		out = append(out, types.Highlight{
			Dimension: ds.Dimension,
			Score:     ds.Score,
			Summary:   fmt.Sprintf("%s scores %.2f: %s", dimensionLabels[ds.Dimension], ds.Score, ds.Rationale),
			Matched:   ds.Matched,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// gaps lists dimensions below the gap threshold, ranked by how much each
// one depresses the overall score: applied weight x (threshold - score).
func gaps(result *types.MatchResult, w scoring.Weights) []types.Gap {
	applied := scoring.AppliedWeights(result.Dimensions, w)

	out := make([]types.Gap, 0)
	for _, ds := range result.DimensionList() {
		if ds.Score >= gapThreshold {
			continue
		}
		out = append(out, types.Gap{
			Dimension: ds.Dimension,
			Score:     ds.Score,
			Impact:    applied[ds.Dimension] * (gapThreshold - ds.Score),
			Summary:   fmt.Sprintf("%s scores %.2f: %s", dimensionLabels[ds.Dimension], ds.Score, ds.Rationale),
			Missing:   ds.Missing,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Impact > out[j].Impact
	})
	return out
}

// actionPlan buckets gap remediation into immediate, short-term, and
// long-term actions. Each gap action carries the overall-score delta from
// re-aggregating with that dimension hypothetically raised to the target.
func actionPlan(result *types.MatchResult, w scoring.Weights, gapList []types.Gap) []types.Action {
	plan := make([]types.Action, 0, len(gapList)+1)

	if result.OverallScore >= strengthThreshold {
		plan = append(plan, types.Action{
			Horizon:        types.HorizonImmediate,
			Description:    "Tailor your resume and cover letter to mirror the posting's language and highlight your matched strengths.",
			EstimatedDelta: 0.02,
			Window:         "this week",
		})
	}

	for _, gap := range gapList {
		delta := HypotheticalDelta(result, w, gap.Dimension, gapTarget)
		switch gap.Dimension {
		case types.DimensionSkills, types.DimensionEducation:
			plan = append(plan, types.Action{
				Horizon:        types.HorizonShortTerm,
				Description:    shortTermDescription(gap),
				Dimension:      gap.Dimension,
				EstimatedDelta: delta,
				Window:         "2-8 weeks",
			})
		case types.DimensionExperience:
			plan = append(plan, types.Action{
				Horizon:        types.HorizonLongTerm,
				Description:    "Accumulate relevant experience through projects, freelance work, or internal role changes.",
				Dimension:      gap.Dimension,
				EstimatedDelta: delta,
				Window:         "3-6 months",
			})
		default:
			plan = append(plan, types.Action{
				Horizon:        types.HorizonImmediate,
				Description:    immediateDescription(gap),
				Dimension:      gap.Dimension,
				EstimatedDelta: delta,
				Window:         "this week",
			})
		}
	}

	return plan
}

func shortTermDescription(gap types.Gap) string {
	if gap.Dimension == types.DimensionSkills && len(gap.Missing) > 0 {
		return fmt.Sprintf("Earn a certification or complete a focused course covering %s.", joinMax(gap.Missing, 3))
	}
	if gap.Dimension == types.DimensionEducation {
		return "Pursue a certificate or credential that satisfies the stated education requirement."
	}
	return "Complete a focused certification that addresses this gap."
}

func immediateDescription(gap types.Gap) string {
	switch gap.Dimension {
	case types.DimensionCompensation:
		return "Revisit your compensation expectation against the offered band, or surface flexibility in your application."
	case types.DimensionLocation:
		return "Declare relocation or commute flexibility on your profile if you have it."
	default:
		return "Emphasize alignment with the team's stated culture and values in your application materials."
	}
}

func joinMax(items []string, limit int) string {
	if len(items) <= limit {
		return commaJoin(items)
	}
	return fmt.Sprintf("%s and %d more", commaJoin(items[:limit]), len(items)-limit)
}

func commaJoin(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}

// HypotheticalDelta re-runs the aggregator with one dimension raised to
// the target score and returns the overall-score gain. Never negative:
// a dimension already above target yields zero.
func HypotheticalDelta(result *types.MatchResult, w scoring.Weights, dim types.Dimension, target float64) float64 {
	current, ok := result.Dimensions[dim]
	if !ok || current.Score >= target {
		return 0
	}

	raised := make(map[types.Dimension]types.DimensionScore, len(result.Dimensions))
	for d, ds := range result.Dimensions {
		raised[d] = ds
	}
	ds := raised[dim]
	ds.Score = target
	raised[dim] = ds

	newOverall, _ := scoring.Aggregate(raised, w)
	delta := newOverall - result.OverallScore
	if delta < 0 {
		return 0
	}
	return delta
}
