package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// Match tier weights applied to requirement importance
const (
	tierWeightExact        = 1.0
	tierWeightSimilar      = 0.8
	tierWeightTransferable = 0.5
)

// ScoreSkills scores how well the candidate's skills cover the job's
// requirements. For every requirement the best semantic match among the
// candidate's skills is classified as exact, similar, transferable, or
// missing, and the tier weights are combined by requirement importance.
// Returns false when the job lists no skill requirements.
func ScoreSkills(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	if len(jf.Requirements) == 0 {
		return types.DimensionScore{}, false
	}

	ds := types.DimensionScore{
		Dimension:    types.DimensionSkills,
		Completeness: 1.0,
		WeightFactor: 1.0,
	}

	if len(cf.Skills) == 0 {
		ds.InsufficientData = true
		ds.Completeness = 0.2
		ds.Rationale = "candidate lists no skills to match against the job requirements"
		for _, req := range jf.Requirements {
			ds.Missing = append(ds.Missing, req.Name)
		}
		return ds, true
	}

	totalImportance := 0.0
	matchedImportance := 0.0
	exact, similar, transferable := 0, 0, 0

	for _, req := range jf.Requirements {
		totalImportance += req.Importance

		best := 0.0
		bestSkill := ""
		for _, skill := range cf.Skills {
			if sim := features.SkillSimilarity(req.Name, skill.Name); sim > best {
				best = sim
				bestSkill = skill.Name
			}
		}

		switch {
		case best >= features.SimilarityExact:
			matchedImportance += req.Importance * tierWeightExact
			ds.Matched = append(ds.Matched, req.Name)
			exact++
		case best >= features.SimilaritySimilar:
			matchedImportance += req.Importance * tierWeightSimilar
			ds.Matched = append(ds.Matched, fmt.Sprintf("%s (via %s)", req.Name, bestSkill))
			similar++
		case best >= features.SimilarityTransferable:
			matchedImportance += req.Importance * tierWeightTransferable
			ds.Matched = append(ds.Matched, fmt.Sprintf("%s (transferable from %s)", req.Name, bestSkill))
			transferable++
		default:
			ds.Missing = append(ds.Missing, req.Name)
		}
	}

	if totalImportance > 0 {
		ds.Score = clamp01(matchedImportance / totalImportance)
	}

	ds.Rationale = skillsRationale(exact, similar, transferable, len(ds.Missing))
	return ds, true
}

func skillsRationale(exact, similar, transferable, missing int) string {
	var parts []string
	if exact > 0 {
		parts = append(parts, fmt.Sprintf("%d exact", exact))
	}
	if similar > 0 {
		parts = append(parts, fmt.Sprintf("%d similar", similar))
	}
	if transferable > 0 {
		parts = append(parts, fmt.Sprintf("%d transferable", transferable))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("no requirement matched; %d missing", missing)
	}
	s := strings.Join(parts, ", ") + " requirement matches"
	if missing > 0 {
		s += fmt.Sprintf("; %d missing", missing)
	}
	return s
}
