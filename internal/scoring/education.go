package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// ScoreEducation scores the candidate's best credential against the job's
// stated minimum. Meeting or exceeding the minimum earns full degree
// credit; field mismatches reduce it, with partial credit for closely
// related fields. Returns false when the job states no requirement.
func ScoreEducation(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	req := jf.Education
	if req == nil || req.MinDegree == "" {
		return types.DimensionScore{}, false
	}

	ds := types.DimensionScore{
		Dimension:    types.DimensionEducation,
		Completeness: 1.0,
		WeightFactor: 1.0,
	}

	if len(cf.Education) == 0 {
		ds.InsufficientData = true
		ds.Completeness = 0.3
		ds.Missing = []string{req.MinDegree}
		ds.Rationale = "no education recorded on the profile"
		return ds, true
	}

	requiredRank := features.DegreeRank(req.MinDegree)

	// Take the best-scoring education entry
	best := 0.0
	bestEntry := ""
	for _, edu := range cf.Education {
		score := degreeScore(features.DegreeRank(edu.Degree), requiredRank) * fieldFactor(edu.Field, req.Fields)
		if score > best {
			best = score
			bestEntry = strings.TrimSpace(edu.Degree + " " + edu.Field)
		}
	}

	ds.Score = clamp01(best)
	if ds.Score >= 1.0 {
		ds.Matched = []string{bestEntry}
		ds.Rationale = fmt.Sprintf("%s meets the %s requirement", bestEntry, req.MinDegree)
	} else if ds.Score > 0 {
		ds.Matched = []string{bestEntry}
		ds.Rationale = fmt.Sprintf("%s partially satisfies the %s requirement", bestEntry, req.MinDegree)
	} else {
		ds.Missing = []string{req.MinDegree}
		ds.Rationale = fmt.Sprintf("no credential approaches the %s requirement", req.MinDegree)
	}

	return ds, true
}

// degreeScore gives discrete credit by credential level
func degreeScore(candidateRank, requiredRank int) float64 {
	if candidateRank == 0 {
		return 0
	}
	if requiredRank == 0 || candidateRank >= requiredRank {
		return 1.0
	}
	if candidateRank == requiredRank-1 {
		return 0.5
	}
	return 0.2
}

// fieldFactor scales degree credit by how close the field of study is to
// what the job asks for
func fieldFactor(field string, wanted []string) float64 {
	if len(wanted) == 0 {
		return 1.0
	}
	if field == "" {
		return 0.7
	}

	fieldLower := strings.ToLower(field)
	related := false
	for _, w := range wanted {
		wLower := strings.ToLower(w)
		if fieldLower == wLower || strings.Contains(fieldLower, wLower) || strings.Contains(wLower, fieldLower) {
			return 1.0
		}
		for _, tok := range strings.Fields(wLower) {
			if len(tok) > 3 && strings.Contains(fieldLower, tok) {
				related = true
			}
		}
	}
	if related {
		return 0.8
	}
	return 0.6
}
