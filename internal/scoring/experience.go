package scoring

import (
	"fmt"

	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/types"
)

// experienceFloor is the minimum score for any nonzero relevant experience
const experienceFloor = 0.2

// ScoreExperience scores the candidate's total relevant years against the
// job's stated range. Inside the range scores 1.0; outside it decays
// linearly with a 0.2 floor for any nonzero experience; zero relevant
// experience scores 0. Returns false when the job states no range at all.
func ScoreExperience(cf *features.CandidateFeatures, jf *features.JobFeatures) (types.DimensionScore, bool) {
	if jf.ExperienceMin == 0 && jf.ExperienceMax == 0 {
		return types.DimensionScore{}, false
	}

	ds := types.DimensionScore{
		Dimension:    types.DimensionExperience,
		Completeness: 1.0,
		WeightFactor: 1.0,
	}

	years := cf.TotalYears
	// Skill-level years count as relevant signal when no experience
	// entries exist (e.g. a profile built from a skills assessment).
	if years == 0 {
		for _, s := range cf.Skills {
			if s.Years > years {
				years = s.Years
			}
		}
	}

	if years == 0 {
		ds.Score = 0
		ds.InsufficientData = true
		ds.Completeness = 0.3
		ds.Rationale = "no relevant experience recorded"
		return ds, true
	}

	minYears := jf.ExperienceMin
	maxYears := jf.ExperienceMax

	switch {
	case years < minYears:
		ds.Score = floorClamp(years/minYears, experienceFloor)
		ds.Rationale = fmt.Sprintf("%.1f years is below the %.0f-year minimum", years, minYears)
	case maxYears != 0 && years > maxYears:
		// Overqualification decays gently relative to the stated ceiling
		ds.Score = floorClamp(1.0-(years-maxYears)/maxYears, experienceFloor)
		ds.Rationale = fmt.Sprintf("%.1f years exceeds the %.0f-year ceiling", years, maxYears)
	default:
		ds.Score = 1.0
		if maxYears != 0 {
			ds.Rationale = fmt.Sprintf("%.1f years falls within the %.0f-%.0f year range", years, minYears, maxYears)
		} else {
			ds.Rationale = fmt.Sprintf("%.1f years meets the %.0f-year minimum", years, minYears)
		}
	}

	return ds, true
}

func floorClamp(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
