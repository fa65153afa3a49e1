//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Dimension identifies one scored axis of compatibility
type Dimension string

// Dimension constants name the seven scored axes
const (
	DimensionSkills       Dimension = "skills"
	DimensionExperience   Dimension = "experience"
	DimensionPersonality  Dimension = "personality"
	DimensionLocation     Dimension = "location"
	DimensionEducation    Dimension = "education"
	DimensionCompensation Dimension = "compensation"
	DimensionCulture      Dimension = "culture"
)

// AllDimensions lists every dimension in stable order
var AllDimensions = []Dimension{
	DimensionSkills,
	DimensionExperience,
	DimensionPersonality,
	DimensionLocation,
	DimensionEducation,
	DimensionCompensation,
	DimensionCulture,
}

// DimensionScore is the immutable output of a single dimension scorer.
// A fresh value is produced per scoring call and never mutated afterwards.
type DimensionScore struct {
	Dimension        Dimension `json:"dimension"`
	Score            float64   `json:"score"`        // 0-1
	Completeness     float64   `json:"completeness"` // 0-1 quality of the inputs this score was computed from
	Matched          []string  `json:"matched,omitempty"`
	Missing          []string  `json:"missing,omitempty"`
	Rationale        string    `json:"rationale"`
	InsufficientData bool      `json:"insufficient_data,omitempty"`
	// WeightFactor scales the published weight for this dimension during
	// aggregation. 1.0 normally; reduced when the score is a neutral
	// placeholder (e.g. compensation unknown on either side).
	WeightFactor float64 `json:"weight_factor"`
}

// MatchResult is the aggregate outcome of scoring one candidate against one job
type MatchResult struct {
	CandidateID  uuid.UUID                    `json:"candidate_id"`
	JobID        uuid.UUID                    `json:"job_id"`
	OverallScore float64                      `json:"overall_score"` // 0-1
	Confidence   float64                      `json:"confidence"`    // 0-1
	Dimensions   map[Dimension]DimensionScore `json:"dimensions"`
	ComputedAt   time.Time                    `json:"computed_at"`
}

// DimensionList returns the applicable dimension scores in stable order
func (m *MatchResult) DimensionList() []DimensionScore {
	out := make([]DimensionScore, 0, len(m.Dimensions))
	for _, d := range AllDimensions {
		if ds, ok := m.Dimensions[d]; ok {
			out = append(out, ds)
		}
	}
	return out
}
