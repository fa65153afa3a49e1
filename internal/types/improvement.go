//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// ImprovementPlan projects how a candidate's score could change with
// specific remediation, derived from a MatchResult.
type ImprovementPlan struct {
	CandidateID    uuid.UUID             `json:"candidate_id"`
	JobID          uuid.UUID             `json:"job_id"`
	CurrentScore   float64               `json:"current_score"`
	PotentialScore float64               `json:"potential_score"` // capped at 0.95
	Timeline       string                `json:"timeline"`
	Projections    []DimensionProjection `json:"projections"`
}

// DimensionProjection estimates the overall-score effect of closing one gap
type DimensionProjection struct {
	Dimension      Dimension `json:"dimension"`
	CurrentScore   float64   `json:"current_score"`
	TargetScore    float64   `json:"target_score"`
	ProjectedScore float64   `json:"projected_score"` // overall score with just this gap closed
	Delta          float64   `json:"delta"`
}
