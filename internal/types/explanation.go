//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// MatchLevel names a tier derived from the overall score
type MatchLevel string

// Match level tiers, from best to worst
const (
	LevelExcellent  MatchLevel = "excellent"
	LevelStrong     MatchLevel = "strong"
	LevelGood       MatchLevel = "good"
	LevelFair       MatchLevel = "fair"
	LevelDeveloping MatchLevel = "developing"
)

// ActionHorizon buckets remediation actions by how quickly they pay off
type ActionHorizon string

// Action horizons used in generated plans
const (
	HorizonImmediate ActionHorizon = "immediate"
	HorizonShortTerm ActionHorizon = "short_term"
	HorizonLongTerm  ActionHorizon = "long_term"
)

// Explanation is a derived, read-only view over a MatchResult
type Explanation struct {
	CandidateID    uuid.UUID   `json:"candidate_id"`
	JobID          uuid.UUID   `json:"job_id"`
	OverallScore   float64     `json:"overall_score"`
	Confidence     float64     `json:"confidence"`
	Level          MatchLevel  `json:"level"`
	Recommendation string      `json:"recommendation"`
	Strengths      []Highlight `json:"strengths"`
	Gaps           []Gap       `json:"gaps"`
	ActionPlan     []Action    `json:"action_plan"`
}

// Highlight is a dimension that scored well
type Highlight struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Summary   string    `json:"summary"`
	Matched   []string  `json:"matched,omitempty"`
}

// Gap is a dimension depressing the overall score, ranked by weighted impact
type Gap struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	// Impact is weight x (0.60 - score): how much this gap drags the overall score.
	Impact  float64  `json:"impact"`
	Summary string   `json:"summary"`
	Missing []string `json:"missing,omitempty"`
}

// Action is one remediation step in the generated plan
type Action struct {
	Horizon        ActionHorizon `json:"horizon"`
	Description    string        `json:"description"`
	Dimension      Dimension     `json:"dimension,omitempty"`
	EstimatedDelta float64       `json:"estimated_delta"` // projected overall-score gain
	Window         string        `json:"window"`          // e.g. "2-8 weeks"
}
