//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/google/uuid"

// RankedComparison is the result of scoring one candidate against several jobs
type RankedComparison struct {
	CandidateID uuid.UUID          `json:"candidate_id"`
	Results     []MatchResult      `json:"results"` // sorted: overall desc, confidence desc
	Insights    ComparisonInsights `json:"insights"`
}

// ComparisonInsights summarizes patterns across the compared jobs
type ComparisonInsights struct {
	AverageScore    float64     `json:"average_score"`
	StrongMatches   int         `json:"strong_matches"` // results with overall >= 0.70
	CommonStrengths []Dimension `json:"common_strengths,omitempty"`
	CommonGaps      []Dimension `json:"common_gaps,omitempty"`
}

// BestMatch returns the top-ranked result, or nil if there are none
func (c *RankedComparison) BestMatch() *MatchResult {
	if len(c.Results) == 0 {
		return nil
	}
	return &c.Results[0]
}
