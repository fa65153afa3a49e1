// Package scoring implements the per-dimension compatibility scorers and
// the aggregator that combines them into an overall score and confidence.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/jobmatch/internal/types"
)

// Weights is the published weight table applied during aggregation.
// It is an explicit, versioned structure so recalibration is auditable:
// a new table ships with a new version string, never as edited literals.
type Weights struct {
	Version      string  `json:"version"`
	Skills       float64 `json:"skills"`
	Experience   float64 `json:"experience"`
	Personality  float64 `json:"personality"`
	Location     float64 `json:"location"`
	Education    float64 `json:"education"`
	Compensation float64 `json:"compensation"`
	Culture      float64 `json:"culture"`
}

// DefaultWeights returns the published v1 weight table
func DefaultWeights() Weights {
	return Weights{
		Version:      "v1",
		Skills:       0.25,
		Experience:   0.20,
		Personality:  0.15,
		Location:     0.15,
		Education:    0.10,
		Compensation: 0.10,
		Culture:      0.05,
	}
}

// For returns the published weight for a dimension
func (w Weights) For(d types.Dimension) float64 {
	switch d {
	case types.DimensionSkills:
		return w.Skills
	case types.DimensionExperience:
		return w.Experience
	case types.DimensionPersonality:
		return w.Personality
	case types.DimensionLocation:
		return w.Location
	case types.DimensionEducation:
		return w.Education
	case types.DimensionCompensation:
		return w.Compensation
	case types.DimensionCulture:
		return w.Culture
	}
	return 0
}

// Validate checks that every weight is in [0,1] and the table sums to 1.0
func (w Weights) Validate() error {
	if w.Version == "" {
		return fmt.Errorf("weights: version is required")
	}
	sum := 0.0
	for _, d := range types.AllDimensions {
		v := w.For(d)
		if v < 0 || v > 1 {
			return fmt.Errorf("weights: %s must be in [0,1], got %g", d, v)
		}
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("weights: table must sum to 1.0, got %g", sum)
	}
	return nil
}
