//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// JobPosting represents a job as seen by the scoring engine.
// Owned by the employer-facing service; read-only here, identified by
// (ID, Version) for cache keying.
type JobPosting struct {
	ID              uuid.UUID             `json:"id"`
	Title           string                `json:"title"`
	Company         string                `json:"company,omitempty"`
	Version         int64                 `json:"version"`
	RequiredSkills  []SkillRequirement    `json:"required_skills"`
	PreferredSkills []SkillRequirement    `json:"preferred_skills,omitempty"`
	ExperienceMin   float64               `json:"experience_min,omitempty"` // years
	ExperienceMax   float64               `json:"experience_max,omitempty"` // years; 0 means open-ended
	Education       *EducationRequirement `json:"education,omitempty"`
	Compensation    *CompensationBand     `json:"compensation,omitempty"`
	Location        *Location             `json:"location,omitempty"`
	CultureSignals  []string              `json:"culture_signals,omitempty"` // free text about team culture/values
}

// SkillRequirement represents one skill a job asks for, with an importance weight
type SkillRequirement struct {
	Name       string  `json:"name"`
	Importance float64 `json:"importance"` // 0-1; how much this requirement matters
	Preferred  bool    `json:"preferred,omitempty"`
}

// EducationRequirement represents the minimum credential a job asks for
type EducationRequirement struct {
	MinDegree string   `json:"min_degree"` // associate, bachelor, master, phd
	Fields    []string `json:"fields,omitempty"`
	Required  bool     `json:"required,omitempty"`
}

// CompensationBand represents the salary range a job offers
type CompensationBand struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency,omitempty"`
}

// Validate checks structural invariants on the posting
func (j *JobPosting) Validate() error {
	if j.ID == uuid.Nil {
		return fmt.Errorf("job posting: id is required")
	}
	for i, r := range j.RequiredSkills {
		if r.Name == "" {
			return fmt.Errorf("job posting: required_skills[%d].name is empty", i)
		}
		if r.Importance < 0 || r.Importance > 1 {
			return fmt.Errorf("job posting: required_skills[%d].importance must be in [0,1], got %g", i, r.Importance)
		}
	}
	for i, r := range j.PreferredSkills {
		if r.Name == "" {
			return fmt.Errorf("job posting: preferred_skills[%d].name is empty", i)
		}
		if r.Importance < 0 || r.Importance > 1 {
			return fmt.Errorf("job posting: preferred_skills[%d].importance must be in [0,1], got %g", i, r.Importance)
		}
	}
	if j.ExperienceMin < 0 {
		return fmt.Errorf("job posting: experience_min must be non-negative")
	}
	if j.ExperienceMax != 0 && j.ExperienceMax < j.ExperienceMin {
		return fmt.Errorf("job posting: experience_max (%g) below experience_min (%g)", j.ExperienceMax, j.ExperienceMin)
	}
	if j.Compensation != nil && j.Compensation.Max < j.Compensation.Min {
		return fmt.Errorf("job posting: compensation max below min")
	}
	return nil
}
