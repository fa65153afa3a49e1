// Package types provides type definitions for structured data used throughout the compatibility engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/google/uuid"
)

// CandidateProfile represents a candidate as seen by the scoring engine.
// The profile is owned and mutated by the profile service; the engine
// treats it as an immutable snapshot identified by (ID, Version).
type CandidateProfile struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name,omitempty"`
	Version      int64        `json:"version"`
	Skills       []Skill      `json:"skills"`
	Experiences  []Experience `json:"experiences"`
	Education    []Education  `json:"education,omitempty"`
	ExpectedPay  *float64     `json:"expected_pay,omitempty"` // annual, same currency as job bands
	Location     *Location    `json:"location,omitempty"`
	TraitSignals []string     `json:"trait_signals,omitempty"` // free text derived from prior writing/assessments
	ValueSignals []string     `json:"value_signals,omitempty"` // free text about work values/preferences
}

// Skill represents a single candidate skill with self-declared proficiency
type Skill struct {
	Name        string  `json:"name"`
	Proficiency int     `json:"proficiency"` // 1-5
	Years       float64 `json:"years,omitempty"`
}

// Experience represents one work experience entry
type Experience struct {
	Title    string  `json:"title"`
	Years    float64 `json:"years"`
	Industry string  `json:"industry,omitempty"`
}

// Education represents one education entry
type Education struct {
	Degree      string `json:"degree"` // associate, bachelor, master, phd
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// Location describes where a candidate lives or a job is based,
// together with the flexibility either side declares.
type Location struct {
	City              string  `json:"city,omitempty"`
	Country           string  `json:"country,omitempty"`
	Remote            bool    `json:"remote,omitempty"`              // job: remote-eligible; candidate: wants remote
	WillingToRelocate bool    `json:"willing_to_relocate,omitempty"` // candidate only
	CommuteKm         float64 `json:"commute_km,omitempty"`          // candidate: acceptable commute distance
}

// Validate checks structural invariants on the profile.
// Scorability (non-empty skills or experience) is checked separately by the
// feature extractor, which owns that error semantic.
func (p *CandidateProfile) Validate() error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("candidate profile: id is required")
	}
	for i, s := range p.Skills {
		if s.Name == "" {
			return fmt.Errorf("candidate profile: skills[%d].name is empty", i)
		}
		if s.Proficiency < 0 || s.Proficiency > 5 {
			return fmt.Errorf("candidate profile: skills[%d].proficiency must be 1-5, got %d", i, s.Proficiency)
		}
		if s.Years < 0 {
			return fmt.Errorf("candidate profile: skills[%d].years must be non-negative", i)
		}
	}
	for i, e := range p.Experiences {
		if e.Years < 0 {
			return fmt.Errorf("candidate profile: experiences[%d].years must be non-negative", i)
		}
	}
	if p.ExpectedPay != nil && *p.ExpectedPay < 0 {
		return fmt.Errorf("candidate profile: expected_pay must be non-negative")
	}
	return nil
}

// TotalExperienceYears sums years across all experience entries
func (p *CandidateProfile) TotalExperienceYears() float64 {
	total := 0.0
	for _, e := range p.Experiences {
		total += e.Years
	}
	return total
}
