package features

import (
	"sort"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

// CandidateFeatures is the normalized view of a candidate profile.
// Trait/value vectors are attached by the caller (they come from the
// embedding collaborator); everything else is derived purely from the
// profile snapshot.
type CandidateFeatures struct {
	Skills      []CandidateSkill
	TotalYears  float64
	Titles      []string
	Education   []types.Education
	ExpectedPay *float64
	Location    *types.Location

	TraitText   string
	ValueText   string
	TraitVector []float32
	ValueVector []float32
}

// CandidateSkill is a candidate skill with its canonical name
type CandidateSkill struct {
	Name        string
	Proficiency int
	Years       float64
}

// JobFeatures is the normalized view of a job posting
type JobFeatures struct {
	Requirements  []Requirement
	ExperienceMin float64
	ExperienceMax float64
	Education     *types.EducationRequirement
	Compensation  *types.CompensationBand
	Location      *types.Location

	CultureText   string
	CultureVector []float32
}

// Requirement is a normalized, deduplicated skill requirement
type Requirement struct {
	Name       string
	Importance float64
	Preferred  bool
}

// Extract turns a profile and a posting into normalized feature bundles.
// It is a pure transformation: safe to call concurrently and repeatedly.
// Fails with IncompleteProfileError when the profile carries no scorable
// signal (no skills and no experience).
func Extract(profile *types.CandidateProfile, job *types.JobPosting) (*CandidateFeatures, *JobFeatures, error) {
	if len(profile.Skills) == 0 && len(profile.Experiences) == 0 {
		return nil, nil, &IncompleteProfileError{CandidateID: profile.ID.String()}
	}

	cf := &CandidateFeatures{
		TotalYears:  profile.TotalExperienceYears(),
		ExpectedPay: profile.ExpectedPay,
		Location:    profile.Location,
		Education:   profile.Education,
		TraitText:   joinSignals(profile.TraitSignals),
		ValueText:   joinSignals(profile.ValueSignals),
	}

	seen := make(map[string]int)
	for _, s := range profile.Skills {
		name := NormalizeSkillName(s.Name)
		if name == "" {
			continue
		}
		if i, ok := seen[strings.ToLower(name)]; ok {
			// Keep the stronger claim when duplicates collapse
			if s.Proficiency > cf.Skills[i].Proficiency {
				cf.Skills[i].Proficiency = s.Proficiency
			}
			if s.Years > cf.Skills[i].Years {
				cf.Skills[i].Years = s.Years
			}
			continue
		}
		cf.Skills = append(cf.Skills, CandidateSkill{Name: name, Proficiency: s.Proficiency, Years: s.Years})
		seen[strings.ToLower(name)] = len(cf.Skills) - 1
	}

	for _, e := range profile.Experiences {
		if e.Title != "" {
			cf.Titles = append(cf.Titles, e.Title)
		}
	}

	jf := &JobFeatures{
		ExperienceMin: job.ExperienceMin,
		ExperienceMax: job.ExperienceMax,
		Education:     job.Education,
		Compensation:  job.Compensation,
		Location:      job.Location,
		CultureText:   joinSignals(job.CultureSignals),
	}
	jf.Requirements = normalizeRequirements(job.RequiredSkills, job.PreferredSkills)

	return cf, jf, nil
}

// normalizeRequirements merges required and preferred skills into one
// deduplicated list. Duplicates keep the higher importance, and a skill
// listed as both required and preferred counts as required.
func normalizeRequirements(required, preferred []types.SkillRequirement) []Requirement {
	out := make([]Requirement, 0, len(required)+len(preferred))
	index := make(map[string]int)

	add := func(reqs []types.SkillRequirement, pref bool) {
		for _, r := range reqs {
			name := NormalizeSkillName(r.Name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			if i, ok := index[key]; ok {
				if r.Importance > out[i].Importance {
					out[i].Importance = r.Importance
				}
				if !pref {
					out[i].Preferred = false
				}
				continue
			}
			out = append(out, Requirement{Name: name, Importance: r.Importance, Preferred: pref})
			index[key] = len(out) - 1
		}
	}
	add(required, false)
	add(preferred, true)

	// Stable order: importance descending, then name, so downstream output
	// is deterministic regardless of posting field order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Importance != out[j].Importance {
			return out[i].Importance > out[j].Importance
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func joinSignals(signals []string) string {
	parts := make([]string, 0, len(signals))
	for _, s := range signals {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ". ")
}
