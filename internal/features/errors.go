package features

import "fmt"

// IncompleteProfileError indicates a candidate profile with no scorable
// signal at all (zero skills and zero experience entries). Terminal for
// the scoring call; surfaced to the caller as a client error.
type IncompleteProfileError struct {
	CandidateID string
}

func (e *IncompleteProfileError) Error() string {
	if e.CandidateID != "" {
		return fmt.Sprintf("incomplete profile %s: no skills and no experience to score against", e.CandidateID)
	}
	return "incomplete profile: no skills and no experience to score against"
}
