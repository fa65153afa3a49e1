package engine

import "fmt"

// UpstreamUnavailableError indicates the profile/job store (or another
// required collaborator) could not be reached within its timeout. The
// caller may retry with backoff; the engine never retries internally.
type UpstreamUnavailableError struct {
	Upstream string
	Cause    error
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream %s unavailable: %v", e.Upstream, e.Cause)
	}
	return fmt.Sprintf("upstream %s unavailable", e.Upstream)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Cause
}
