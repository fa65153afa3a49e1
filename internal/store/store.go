// Package store provides read access to candidate profiles and job
// postings. The engine never writes through this package: profiles and
// jobs are owned by their respective services.
package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/jobmatch/internal/types"
)

// Store fetches immutable snapshots of profiles and postings by id
type Store interface {
	GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error)
	GetJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error)
	Close()
}

// NotFoundError indicates the requested record does not exist
type NotFoundError struct {
	Kind string // "candidate" or "job"
	ID   uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}
