package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/jobmatch/internal/types"
)

// DB implements Store over a PostgreSQL connection pool. Profiles and
// postings live as jsonb snapshots with a version column bumped by the
// owning services on every mutation.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// GetCandidate fetches a candidate profile snapshot by id
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	var payload []byte
	var version int64
	err := db.pool.QueryRow(ctx,
		`SELECT payload, version FROM candidate_profiles WHERE id = $1`,
		id,
	).Scan(&payload, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Kind: "candidate", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate %s: %w", id, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode candidate %s: %w", id, err)
	}
	profile.ID = id
	profile.Version = version
	return &profile, nil
}

// GetJob fetches a job posting snapshot by id
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	var payload []byte
	var version int64
	err := db.pool.QueryRow(ctx,
		`SELECT payload, version FROM job_postings WHERE id = $1`,
		id,
	).Scan(&payload, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{Kind: "job", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job %s: %w", id, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job %s: %w", id, err)
	}
	job.ID = id
	job.Version = version
	return &job, nil
}
