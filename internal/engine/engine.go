// Package engine orchestrates the compatibility scoring pipeline: it
// fetches profile and job snapshots, attaches embedding vectors, runs the
// pure scoring pipeline, and serves the four public operations (score,
// compare, explain, project).
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/jobmatch/internal/cache"
	"github.com/jonathan/jobmatch/internal/compare"
	"github.com/jonathan/jobmatch/internal/embedding"
	"github.com/jonathan/jobmatch/internal/explain"
	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/project"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/store"
	"github.com/jonathan/jobmatch/internal/types"
)

// defaultFetchTimeout bounds a single store fetch; no engine call may
// block indefinitely on an upstream.
const defaultFetchTimeout = 5 * time.Second

// embedMemoLimit caps the in-process embedding memo
const embedMemoLimit = 1024

// Engine is the facade over the scoring pipeline. Safe for concurrent
// use: all pipeline state is per-call, and the embed memo is locked.
type Engine struct {
	store        store.Store
	embedder     embedding.Embedder // nil: lexical fallback only
	cache        *cache.ResultCache // nil: no caching
	weights      scoring.Weights
	log          *zap.Logger
	fetchTimeout time.Duration
	now          func() time.Time

	memoMu    sync.Mutex
	embedMemo map[string][]float32
}

// Option configures an Engine
type Option func(*Engine)

// WithEmbedder attaches the embedding collaborator
func WithEmbedder(e embedding.Embedder) Option {
	return func(eng *Engine) { eng.embedder = e }
}

// WithCache attaches a result cache
func WithCache(c *cache.ResultCache) Option {
	return func(eng *Engine) { eng.cache = c }
}

// WithWeights overrides the published weight table
func WithWeights(w scoring.Weights) Option {
	return func(eng *Engine) { eng.weights = w }
}

// WithLogger attaches a structured logger
func WithLogger(log *zap.Logger) Option {
	return func(eng *Engine) { eng.log = log }
}

// WithFetchTimeout overrides the per-fetch upstream timeout
func WithFetchTimeout(d time.Duration) Option {
	return func(eng *Engine) { eng.fetchTimeout = d }
}

// New creates an engine over the given store
func New(s store.Store, opts ...Option) *Engine {
	eng := &Engine{
		store:        s,
		weights:      scoring.DefaultWeights(),
		log:          zap.NewNop(),
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
		embedMemo:    make(map[string][]float32),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// Score evaluates one candidate against one job
func (e *Engine) Score(ctx context.Context, candidateID, jobID uuid.UUID) (*types.MatchResult, error) {
	profile, err := e.fetchCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	job, err := e.fetchJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return e.scorePair(ctx, profile, job)
}

// Compare evaluates one candidate against up to compare.MaxJobs jobs and
// returns a ranked comparison.
func (e *Engine) Compare(ctx context.Context, candidateID uuid.UUID, jobIDs []uuid.UUID) (*types.RankedComparison, error) {
	// Size is validated before any fetch so an oversized request costs nothing
	if len(jobIDs) == 0 || len(jobIDs) > compare.MaxJobs {
		return nil, &compare.InvalidComparisonSizeError{Count: len(jobIDs)}
	}

	profile, err := e.fetchCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	jobs := make([]*types.JobPosting, 0, len(jobIDs))
	for _, id := range jobIDs {
		job, err := e.fetchJob(ctx, id)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return compare.Run(ctx, profile, jobs, func(ctx context.Context, p *types.CandidateProfile, j *types.JobPosting) (*types.MatchResult, error) {
		return e.scorePair(ctx, p, j)
	})
}

// Explain derives the strengths/gaps/action-plan view for one pairing
func (e *Engine) Explain(ctx context.Context, candidateID, jobID uuid.UUID) (*types.Explanation, error) {
	result, err := e.Score(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	return explain.Generate(result, e.weights), nil
}

// Project estimates the achievable score after gap remediation
func (e *Engine) Project(ctx context.Context, candidateID, jobID uuid.UUID) (*types.ImprovementPlan, error) {
	result, err := e.Score(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}
	return project.Build(result, e.weights), nil
}

// InvalidateCandidate drops cached results for a candidate; wired to
// profile-update notifications by the host application.
func (e *Engine) InvalidateCandidate(candidateID uuid.UUID) {
	if e.cache != nil {
		e.cache.InvalidateCandidate(candidateID)
	}
}

// InvalidateJob drops cached results for a job
func (e *Engine) InvalidateJob(jobID uuid.UUID) {
	if e.cache != nil {
		e.cache.InvalidateJob(jobID)
	}
}

// scorePair runs the pure pipeline over already-fetched snapshots
func (e *Engine) scorePair(ctx context.Context, profile *types.CandidateProfile, job *types.JobPosting) (*types.MatchResult, error) {
	key := cache.Key{
		CandidateID:    profile.ID,
		JobID:          job.ID,
		ProfileVersion: profile.Version,
		JobVersion:     job.Version,
	}
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	cf, jf, err := features.Extract(profile, job)
	if err != nil {
		return nil, err
	}

	e.attachVectors(ctx, cf, jf)

	scores := scoring.ScoreAll(cf, jf)
	overall, confidence := scoring.Aggregate(scores, e.weights)

	result := &types.MatchResult{
		CandidateID:  profile.ID,
		JobID:        job.ID,
		OverallScore: overall,
		Confidence:   confidence,
		Dimensions:   scores,
		ComputedAt:   e.now().UTC(),
	}

	if e.cache != nil {
		e.cache.Put(key, result)
	}

	e.log.Debug("scored pair",
		zap.String("candidate_id", profile.ID.String()),
		zap.String("job_id", job.ID.String()),
		zap.Float64("overall", overall),
		zap.Float64("confidence", confidence),
	)
	return result, nil
}

// attachVectors fills embedding vectors on the feature bundles. Failures
// degrade to the lexical fallback inside the scorers; they lower
// confidence but never fail the scoring call.
func (e *Engine) attachVectors(ctx context.Context, cf *features.CandidateFeatures, jf *features.JobFeatures) {
	if e.embedder == nil {
		return
	}
	cf.TraitVector = e.embed(ctx, cf.TraitText)
	cf.ValueVector = e.embed(ctx, cf.ValueText)
	jf.CultureVector = e.embed(ctx, jf.CultureText)
}

func (e *Engine) embed(ctx context.Context, text string) []float32 {
	if text == "" {
		return nil
	}

	e.memoMu.Lock()
	vec, ok := e.embedMemo[text]
	e.memoMu.Unlock()
	if ok {
		return vec
	}

	vec, err := e.embedder.Embed(ctx, text)
	if err != nil {
		e.log.Warn("embedding unavailable, degrading to lexical similarity", zap.Error(err))
		return nil
	}

	e.memoMu.Lock()
	if len(e.embedMemo) >= embedMemoLimit {
		e.embedMemo = make(map[string][]float32)
	}
	e.embedMemo[text] = vec
	e.memoMu.Unlock()
	return vec
}

// fetchCandidate loads a profile snapshot under the fetch timeout
func (e *Engine) fetchCandidate(ctx context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()

	profile, err := e.store.GetCandidate(ctx, id)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, &UpstreamUnavailableError{Upstream: "profile store", Cause: err}
	}
	return profile, nil
}

// fetchJob loads a posting snapshot under the fetch timeout
func (e *Engine) fetchJob(ctx context.Context, id uuid.UUID) (*types.JobPosting, error) {
	ctx, cancel := context.WithTimeout(ctx, e.fetchTimeout)
	defer cancel()

	job, err := e.store.GetJob(ctx, id)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			return nil, err
		}
		return nil, &UpstreamUnavailableError{Upstream: "job store", Cause: err}
	}
	return job, nil
}
