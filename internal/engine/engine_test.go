package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/cache"
	"github.com/jonathan/jobmatch/internal/compare"
	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/store"
	"github.com/jonathan/jobmatch/internal/types"
)

// fakeStore serves profiles and jobs from memory
type fakeStore struct {
	candidates map[uuid.UUID]*types.CandidateProfile
	jobs       map[uuid.UUID]*types.JobPosting
	err        error // forced error for every call when set
	calls      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		candidates: make(map[uuid.UUID]*types.CandidateProfile),
		jobs:       make(map[uuid.UUID]*types.JobPosting),
	}
}

func (f *fakeStore) GetCandidate(_ context.Context, id uuid.UUID) (*types.CandidateProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.candidates[id]; ok {
		return p, nil
	}
	return nil, &store.NotFoundError{Kind: "candidate", ID: id}
}

func (f *fakeStore) GetJob(_ context.Context, id uuid.UUID) (*types.JobPosting, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return nil, &store.NotFoundError{Kind: "job", ID: id}
}

func (f *fakeStore) Close() {}

// fakeEmbedder returns a fixed vector, or an error when broken
type fakeEmbedder struct {
	vec    []float32
	broken bool
	calls  int
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	f.calls++
	if f.broken {
		return nil, errors.New("embedding service down")
	}
	return f.vec, nil
}

func (f *fakeEmbedder) Close() error { return nil }

func seedPair(fs *fakeStore) (uuid.UUID, uuid.UUID) {
	candidateID := uuid.New()
	jobID := uuid.New()
	fs.candidates[candidateID] = &types.CandidateProfile{
		ID:      candidateID,
		Version: 1,
		Skills: []types.Skill{
			{Name: "Go", Proficiency: 5, Years: 5},
			{Name: "PostgreSQL", Proficiency: 4, Years: 4},
		},
		Experiences: []types.Experience{{Title: "Backend Engineer", Years: 5}},
	}
	fs.jobs[jobID] = &types.JobPosting{
		ID:      jobID,
		Title:   "Senior Backend Engineer",
		Version: 1,
		RequiredSkills: []types.SkillRequirement{
			{Name: "Go", Importance: 0.9},
			{Name: "PostgreSQL", Importance: 0.6},
		},
		ExperienceMin: 3,
		ExperienceMax: 8,
	}
	return candidateID, jobID
}

func TestScore_HappyPath(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	eng := New(fs)

	result, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	assert.Equal(t, candidateID, result.CandidateID)
	assert.Equal(t, jobID, result.JobID)
	assert.InDelta(t, 1.0, result.OverallScore, 0.0001)
	assert.False(t, result.ComputedAt.IsZero())
	assert.Contains(t, result.Dimensions, types.DimensionSkills)
	assert.Contains(t, result.Dimensions, types.DimensionExperience)
}

func TestScore_CandidateNotFound(t *testing.T) {
	fs := newFakeStore()
	_, jobID := seedPair(fs)
	eng := New(fs)

	_, err := eng.Score(context.Background(), uuid.New(), jobID)

	var notFound *store.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "candidate", notFound.Kind)
}

func TestScore_StoreFailureIsUpstreamUnavailable(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	fs.err = errors.New("connection refused")
	eng := New(fs)

	_, err := eng.Score(context.Background(), candidateID, jobID)

	var unavailable *UpstreamUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "profile store", unavailable.Upstream)
	assert.ErrorIs(t, err, fs.err)
}

func TestScore_IncompleteProfile(t *testing.T) {
	fs := newFakeStore()
	_, jobID := seedPair(fs)
	emptyID := uuid.New()
	fs.candidates[emptyID] = &types.CandidateProfile{ID: emptyID, Version: 1}
	eng := New(fs)

	_, err := eng.Score(context.Background(), emptyID, jobID)

	var incomplete *features.IncompleteProfileError
	assert.ErrorAs(t, err, &incomplete)
}

func TestScore_CacheHitSkipsRecompute(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	eng := New(fs, WithCache(cache.New(time.Minute)))

	first, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)
	second, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	assert.Same(t, first, second, "the second call must be served from cache")
}

func TestScore_VersionBumpMissesCache(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	eng := New(fs, WithCache(cache.New(time.Minute)))

	first, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	fs.candidates[candidateID].Version = 2
	second, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestScore_EmbedderFailureDegradesGracefully(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	fs.candidates[candidateID].TraitSignals = []string{"collaborative", "curious"}
	fs.jobs[jobID].CultureSignals = []string{"collaborative team"}

	eng := New(fs, WithEmbedder(&fakeEmbedder{broken: true}))

	result, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err, "embedding failure must never fail the scoring call")

	personality := result.Dimensions[types.DimensionPersonality]
	assert.InDelta(t, 0.4, personality.Completeness, 0.0001, "lexical fallback lowers completeness")
}

func TestScore_EmbedderVectorsAreUsed(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	fs.candidates[candidateID].TraitSignals = []string{"collaborative"}
	fs.jobs[jobID].CultureSignals = []string{"collaborative"}

	eng := New(fs, WithEmbedder(&fakeEmbedder{vec: []float32{1, 0, 0}}))

	result, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	personality := result.Dimensions[types.DimensionPersonality]
	assert.InDelta(t, 1.0, personality.Score, 0.0001)
	assert.InDelta(t, 0.7, personality.Completeness, 0.0001)
}

func TestScore_EmbeddingsAreMemoized(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	fs.candidates[candidateID].TraitSignals = []string{"collaborative"}
	fs.jobs[jobID].CultureSignals = []string{"collaborative team"}

	embedder := &fakeEmbedder{vec: []float32{1, 0}}
	eng := New(fs, WithEmbedder(embedder))

	_, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)
	callsAfterFirst := embedder.calls

	_, err = eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	assert.Equal(t, callsAfterFirst, embedder.calls, "repeat texts must hit the memo")
}

func TestCompare_RanksJobs(t *testing.T) {
	fs := newFakeStore()
	candidateID, goodJobID := seedPair(fs)

	weakJobID := uuid.New()
	fs.jobs[weakJobID] = &types.JobPosting{
		ID:      weakJobID,
		Title:   "iOS Engineer",
		Version: 1,
		RequiredSkills: []types.SkillRequirement{
			{Name: "Swift", Importance: 0.9},
		},
		ExperienceMin: 3,
	}

	eng := New(fs)
	cmp, err := eng.Compare(context.Background(), candidateID, []uuid.UUID{weakJobID, goodJobID})
	require.NoError(t, err)

	require.Len(t, cmp.Results, 2)
	assert.Equal(t, goodJobID, cmp.Results[0].JobID)
	assert.Equal(t, weakJobID, cmp.Results[1].JobID)
	assert.Greater(t, cmp.Results[0].OverallScore, cmp.Results[1].OverallScore)
}

func TestCompare_SizeValidatedBeforeFetch(t *testing.T) {
	fs := newFakeStore()
	candidateID, _ := seedPair(fs)
	eng := New(fs)

	jobIDs := make([]uuid.UUID, compare.MaxJobs+1)
	for i := range jobIDs {
		jobIDs[i] = uuid.New()
	}

	_, err := eng.Compare(context.Background(), candidateID, jobIDs)

	var sizeErr *compare.InvalidComparisonSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Zero(t, fs.calls, "an invalid request must not touch the store")
}

func TestExplain_DerivesFromScore(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	eng := New(fs)

	exp, err := eng.Explain(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	assert.Equal(t, types.LevelExcellent, exp.Level)
	assert.NotEmpty(t, exp.Recommendation)
	assert.NotEmpty(t, exp.Strengths)
}

func TestProject_DerivesFromScore(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	eng := New(fs)

	plan, err := eng.Project(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	assert.Equal(t, candidateID, plan.CandidateID)
	assert.LessOrEqual(t, plan.PotentialScore, 0.95)
	assert.Equal(t, "ready now", plan.Timeline)
}

func TestInvalidate_DropsCachedEntries(t *testing.T) {
	fs := newFakeStore()
	candidateID, jobID := seedPair(fs)
	eng := New(fs, WithCache(cache.New(time.Minute)))

	first, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)

	eng.InvalidateCandidate(candidateID)

	second, err := eng.Score(context.Background(), candidateID, jobID)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
}
