package compare

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/types"
)

func testProfile() *types.CandidateProfile {
	return &types.CandidateProfile{ID: uuid.New()}
}

func testJobs(n int) []*types.JobPosting {
	jobs := make([]*types.JobPosting, n)
	for i := range jobs {
		jobs[i] = &types.JobPosting{ID: uuid.New(), Title: fmt.Sprintf("Job %d", i)}
	}
	return jobs
}

// scoreByIndex maps each job to a fixed score for deterministic ranking
func scoreByIndex(jobs []*types.JobPosting, scores []float64, confidences []float64) Evaluator {
	byID := make(map[uuid.UUID]int, len(jobs))
	for i, j := range jobs {
		byID[j.ID] = i
	}
	return func(_ context.Context, p *types.CandidateProfile, j *types.JobPosting) (*types.MatchResult, error) {
		i := byID[j.ID]
		confidence := 0.8
		if confidences != nil {
			confidence = confidences[i]
		}
		return &types.MatchResult{
			CandidateID:  p.ID,
			JobID:        j.ID,
			OverallScore: scores[i],
			Confidence:   confidence,
			Dimensions:   map[types.Dimension]types.DimensionScore{},
		}, nil
	}
}

func TestRun_RejectsEmptyJobList(t *testing.T) {
	_, err := Run(context.Background(), testProfile(), nil, nil)

	var sizeErr *InvalidComparisonSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 0, sizeErr.Count)
}

func TestRun_RejectsOversizedJobList(t *testing.T) {
	jobs := testJobs(MaxJobs + 1)
	_, err := Run(context.Background(), testProfile(), jobs, nil)

	var sizeErr *InvalidComparisonSizeError
	require.ErrorAs(t, err, &sizeErr)
	assert.Equal(t, 11, sizeErr.Count)
}

func TestRun_SingleJobIsAllowed(t *testing.T) {
	jobs := testJobs(1)
	cmp, err := Run(context.Background(), testProfile(), jobs, scoreByIndex(jobs, []float64{0.7}, nil))
	require.NoError(t, err)
	require.Len(t, cmp.Results, 1)
	assert.Equal(t, jobs[0].ID, cmp.Results[0].JobID)
}

func TestRun_RanksByOverallScoreDescending(t *testing.T) {
	jobs := testJobs(4)
	eval := scoreByIndex(jobs, []float64{0.4, 0.9, 0.6, 0.75}, nil)

	cmp, err := Run(context.Background(), testProfile(), jobs, eval)
	require.NoError(t, err)

	require.Len(t, cmp.Results, 4)
	assert.Equal(t, jobs[1].ID, cmp.Results[0].JobID)
	assert.Equal(t, jobs[3].ID, cmp.Results[1].JobID)
	assert.Equal(t, jobs[2].ID, cmp.Results[2].JobID)
	assert.Equal(t, jobs[0].ID, cmp.Results[3].JobID)

	best := cmp.BestMatch()
	require.NotNil(t, best)
	assert.Equal(t, jobs[1].ID, best.JobID)
}

func TestRun_ConfidenceBreaksTies(t *testing.T) {
	jobs := testJobs(2)
	eval := scoreByIndex(jobs, []float64{0.8, 0.8}, []float64{0.6, 0.9})

	cmp, err := Run(context.Background(), testProfile(), jobs, eval)
	require.NoError(t, err)

	assert.Equal(t, jobs[1].ID, cmp.Results[0].JobID)
	assert.Equal(t, jobs[0].ID, cmp.Results[1].JobID)
}

func TestRun_EvaluatorErrorFailsTheComparison(t *testing.T) {
	jobs := testJobs(3)
	boom := errors.New("store down")
	eval := func(_ context.Context, _ *types.CandidateProfile, j *types.JobPosting) (*types.MatchResult, error) {
		if j.ID == jobs[1].ID {
			return nil, boom
		}
		return &types.MatchResult{JobID: j.ID}, nil
	}

	_, err := Run(context.Background(), testProfile(), jobs, eval)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRun_CancelledContextDiscardsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := testJobs(2)
	cmp, err := Run(ctx, testProfile(), jobs, scoreByIndex(jobs, []float64{0.5, 0.6}, nil))
	assert.Nil(t, cmp)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_BoundedConcurrency(t *testing.T) {
	jobs := testJobs(MaxJobs)

	var current, peak int64
	eval := func(_ context.Context, p *types.CandidateProfile, j *types.JobPosting) (*types.MatchResult, error) {
		n := atomic.AddInt64(&current, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if n <= old || atomic.CompareAndSwapInt64(&peak, old, n) {
				break
			}
		}
		defer atomic.AddInt64(&current, -1)
		return &types.MatchResult{CandidateID: p.ID, JobID: j.ID, OverallScore: 0.5}, nil
	}

	_, err := Run(context.Background(), testProfile(), jobs, eval)
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(maxConcurrent))
}

func TestBuildInsights_Commonalities(t *testing.T) {
	strongSkills := types.DimensionScore{Dimension: types.DimensionSkills, Score: 0.9, WeightFactor: 1.0}
	weakLocation := types.DimensionScore{Dimension: types.DimensionLocation, Score: 0.2, WeightFactor: 1.0}

	results := []types.MatchResult{
		{OverallScore: 0.8, Dimensions: map[types.Dimension]types.DimensionScore{
			types.DimensionSkills:   strongSkills,
			types.DimensionLocation: weakLocation,
		}},
		{OverallScore: 0.75, Dimensions: map[types.Dimension]types.DimensionScore{
			types.DimensionSkills:   strongSkills,
			types.DimensionLocation: weakLocation,
		}},
		{OverallScore: 0.4, Dimensions: map[types.Dimension]types.DimensionScore{
			types.DimensionCulture: {Dimension: types.DimensionCulture, Score: 0.95, WeightFactor: 1.0},
		}},
	}

	insights := buildInsights(results)

	assert.InDelta(t, (0.8+0.75+0.4)/3, insights.AverageScore, 0.0001)
	assert.Equal(t, 2, insights.StrongMatches)
	// Culture recurs only once, below the commonality frequency
	assert.Equal(t, []types.Dimension{types.DimensionSkills}, insights.CommonStrengths)
	assert.Equal(t, []types.Dimension{types.DimensionLocation}, insights.CommonGaps)
}

func TestBuildInsights_Empty(t *testing.T) {
	insights := buildInsights(nil)
	assert.Zero(t, insights.AverageScore)
	assert.Zero(t, insights.StrongMatches)
	assert.Empty(t, insights.CommonStrengths)
	assert.Empty(t, insights.CommonGaps)
}
