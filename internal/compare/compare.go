// Package compare runs the scoring pipeline across a bounded set of jobs
// for one candidate and produces a ranked, annotated comparison.
package compare

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// MaxJobs caps a single comparison request; prevents unbounded
	// compute fan-out.
	MaxJobs = 10
	// maxConcurrent bounds per-job evaluations running at once
	maxConcurrent = 10

	strongMatchThreshold = 0.70
	gapThreshold         = 0.60
	// commonFrequency is how often a dimension must recur as a strength
	// or gap across the compared jobs to count as a commonality.
	commonFrequency = 2
)

// InvalidComparisonSizeError indicates a comparison request for zero jobs
// or more than the hard cap.
type InvalidComparisonSizeError struct {
	Count int
}

func (e *InvalidComparisonSizeError) Error() string {
	return fmt.Sprintf("comparison requires between 1 and %d jobs, got %d", MaxJobs, e.Count)
}

// Evaluator scores one candidate/job pair. Implementations must be
// idempotent and safe for concurrent use.
type Evaluator func(ctx context.Context, profile *types.CandidateProfile, job *types.JobPosting) (*types.MatchResult, error)

// Run evaluates the candidate against every job in parallel with bounded
// concurrency, then ranks the results by overall score descending with
// confidence as tiebreak. A cancelled context discards all results.
func Run(ctx context.Context, profile *types.CandidateProfile, jobs []*types.JobPosting, eval Evaluator) (*types.RankedComparison, error) {
	if len(jobs) == 0 || len(jobs) > MaxJobs {
		return nil, &InvalidComparisonSizeError{Count: len(jobs)}
	}

	results := make([]*types.MatchResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i, job := range jobs {
		g.Go(func() error {
			result, err := eval(gctx, profile, job)
			if err != nil {
				return fmt.Errorf("scoring job %s: %w", job.ID, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		// Caller aborted: completed evaluations are cheap and idempotent,
		// but their results are not returned.
		return nil, err
	}

	ranked := make([]types.MatchResult, 0, len(results))
	for _, r := range results {
		ranked = append(ranked, *r)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].OverallScore != ranked[j].OverallScore {
			return ranked[i].OverallScore > ranked[j].OverallScore
		}
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return ranked[i].JobID.String() < ranked[j].JobID.String()
	})

	return &types.RankedComparison{
		CandidateID: profile.ID,
		Results:     ranked,
		Insights:    buildInsights(ranked),
	}, nil
}

// buildInsights summarizes the ranked results: average score, strong
// match count, and dimensions recurring as strengths or gaps.
func buildInsights(results []types.MatchResult) types.ComparisonInsights {
	insights := types.ComparisonInsights{}
	if len(results) == 0 {
		return insights
	}

	sum := 0.0
	strengthCounts := make(map[types.Dimension]int)
	gapCounts := make(map[types.Dimension]int)

	for _, r := range results {
		sum += r.OverallScore
		if r.OverallScore >= strongMatchThreshold {
			insights.StrongMatches++
		}
		for dim, ds := range r.Dimensions {
			if ds.Score >= strongMatchThreshold {
				strengthCounts[dim]++
			}
			if ds.Score < gapThreshold {
				gapCounts[dim]++
			}
		}
	}
	insights.AverageScore = sum / float64(len(results))

	for _, dim := range types.AllDimensions {
		if strengthCounts[dim] >= commonFrequency {
			insights.CommonStrengths = append(insights.CommonStrengths, dim)
		}
		if gapCounts[dim] >= commonFrequency {
			insights.CommonGaps = append(insights.CommonGaps, dim)
		}
	}

	return insights
}
