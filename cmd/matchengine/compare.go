package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/compare"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Rank a candidate against multiple job postings",
	Long:  "Scores a candidate profile against up to ten job postings in parallel, producing a ranked comparison with cross-job insights. Job files are given as positional arguments.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompare,
}

var (
	compareCandidate string
	compareWeights   string
	compareOutput    string
	compareVerbose   bool
)

func init() {
	compareCmd.Flags().StringVarP(&compareCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	compareCmd.Flags().StringVarP(&compareWeights, "weights", "w", "", "Path to weights JSON file (defaults to published weights)")
	compareCmd.Flags().StringVarP(&compareOutput, "out", "o", "", "Path to output RankedComparison JSON file (defaults to stdout)")
	compareCmd.Flags().BoolVarP(&compareVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := compareCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	profile, err := loadCandidate(compareCandidate)
	if err != nil {
		return err
	}
	weights, err := loadWeightsOrDefault(compareWeights)
	if err != nil {
		return err
	}

	jobs := make([]*types.JobPosting, 0, len(args))
	for _, path := range args {
		job, err := loadJob(path)
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}

	eval := func(_ context.Context, p *types.CandidateProfile, j *types.JobPosting) (*types.MatchResult, error) {
		return evaluatePair(p, j, weights)
	}

	comparison, err := compare.Run(context.Background(), profile, jobs, eval)
	if err != nil {
		return fmt.Errorf("failed to compare jobs: %w", err)
	}

	if compareVerbose {
		observability.NewPrinter(os.Stderr).PrintComparison(comparison)
	}

	return writeOutput(compareOutput, comparison)
}
