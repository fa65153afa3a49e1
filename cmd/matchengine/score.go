package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/observability"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a single job posting",
	Long:  "Scores a candidate profile against a job posting across seven weighted dimensions, producing a MatchResult JSON with per-dimension scores and overall confidence.",
	RunE:  runScore,
}

var (
	scoreCandidate string
	scoreJob       string
	scoreWeights   string
	scoreOutput    string
	scoreVerbose   bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreWeights, "weights", "w", "", "Path to weights JSON file (defaults to published weights)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output MatchResult JSON file (defaults to stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := scoreCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	profile, err := loadCandidate(scoreCandidate)
	if err != nil {
		return err
	}
	job, err := loadJob(scoreJob)
	if err != nil {
		return err
	}
	weights, err := loadWeightsOrDefault(scoreWeights)
	if err != nil {
		return err
	}

	result, err := evaluatePair(profile, job, weights)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(result)
	}

	return writeOutput(scoreOutput, result)
}
