package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/explain"
	"github.com/jonathan/jobmatch/internal/observability"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain a candidate-job match in plain terms",
	Long:  "Scores a candidate profile against a job posting and derives a narrative explanation: match tier, strengths, ranked gaps, and a horizon-bucketed action plan.",
	RunE:  runExplain,
}

var (
	explainCandidate string
	explainJob       string
	explainWeights   string
	explainOutput    string
	explainVerbose   bool
)

func init() {
	explainCmd.Flags().StringVarP(&explainCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	explainCmd.Flags().StringVarP(&explainJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	explainCmd.Flags().StringVarP(&explainWeights, "weights", "w", "", "Path to weights JSON file (defaults to published weights)")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Path to output Explanation JSON file (defaults to stdout)")
	explainCmd.Flags().BoolVarP(&explainVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := explainCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(_ *cobra.Command, _ []string) error {
	profile, err := loadCandidate(explainCandidate)
	if err != nil {
		return err
	}
	job, err := loadJob(explainJob)
	if err != nil {
		return err
	}
	weights, err := loadWeightsOrDefault(explainWeights)
	if err != nil {
		return err
	}

	result, err := evaluatePair(profile, job, weights)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	explanation := explain.Generate(result, weights)

	if explainVerbose {
		observability.NewPrinter(os.Stderr).PrintExplanation(explanation)
	}

	return writeOutput(explainOutput, explanation)
}
