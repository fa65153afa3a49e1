package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/project"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project how a candidate's match score could improve",
	Long:  "Scores a candidate profile against a job posting and projects the overall-score gain from closing each gap dimension, with a realistic timeline estimate.",
	RunE:  runProject,
}

var (
	projectCandidate string
	projectJob       string
	projectWeights   string
	projectOutput    string
	projectVerbose   bool
)

func init() {
	projectCmd.Flags().StringVarP(&projectCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	projectCmd.Flags().StringVarP(&projectJob, "job", "j", "", "Path to input JobPosting JSON file (required)")
	projectCmd.Flags().StringVarP(&projectWeights, "weights", "w", "", "Path to weights JSON file (defaults to published weights)")
	projectCmd.Flags().StringVarP(&projectOutput, "out", "o", "", "Path to output ImprovementPlan JSON file (defaults to stdout)")
	projectCmd.Flags().BoolVarP(&projectVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	if err := projectCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := projectCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	profile, err := loadCandidate(projectCandidate)
	if err != nil {
		return err
	}
	job, err := loadJob(projectJob)
	if err != nil {
		return err
	}
	weights, err := loadWeightsOrDefault(projectWeights)
	if err != nil {
		return err
	}

	result, err := evaluatePair(profile, job, weights)
	if err != nil {
		return fmt.Errorf("failed to score candidate: %w", err)
	}

	plan := project.Build(result, weights)

	if projectVerbose {
		observability.NewPrinter(os.Stderr).PrintImprovementPlan(plan)
	}

	return writeOutput(projectOutput, plan)
}
