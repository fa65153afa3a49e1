// Package main provides the entry point for the job match scoring engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchengine",
	Short: "Candidate-job compatibility scoring engine",
	Long:  "Matchengine scores candidate profiles against job postings across seven weighted dimensions and produces explanations, comparisons, and improvement projections via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
