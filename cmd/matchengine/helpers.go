package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/scoring"
	"github.com/jonathan/jobmatch/internal/types"
)

// loadWeightsOrDefault loads schema-validated weights from a file, falling
// back to the published default weights when no path is given.
func loadWeightsOrDefault(path string) (scoring.Weights, error) {
	if path == "" {
		return scoring.DefaultWeights(), nil
	}
	return config.LoadWeights(path)
}

// loadCandidate reads and validates a CandidateProfile JSON file
func loadCandidate(path string) (*types.CandidateProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate file %s: %w", path, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}

	return &profile, nil
}

// loadJob reads and validates a JobPosting JSON file
func loadJob(path string) (*types.JobPosting, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(content, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, fmt.Errorf("invalid job posting: %w", err)
	}

	return &job, nil
}

// evaluatePair runs the offline scoring pipeline for one candidate/job pair.
// Personality and culture fall back to lexical similarity since no embedding
// client is available offline.
func evaluatePair(profile *types.CandidateProfile, job *types.JobPosting, w scoring.Weights) (*types.MatchResult, error) {
	cf, jf, err := features.Extract(profile, job)
	if err != nil {
		return nil, err
	}

	scores := scoring.ScoreAll(cf, jf)
	overall, confidence := scoring.Aggregate(scores, w)

	return &types.MatchResult{
		CandidateID:  profile.ID,
		JobID:        job.ID,
		OverallScore: overall,
		Confidence:   confidence,
		Dimensions:   scores,
		ComputedAt:   time.Now().UTC(),
	}, nil
}

// writeOutput marshals the payload as indented JSON, writing to the given
// path or to stdout when the path is empty.
func writeOutput(path string, payload any) error {
	jsonOutput, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonOutput)
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}
