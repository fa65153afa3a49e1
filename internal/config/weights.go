package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/jobmatch/internal/schemas"
	"github.com/jonathan/jobmatch/internal/scoring"
)

// LoadWeights reads a recalibrated weight table from a JSON file,
// validating it against the published schema and the sum-to-one
// invariant before it can influence any score.
func LoadWeights(path string) (scoring.Weights, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scoring.Weights{}, fmt.Errorf("failed to read weights file %s: %w", path, err)
	}

	if err := schemas.ValidateWeights(data); err != nil {
		return scoring.Weights{}, fmt.Errorf("weights file %s: %w", path, err)
	}

	var w scoring.Weights
	if err := json.Unmarshal(data, &w); err != nil {
		return scoring.Weights{}, fmt.Errorf("failed to parse weights file %s: %w", path, err)
	}
	if err := w.Validate(); err != nil {
		return scoring.Weights{}, fmt.Errorf("weights file %s: %w", path, err)
	}
	return w, nil
}
