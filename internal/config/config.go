// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents service configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or must be
// provided via CLI flags or environment.
type Config struct {
	// Service
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Collaborators
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for embeddings
	EmbeddingModel string `json:"embedding_model,omitempty"` // embedding model override

	// Scoring
	WeightsPath     string `json:"weights_path,omitempty"`      // recalibrated weight table (JSON)
	CacheTTLMinutes int    `json:"cache_ttl_minutes,omitempty"` // match-result cache TTL

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // detailed CLI output
	LogJSON bool `json:"log_json,omitempty"`
	Debug   bool `json:"debug,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number, got %d", c.Port)
	}
	if c.CacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'cache_ttl_minutes' must be non-negative")
	}
	if c.WeightsPath != "" {
		if _, err := os.Stat(c.WeightsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: weights file not found: %s", c.WeightsPath)
		}
	}
	return nil
}
