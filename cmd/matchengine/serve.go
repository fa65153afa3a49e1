package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/cache"
	"github.com/jonathan/jobmatch/internal/logger"
	"github.com/jonathan/jobmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes scoring, comparison, explanation, and projection endpoints backed by the profile and job stores.`,
	RunE:  runServe,
}

var (
	servePort        int
	serveWeights     string
	serveCacheTTL    time.Duration
	serveRequireAuth bool
	serveLogJSON     bool
	serveDebug       bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveWeights, "weights", "w", "", "Path to weights JSON file (defaults to published weights)")
	serveCmd.Flags().DurationVar(&serveCacheTTL, "cache-ttl", cache.DefaultTTL, "Result cache TTL")
	serveCmd.Flags().BoolVar(&serveRequireAuth, "require-auth", false, "Require JWT bearer tokens on scoring endpoints (needs JWT_SECRET)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit logs as JSON")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// API key is optional; without it personality and culture scoring fall
	// back to lexical similarity
	apiKey := os.Getenv("GEMINI_API_KEY")

	weights, err := loadWeightsOrDefault(serveWeights)
	if err != nil {
		return err
	}

	log, err := logger.New(serveLogJSON, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := server.Config{
		Port:           servePort,
		DatabaseURL:    databaseURL,
		APIKey:         apiKey,
		EmbeddingModel: os.Getenv("EMBEDDING_MODEL"),
		Weights:        weights,
		CacheTTL:       serveCacheTTL,
		RequireAuth:    serveRequireAuth,
	}

	srv, err := server.New(context.Background(), cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
