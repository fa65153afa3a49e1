// Package schemas provides JSON Schema validation for structured
// configuration artifacts, primarily recalibrated weight tables.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// WeightsSchemaPath is the repo-relative location of the weight-table schema
const WeightsSchemaPath = "schemas/weights.schema.json"

// ValidationError carries the individual schema violations for one document
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %s", strings.Join(e.Violations, "; "))
}

// ResolveSchemaPath finds a schema file by trying the path relative to
// the working directory and then likely repo-root locations. Useful when
// commands and tests run from different directories. Returns empty when
// nothing exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}
	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ValidateDocument validates a JSON document against the schema at the
// given path. Returns a ValidationError listing every violation.
func ValidateDocument(schemaPath string, document []byte) error {
	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaPath)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return &ValidationError{Violations: violations}
}

// ValidateWeights validates a weight-table document against its schema.
// The schema is resolved relative to the working directory; a missing
// schema file is an error, not a silent pass.
func ValidateWeights(document []byte) error {
	path := ResolveSchemaPath(WeightsSchemaPath)
	if path == "" {
		return fmt.Errorf("weights schema not found at %s", WeightsSchemaPath)
	}
	return ValidateDocument(path, document)
}
