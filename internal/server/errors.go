package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/jobmatch/internal/compare"
	"github.com/jonathan/jobmatch/internal/engine"
	"github.com/jonathan/jobmatch/internal/features"
	"github.com/jonathan/jobmatch/internal/store"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Typed engine errors map to client or upstream statuses; anything
// unrecognized is an internal error.
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		incomplete  *features.IncompleteProfileError
		badSize     *compare.InvalidComparisonSizeError
		notFound    *store.NotFoundError
		unavailable *engine.UpstreamUnavailableError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &badSize):
		return http.StatusBadRequest
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
