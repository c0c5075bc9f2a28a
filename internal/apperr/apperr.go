// Package apperr defines the error taxonomy shared across the service:
// validation failures (400), missing resources (404), configuration problems
// and upstream store failures (500).
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports missing or invalid request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation builds a ValidationError with the given reason.
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

// NotFoundError reports that no matching resource exists.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// NotFound builds a NotFoundError for the named resource ("order", "file").
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConfigurationError reports missing credentials or endpoints. It is fatal to
// the request that triggered it.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// Configuration builds a ConfigurationError.
func Configuration(reason string) error {
	return &ConfigurationError{Reason: reason}
}

// UpstreamError wraps a failed call to the relational or blob store.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream wraps err with the operation that failed.
func Upstream(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// StatusCode resolves the HTTP status for any error in the taxonomy.
// Unrecognized errors map to 500.
func StatusCode(err error) int {
	var (
		validation *ValidationError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
