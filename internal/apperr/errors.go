// Package apperr defines the closed set of error kinds surfaced by the
// repositories and services: validation failures, missing rows, and
// database/connectivity failures.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound marks a read, update or delete whose target row does not
// exist. Callers must be able to tell it apart from a transient failure.
var ErrNotFound = errors.New("not found")

// ValidationError reports malformed or missing fields in a write request,
// keyed by field name for field-level display.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// DataAccessError wraps a low-level database failure with the operation
// that hit it. The wrapped cause is logged server-side and never exposed
// to HTTP callers.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: data access failed", e.Op)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
