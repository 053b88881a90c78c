package workflow

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNoDraft is returned when a submit finds nothing in the draft holder.
	ErrNoDraft = errors.New("no gift request to submit")

	// ErrTokenRequired is returned when the admin token is missing.
	ErrTokenRequired = errors.New("admin token required")

	// ErrInvalidToken is returned when the admin token does not match.
	ErrInvalidToken = errors.New("invalid admin token")
)

// ValidationError lists the draft fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "invalid gift request: " + strings.Join(parts, "; ")
}
