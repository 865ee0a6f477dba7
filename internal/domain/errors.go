package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDivisionUndefined is returned when a fraction is requested over an empty denominator.
	ErrDivisionUndefined = errors.New("fraction undefined for empty input")
	// ErrUnknownMode is returned for a comparison mode the engine does not implement.
	ErrUnknownMode = errors.New("unknown comparison mode")
)

// SchemaError reports required columns absent from a dataset.
type SchemaError struct {
	Dataset string
	Missing []string
}

func (e *SchemaError) Error() string {
	if e.Dataset != "" {
		return fmt.Sprintf("%s: missing required columns: %s", e.Dataset, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}
