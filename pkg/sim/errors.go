package sim

import (
	"errors"
	"fmt"
)

// Errors surfaced by the simulation core. Validation failures are
// deterministic; nothing here is retryable.
var (
	// ErrOutOfRange indicates a simulation parameter outside its documented domain.
	ErrOutOfRange = errors.New("parameter out of range")

	// ErrNilOutcomes indicates that no outcome collection was given to the aggregator.
	ErrNilOutcomes = errors.New("nil outcome collection")

	// ErrEmptyOutcomes indicates an outcome collection with zero elements.
	ErrEmptyOutcomes = errors.New("empty outcome collection")
)

// RangeError reports which parameter violated which bound.
// Raised before any sampling begins; never raised mid-batch.
type RangeError struct {
	// Param is the offending parameter name as the caller supplied it.
	Param string

	// Value is the offending value.
	Value any

	// Bound describes the violated constraint.
	Bound string
}

// Error implements the error interface for RangeError.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s = %v: %s", e.Param, e.Value, e.Bound)
}

// Unwrap lets callers match RangeErrors with errors.Is(err, ErrOutOfRange).
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// NewRangeError creates a RangeError with the given details.
func NewRangeError(param string, value any, bound string) *RangeError {
	return &RangeError{Param: param, Value: value, Bound: bound}
}
