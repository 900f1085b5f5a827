/*
errors.go - Centralized error types for the rostering engine

PURPOSE:
  All engine error types in one place. Two hard categories exist:

  1. Invalid configuration - unknown slot name requested, preference rate
     outside [0,100], malformed slot/break tables
  2. Data inconsistency   - preference window with start >= end, preference
     referencing an unknown employee id

  A missing candidate is NOT an error: it is recorded as a shortage in the
  coverage report. Malformed input text (unparsable dates/times) is rejected
  by the loader before the engine ever sees it.

USAGE:
  Callers can classify with errors.Is or the helpers:

    if roster.IsConfigError(err) { ... reject the request ... }

SEE ALSO:
  - config.go: Validation that produces configuration errors
  - types.go:  PreferenceIndex.Validate produces data errors
*/
package roster

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownSlot is returned when a slot name has no configuration entry.
	ErrUnknownSlot = errors.New("unknown slot")

	// ErrInvalidPreferenceRate is returned when an employee's preference rate
	// falls outside [0,100].
	ErrInvalidPreferenceRate = errors.New("preference rate outside [0,100]")

	// ErrInvalidConfig is returned for malformed slot, break, or labor tables.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidWindow is returned for a preference window with start >= end.
	ErrInvalidWindow = errors.New("invalid window: start >= end")

	// ErrUnknownEmployee is returned when a preference references an employee
	// id that is not on the roster.
	ErrUnknownEmployee = errors.New("unknown employee")

	// ErrInvalidPeriod is returned when a rostering period ends before it starts.
	ErrInvalidPeriod = errors.New("invalid period: end before start")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigError reports an invalid configuration with the offending field.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// DataError reports inconsistent input data tied to an employee.
type DataError struct {
	EmployeeID EmployeeID
	Reason     string
	Err        error
}

func (e *DataError) Error() string {
	if e.EmployeeID != "" {
		return fmt.Sprintf("data for employee %s: %s", e.EmployeeID, e.Reason)
	}
	return "data: " + e.Reason
}

func (e *DataError) Unwrap() error { return e.Err }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConfigError reports whether the error is an invalid-configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrUnknownSlot) ||
		errors.Is(err, ErrInvalidPreferenceRate) ||
		errors.Is(err, ErrInvalidConfig)
}

// IsDataError reports whether the error is a data-inconsistency error.
func IsDataError(err error) bool {
	return errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrUnknownEmployee)
}
