/*
errors.go - Centralized error types for the holiday engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The HTTP layer inspects these to choose a status code.

ERROR CATEGORIES:
  1. Parse errors - The year token is not a whole number
  2. Range errors - The year is outside the supported range

USAGE:
  var rangeErr *generic.RangeError
  if errors.As(err, &rangeErr) {
      // user-correctable, show rangeErr.Error()
  }

SEE ALSO:
  - feriados/validate.go: Produces these errors
  - api/handlers.go: Maps them to HTTP responses
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrYearParse is returned when the year token cannot be read as an integer.
	ErrYearParse = errors.New("year is not an integer")

	// ErrYearOutOfRange is returned when the year parses but lies outside
	// [MinYear, MaxYear].
	ErrYearOutOfRange = errors.New("year outside the supported range")
)

// KindRangeError is the machine-readable kind carried by RangeError.
const KindRangeError = "holiday_range_error"

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RangeError reports a well-formed year outside the supported range.
type RangeError struct {
	Year int
	Min  int
	Max  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("year outside the supported range between %d and %d", e.Min, e.Max)
}

// Kind returns the machine-readable error kind.
func (e *RangeError) Kind() string { return KindRangeError }

func (e *RangeError) Unwrap() error {
	return ErrYearOutOfRange
}

// ParseError reports a year token that is not a whole number. Callers should
// not expose Input or the underlying cause to end users.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrYearParse, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrYearParse}
	}
	return []error{ErrYearParse, e.Err}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is a user-correctable input problem
// that should be reported with its own message.
func IsClientError(err error) bool {
	return errors.Is(err, ErrYearOutOfRange)
}
