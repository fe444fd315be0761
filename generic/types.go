/*
Package generic provides the calendar primitives shared by the holiday engine.

PURPOSE:
  This package contains the domain-agnostic pieces: a day-granularity Date,
  Gregorian Easter computation, the Holiday record every computation
  produces, and the error types callers inspect at the boundary.

KEY CONCEPTS IN THIS FILE (types.go):
  - Holiday: One dated, named holiday of a given type
  - HolidayType: national, state or municipal scope
  - Supported year range: the only years the engine computes for

DESIGN PRINCIPLES:
  1. Purity: Nothing here performs I/O or holds mutable state
  2. Value types: Date and Holiday are compared and copied by value
  3. Type Safety: HolidayType is a distinct string type

USAGE:
  easter := generic.EasterSunday(2024)
  goodFriday := easter.AddDays(-2)
  h := generic.Holiday{Date: goodFriday, Name: "Sexta-feira Santa", Type: generic.TypeNational}

SEE ALSO:
  - time.go: Date type and year helpers
  - easter.go: Easter Sunday computation
  - errors.go: Validation errors
*/
package generic

// =============================================================================
// SUPPORTED YEAR RANGE
// =============================================================================

const (
	MinYear = 1900
	MaxYear = 2199
)

// InSupportedRange reports whether year lies in [MinYear, MaxYear].
func InSupportedRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// =============================================================================
// HOLIDAY - The unit of output
// =============================================================================

type HolidayType string

const (
	TypeNational  HolidayType = "national"
	TypeState     HolidayType = "state"
	TypeMunicipal HolidayType = "municipal"
)

func (t HolidayType) String() string { return string(t) }

// Valid reports whether t is one of the known holiday types.
func (t HolidayType) Valid() bool {
	switch t {
	case TypeNational, TypeState, TypeMunicipal:
		return true
	}
	return false
}

// Holiday is a single public holiday on a specific date. Several Holidays
// may share a Date; they are never merged.
type Holiday struct {
	Date Date
	Name string
	Type HolidayType
}
