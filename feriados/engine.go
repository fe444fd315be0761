/*
engine.go - Holiday derivation for a (year, state, type) request

PURPOSE:
  Turns a validated year, an optional state code and an optional type filter
  into the ordered list of holidays for that year.

ALGORITHM:
  1. Compute Easter Sunday once for the year
  2. Apply every movable rule's offset to the Easter date
  3. Materialize fixed rules whose effective-year guard is met
  4. Materialize the state's rules (unknown state = no state holidays)
  5. Concatenate fixed + movable + state, apply the type filter
  6. Stable sort by date

INVARIANTS:
  - Dates in the result are non-decreasing
  - Holidays sharing a date are all kept, in table order
  - Rule tables are never written after init

CONCURRENCY:
  An Engine only reads its RuleSet, so one instance can serve any number of
  goroutines without locking.

SEE ALSO:
  - rules.go: Rule types and the compiled-in tables
  - validate.go: Year validation
  - workdays.go: Business-day summary built on top of Holidays
*/
package feriados

import (
	"sort"
	"strings"

	"github.com/warp/holiday-engine/generic"
)

// Engine evaluates a RuleSet for a given year.
type Engine struct {
	rules RuleSet
}

// NewEngine creates an engine over the given rules.
func NewEngine(rules RuleSet) *Engine {
	return &Engine{rules: rules}
}

// Default returns an engine over the compiled-in Brazilian tables.
func Default() *Engine {
	return NewEngine(brazil)
}

// =============================================================================
// TYPE FILTER
// =============================================================================

// TypeFilter restricts which holiday types are returned. The zero value
// keeps every type.
type TypeFilter struct {
	only generic.HolidayType
}

// AllTypes keeps every holiday type.
var AllTypes = TypeFilter{}

// Only returns a filter that keeps a single holiday type.
func Only(t generic.HolidayType) TypeFilter { return TypeFilter{only: t} }

// ParseTypeFilter maps the tipo/type query value to a filter. "estadual" and
// "nacional" are accepted as synonyms. Unrecognized values keep every type.
func ParseTypeFilter(raw string) TypeFilter {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "national", "nacional":
		return Only(generic.TypeNational)
	case "state", "estadual":
		return Only(generic.TypeState)
	case "municipal":
		return Only(generic.TypeMunicipal)
	default:
		return AllTypes
	}
}

func (f TypeFilter) Keeps(t generic.HolidayType) bool {
	return f.only == "" || f.only == t
}

func (f TypeFilter) String() string {
	if f.only == "" {
		return "all"
	}
	return f.only.String()
}

// =============================================================================
// COMPUTATION
// =============================================================================

// NormalizeState lower-cases and trims a state code.
func NormalizeState(state string) string {
	return strings.ToLower(strings.TrimSpace(state))
}

// KnownState reports whether the engine has rules for the state code.
func (e *Engine) KnownState(state string) bool {
	_, ok := e.rules.States[NormalizeState(state)]
	return ok
}

// States returns the known state codes in alphabetical order.
func (e *Engine) States() []string {
	codes := make([]string, 0, len(e.rules.States))
	for code := range e.rules.States {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Holidays returns the holidays of a validated year, sorted by date.
// An empty or unknown state contributes no state holidays.
func (e *Engine) Holidays(year int, state string, filter TypeFilter) []generic.Holiday {
	easter := generic.EasterSunday(year)
	stateRules := e.rules.States[NormalizeState(state)]

	all := make([]generic.Holiday, 0, len(e.rules.Fixed)+len(e.rules.Movable)+len(stateRules))

	for _, r := range e.rules.Fixed {
		if !r.AppliesIn(year) {
			continue
		}
		all = append(all, generic.Holiday{
			Date: generic.NewDate(year, r.Month, r.Day),
			Name: r.Name,
			Type: generic.TypeNational,
		})
	}

	for _, r := range e.rules.Movable {
		all = append(all, generic.Holiday{
			Date: easter.AddDays(r.Offset),
			Name: r.Name,
			Type: r.Type,
		})
	}

	for _, r := range stateRules {
		if !r.AppliesIn(year) {
			continue
		}
		all = append(all, generic.Holiday{
			Date: generic.NewDate(year, r.Month, r.Day),
			Name: r.Name,
			Type: generic.TypeState,
		})
	}

	holidays := make([]generic.Holiday, 0, len(all))
	for _, h := range all {
		if filter.Keeps(h.Type) {
			holidays = append(holidays, h)
		}
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})
	return holidays
}

// Compute validates the raw year token and returns the holidays for it.
// Errors are *generic.ParseError or *generic.RangeError.
func (e *Engine) Compute(rawYear, state, rawType string) ([]generic.Holiday, error) {
	year, err := ValidateYear(rawYear)
	if err != nil {
		return nil, err
	}
	return e.Holidays(year, state, ParseTypeFilter(rawType)), nil
}
