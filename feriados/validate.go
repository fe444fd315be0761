package feriados

import (
	"strconv"
	"strings"

	"github.com/warp/holiday-engine/generic"
)

// ValidateYear parses the raw year token and checks it against the supported
// range. Surrounding whitespace is ignored; signs are accepted by the parser
// but any negative year is out of range anyway.
func ValidateYear(raw string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &generic.ParseError{Input: raw, Err: err}
	}
	if !generic.InSupportedRange(year) {
		return 0, &generic.RangeError{Year: year, Min: generic.MinYear, Max: generic.MaxYear}
	}
	return year, nil
}
