/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the domain model (generic.Holiday, feriados.BusinessDaySummary) from the
  external contract, which clients already depend on field by field.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Response: Error and wrapper types

TYPES:
  Holidays:
    HolidayDTO (date as ISO-8601 string)

  Business days:
    BusinessDaysDTO

  Errors:
    RangeErrorResponse, InternalErrorResponse

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"
	"github.com/warp/holiday-engine/feriados"
	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// HolidayDTO represents a holiday in API responses.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func toHolidayDTOs(holidays []generic.Holiday) []HolidayDTO {
	dtos := make([]HolidayDTO, len(holidays))
	for i, h := range holidays {
		dtos[i] = HolidayDTO{
			Date: h.Date.String(),
			Name: h.Name,
			Type: string(h.Type),
		}
	}
	return dtos
}

// BusinessDaysDTO summarizes the working days of a year.
type BusinessDaysDTO struct {
	Year               int             `json:"year"`
	State              string          `json:"state,omitempty"`
	Days               int             `json:"days"`
	WeekendDays        int             `json:"weekend_days"`
	HolidaysOnWeekdays int             `json:"holidays_on_weekdays"`
	BusinessDays       int             `json:"business_days"`
	BusinessDayRatio   decimal.Decimal `json:"business_day_ratio"`
}

func toBusinessDaysDTO(s feriados.BusinessDaySummary) BusinessDaysDTO {
	return BusinessDaysDTO{
		Year:               s.Year,
		State:              s.State,
		Days:               s.Days,
		WeekendDays:        s.WeekendDays,
		HolidaysOnWeekdays: s.HolidaysOnWeekdays,
		BusinessDays:       s.BusinessDays,
		BusinessDayRatio:   s.Ratio,
	}
}

// =============================================================================
// ERROR RESPONSES
// =============================================================================

// RangeErrorResponse is returned with 404 when the year is out of range.
type RangeErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// InternalErrorResponse is returned with 500 for every other failure,
// including malformed years.
type InternalErrorResponse struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Message string `json:"message"`
}
