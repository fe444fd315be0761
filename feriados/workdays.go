package feriados

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/shopspring/decimal"
	"github.com/warp/holiday-engine/generic"
)

// BusinessDaySummary counts the working days of a year once weekends and the
// year's national (and optionally state) holidays are removed.
type BusinessDaySummary struct {
	Year               int
	State              string
	Days               int
	WeekendDays        int
	HolidaysOnWeekdays int
	BusinessDays       int
	Ratio              decimal.Decimal // BusinessDays / Days, 4 decimal places
}

// BusinessCalendar builds a Monday-to-Friday business calendar holding the
// holidays of one year. Holidays on the same date are added individually.
func (e *Engine) BusinessCalendar(year int, state string) *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, h := range e.Holidays(year, state, AllTypes) {
		bc.AddHoliday(calHoliday(h))
	}
	return bc
}

// calHoliday pins a computed holiday to its single year.
func calHoliday(h generic.Holiday) *cal.Holiday {
	date := h.Date
	return &cal.Holiday{
		Name:      h.Name,
		Type:      cal.ObservancePublic,
		Month:     date.Month(),
		Day:       date.Day(),
		StartYear: date.Year(),
		EndYear:   date.Year(),
		Func: func(_ *cal.Holiday, year int) time.Time {
			return time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
		},
	}
}

// BusinessDays summarizes a validated year for the given state.
func (e *Engine) BusinessDays(year int, state string) BusinessDaySummary {
	bc := e.BusinessCalendar(year, state)

	summary := BusinessDaySummary{
		Year:  year,
		State: NormalizeState(state),
		Days:  generic.DaysInYear(year),
	}

	end := generic.EndOfYear(year)
	for d := generic.StartOfYear(year); d.BeforeOrEqual(end); d = d.AddDays(1) {
		switch {
		case d.IsWeekend():
			summary.WeekendDays++
		case !bc.IsWorkday(d.Time):
			summary.HolidaysOnWeekdays++
		default:
			summary.BusinessDays++
		}
	}

	summary.Ratio = decimal.NewFromInt(int64(summary.BusinessDays)).
		Div(decimal.NewFromInt(int64(summary.Days))).
		Round(4)
	return summary
}
