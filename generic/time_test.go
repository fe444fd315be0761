package generic_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/holiday-engine/generic"
)

// =============================================================================
// EASTER TESTS
// =============================================================================

func TestEasterSunday_ReferenceYears(t *testing.T) {
	cases := map[int]generic.Date{
		1900: generic.NewDate(1900, time.April, 15),
		1961: generic.NewDate(1961, time.April, 2),
		2000: generic.NewDate(2000, time.April, 23),
		2008: generic.NewDate(2008, time.March, 23),
		2010: generic.NewDate(2010, time.April, 4),
		2019: generic.NewDate(2019, time.April, 21),
		2020: generic.NewDate(2020, time.April, 12),
		2024: generic.NewDate(2024, time.March, 31),
		2038: generic.NewDate(2038, time.April, 25),
	}

	for year, want := range cases {
		assert.Equal(t, want, generic.EasterSunday(year), "Easter %d", year)
	}
}

func TestEasterSunday_AlwaysSundayInMarchOrApril(t *testing.T) {
	for year := generic.MinYear; year <= generic.MaxYear; year++ {
		easter := generic.EasterSunday(year)

		require.Equal(t, year, easter.Year())
		require.Contains(t, []time.Month{time.March, time.April}, easter.Month(), "year %d", year)
		require.Equal(t, time.Sunday, easter.Weekday(), "year %d", year)
		// Earliest possible is March 22, latest April 25.
		require.False(t, easter.Before(generic.NewDate(year, time.March, 22)), "year %d", year)
		require.False(t, easter.After(generic.NewDate(year, time.April, 25)), "year %d", year)
	}
}

func TestEasterSunday_Deterministic(t *testing.T) {
	assert.Equal(t, generic.EasterSunday(2137), generic.EasterSunday(2137))
}

// =============================================================================
// DATE ARITHMETIC TESTS
// =============================================================================

func TestDate_AddDays_CrossesBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		from   generic.Date
		offset int
		want   generic.Date
	}{
		{"leap year February", generic.NewDate(2024, time.February, 28), 1, generic.NewDate(2024, time.February, 29)},
		{"common year February", generic.NewDate(2023, time.February, 28), 1, generic.NewDate(2023, time.March, 1)},
		{"century not leap", generic.NewDate(1900, time.February, 28), 1, generic.NewDate(1900, time.March, 1)},
		{"400 year leap", generic.NewDate(2000, time.February, 28), 1, generic.NewDate(2000, time.February, 29)},
		{"year forward", generic.NewDate(2023, time.December, 31), 1, generic.NewDate(2024, time.January, 1)},
		{"year backward", generic.NewDate(2024, time.January, 1), -1, generic.NewDate(2023, time.December, 31)},
		{"carnival offset", generic.NewDate(2024, time.March, 31), -47, generic.NewDate(2024, time.February, 13)},
		{"corpus christi offset", generic.NewDate(2024, time.March, 31), 60, generic.NewDate(2024, time.May, 30)},
		{"zero", generic.NewDate(2024, time.March, 31), 0, generic.NewDate(2024, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.AddDays(tt.offset))
		})
	}
}

func TestDate_CompareAndFormat(t *testing.T) {
	a := generic.NewDate(2020, time.April, 10)
	b := generic.NewDate(2020, time.April, 12)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.BeforeOrEqual(a))
	assert.Equal(t, "2020-04-10", a.String())

	parsed, err := generic.ParseDate("2020-04-12")
	require.NoError(t, err)
	assert.Equal(t, b, parsed)

	_, err = generic.ParseDate("12/04/2020")
	assert.Error(t, err)
}

func TestFromTime_DropsClockAndZone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	got := generic.FromTime(time.Date(2024, time.November, 20, 23, 30, 0, 0, loc))
	assert.Equal(t, generic.NewDate(2024, time.November, 20), got)
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, generic.DaysInYear(2024))
	assert.Equal(t, 365, generic.DaysInYear(2023))
	assert.Equal(t, 365, generic.DaysInYear(1900))
	assert.Equal(t, 366, generic.DaysInYear(2000))
}

// =============================================================================
// ERROR TESTS
// =============================================================================

func TestRangeError_KindAndMessage(t *testing.T) {
	var err error = &generic.RangeError{Year: 3000, Min: generic.MinYear, Max: generic.MaxYear}

	assert.Equal(t, "year outside the supported range between 1900 and 2199", err.Error())
	assert.True(t, errors.Is(err, generic.ErrYearOutOfRange))
	assert.True(t, generic.IsClientError(err))

	var rangeErr *generic.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, generic.KindRangeError, rangeErr.Kind())
}

func TestParseError_IsNotClientError(t *testing.T) {
	var err error = &generic.ParseError{Input: "erro"}

	assert.True(t, errors.Is(err, generic.ErrYearParse))
	assert.False(t, generic.IsClientError(err))
}
