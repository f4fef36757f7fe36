package models

import (
	"errors"
	"time"

	"github.com/rickar/cal/v2"
)

// ErrInvalidRange is returned when a range is queried with start after end.
// The message matches the validation error surfaced by the API.
var ErrInvalidRange = errors.New("Start date must be before or equal to end date")

// HolidayCalendar holds the fixed set of official Russian non-working
// holidays. The set is defined by month and day only, so the same dates are
// recognized in every year. It is built once at startup and never mutated,
// so it is safe for concurrent reads.
type HolidayCalendar struct {
	calendar *cal.Calendar
}

// fixedHoliday builds a holiday that falls on the same month and day every
// year, with no weekend observation shifting.
func fixedHoliday(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:  name,
		Type:  cal.ObservancePublic,
		Month: month,
		Day:   day,
		Func:  cal.CalcDayOfMonth,
	}
}

// NewHolidayCalendar creates the calendar with the official fixed holidays:
// January 1-8 (New Year holidays), February 23, March 8, May 1, May 9,
// June 12 and November 4.
func NewHolidayCalendar() *HolidayCalendar {
	c := &cal.Calendar{Name: "Russian fixed holidays"}

	for day := 1; day <= 8; day++ {
		c.AddHoliday(fixedHoliday("New Year Holidays", time.January, day))
	}
	c.AddHoliday(
		fixedHoliday("Defender of the Fatherland Day", time.February, 23),
		fixedHoliday("International Women's Day", time.March, 8),
		fixedHoliday("Spring and Labor Day", time.May, 1),
		fixedHoliday("Victory Day", time.May, 9),
		fixedHoliday("Russia Day", time.June, 12),
		fixedHoliday("Unity Day", time.November, 4),
	)

	return &HolidayCalendar{calendar: c}
}

// IsHoliday reports whether the given date is an official non-working
// holiday. Only the month and day are significant; the year is ignored.
func (hc *HolidayCalendar) IsHoliday(date time.Time) bool {
	actual, _, _ := hc.calendar.IsHoliday(date)
	return actual
}

// CountHolidaysBetween counts the official non-working holidays between
// start and end, inclusive of both ends. Returns ErrInvalidRange if start
// is after end.
func (hc *HolidayCalendar) CountHolidaysBetween(start, end time.Time) (int, error) {
	if start.After(end) {
		return 0, ErrInvalidRange
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if hc.IsHoliday(d) {
			count++
		}
	}

	return count, nil
}

// FixedHoliday is a read-only view of one configured holiday.
type FixedHoliday struct {
	Name  string
	Month time.Month
	Day   int
}

// FixedHolidays returns the configured holidays in calendar order. The
// returned values are copies; mutating them does not affect the calendar.
func (hc *HolidayCalendar) FixedHolidays() []FixedHoliday {
	holidays := make([]FixedHoliday, len(hc.calendar.Holidays))
	for i, holiday := range hc.calendar.Holidays {
		holidays[i] = FixedHoliday{
			Name:  holiday.Name,
			Month: holiday.Month,
			Day:   holiday.Day,
		}
	}
	return holidays
}
