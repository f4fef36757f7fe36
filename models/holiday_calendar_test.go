package models

import (
	"errors"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsHoliday(t *testing.T) {
	calendar := NewHolidayCalendar()

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"January 1 is a New Year holiday", date(2024, time.January, 1), true},
		{"January 8 is a New Year holiday", date(2024, time.January, 8), true},
		{"January 9 is not a holiday", date(2024, time.January, 9), false},
		{"February 23 is Defender of the Fatherland Day", date(2024, time.February, 23), true},
		{"February 22 is not a holiday", date(2024, time.February, 22), false},
		{"March 8 is International Women's Day", date(2024, time.March, 8), true},
		{"March 7 is not a holiday", date(2024, time.March, 7), false},
		{"May 1 is Spring and Labor Day", date(2024, time.May, 1), true},
		{"May 2 is not a holiday", date(2024, time.May, 2), false},
		{"May 9 is Victory Day", date(2024, time.May, 9), true},
		{"May 10 is not a holiday", date(2024, time.May, 10), false},
		{"June 12 is Russia Day", date(2024, time.June, 12), true},
		{"June 11 is not a holiday", date(2024, time.June, 11), false},
		{"November 4 is Unity Day", date(2024, time.November, 4), true},
		{"November 3 is not a holiday", date(2024, time.November, 3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendar.IsHoliday(tt.date); got != tt.expected {
				t.Errorf("IsHoliday(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.expected)
			}
		})
	}
}

func TestIsHolidayYearInvariant(t *testing.T) {
	calendar := NewHolidayCalendar()

	holidays := []struct {
		month time.Month
		day   int
	}{
		{time.January, 1}, {time.January, 2}, {time.January, 3}, {time.January, 4},
		{time.January, 5}, {time.January, 6}, {time.January, 7}, {time.January, 8},
		{time.February, 23}, {time.March, 8}, {time.May, 1}, {time.May, 9},
		{time.June, 12}, {time.November, 4},
	}

	for _, year := range []int{2024, 2025, 2100} {
		for _, h := range holidays {
			d := date(year, h.month, h.day)
			if !calendar.IsHoliday(d) {
				t.Errorf("IsHoliday(%s) = false, want true", d.Format("2006-01-02"))
			}
		}
	}
}

func TestCountHolidaysBetween(t *testing.T) {
	calendar := NewHolidayCalendar()

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{"May 1 to May 10 contains two holidays", date(2024, time.May, 1), date(2024, time.May, 10), 2},
		{"mid-June range contains no holidays", date(2024, time.June, 13), date(2024, time.June, 20), 0},
		{"single holiday day", date(2024, time.May, 1), date(2024, time.May, 1), 1},
		{"single regular day", date(2024, time.June, 15), date(2024, time.June, 15), 0},
		{"all New Year holidays", date(2024, time.January, 1), date(2024, time.January, 8), 8},
		{"range wrapping a year boundary", date(2024, time.December, 30), date(2025, time.January, 3), 3},
		{"full calendar year", date(2024, time.January, 1), date(2024, time.December, 31), 14},
		{"two full years", date(2024, time.January, 1), date(2025, time.December, 31), 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calendar.CountHolidaysBetween(tt.start, tt.end)
			if err != nil {
				t.Fatalf("CountHolidaysBetween returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("CountHolidaysBetween(%s, %s) = %d, want %d",
					tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.expected)
			}
		})
	}
}

func TestCountHolidaysBetweenInvalidRange(t *testing.T) {
	calendar := NewHolidayCalendar()

	_, err := calendar.CountHolidaysBetween(date(2024, time.June, 10), date(2024, time.June, 1))
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("CountHolidaysBetween with reversed range: got %v, want ErrInvalidRange", err)
	}
}

func TestCountHolidaysBoundedByRangeLength(t *testing.T) {
	calendar := NewHolidayCalendar()

	start := date(2024, time.December, 25)
	for days := 0; days < 30; days++ {
		end := start.AddDate(0, 0, days)
		count, err := calendar.CountHolidaysBetween(start, end)
		if err != nil {
			t.Fatalf("CountHolidaysBetween returned error: %v", err)
		}
		if count < 0 || count > days+1 {
			t.Errorf("CountHolidaysBetween(%s, %s) = %d, want between 0 and %d",
				start.Format("2006-01-02"), end.Format("2006-01-02"), count, days+1)
		}
	}
}

func TestFixedHolidays(t *testing.T) {
	calendar := NewHolidayCalendar()

	holidays := calendar.FixedHolidays()
	if len(holidays) != 14 {
		t.Fatalf("FixedHolidays returned %d entries, want 14", len(holidays))
	}

	if holidays[0].Name != "New Year Holidays" || holidays[0].Month != time.January || holidays[0].Day != 1 {
		t.Errorf("unexpected first holiday: %s %v %d", holidays[0].Name, holidays[0].Month, holidays[0].Day)
	}
}

func TestFixedHolidaysReturnsCopies(t *testing.T) {
	calendar := NewHolidayCalendar()

	holidays := calendar.FixedHolidays()
	holidays[0].Name = "changed"
	holidays[0].Month = time.December
	holidays[0].Day = 25

	fresh := calendar.FixedHolidays()
	if fresh[0].Name != "New Year Holidays" || fresh[0].Month != time.January || fresh[0].Day != 1 {
		t.Errorf("mutating the returned slice changed the calendar: %+v", fresh[0])
	}
	if calendar.IsHoliday(date(2024, time.December, 25)) {
		t.Error("IsHoliday(December 25) = true after mutating a returned copy")
	}
}
