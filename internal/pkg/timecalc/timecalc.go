// Package timecalc holds the pure time arithmetic shared by timesheets and
// payroll: worked-hour totals from clock times, and reporting period ranges.
package timecalc

import (
	"time"

	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// WorkedHours converts a day's clock-in/out, optional lunch window and break
// minutes into a worked-hour total. The second return is false when the day is
// still open (no clock-out) or the range is inverted; callers must not treat
// that as zero hours worked.
func WorkedHours(clockIn time.Time, clockOut *time.Time, lunchStart, lunchEnd *time.Time, breakMinutes int) (decimal.Decimal, bool) {
	if clockOut == nil {
		return decimal.Zero, false
	}
	worked := clockOut.Sub(clockIn)
	if worked < 0 {
		return decimal.Zero, false
	}

	var lunch time.Duration
	if lunchStart != nil && lunchEnd != nil && lunchEnd.After(*lunchStart) {
		lunch = lunchEnd.Sub(*lunchStart)
	}

	totalMinutes := int64(worked.Minutes()) - int64(lunch.Minutes()) - int64(breakMinutes)
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	return decimal.NewFromInt(totalMinutes).Div(sixty), true
}

// ISOWeekRange returns the Monday and Sunday of the given ISO-8601 week.
// Week 1 is the week containing the year's first Thursday.
func ISOWeekRange(year, week int) (time.Time, time.Time) {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	week1Monday := jan4.AddDate(0, 0, 1-weekday)

	start := week1Monday.AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	return start, end
}

// MonthRange returns the first and last calendar day of the given month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// DaysInclusive counts calendar days from start to end, both ends included.
// Returns 0 when end precedes start.
func DaysInclusive(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// YearRange returns January 1st and December 31st of the given year.
func YearRange(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return truncateDay(a).Equal(truncateDay(b))
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
