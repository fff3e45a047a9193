package timecalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(h, m int) time.Time {
	return time.Date(2026, time.March, 9, h, m, 0, 0, time.UTC)
}

func clockPtr(h, m int) *time.Time {
	t := clock(h, m)
	return &t
}

func TestWorkedHours(t *testing.T) {
	t.Run("full day with lunch", func(t *testing.T) {
		// 08:00-17:00 minus 12:30-13:30 lunch = 8h
		hours, ok := WorkedHours(clock(8, 0), clockPtr(17, 0), clockPtr(12, 30), clockPtr(13, 30), 0)
		require.True(t, ok)
		assert.Equal(t, "8", hours.String())
	})

	t.Run("lunch and break combined", func(t *testing.T) {
		// 08:00-16:30 minus 1h lunch minus 30m break = 7h
		hours, ok := WorkedHours(clock(8, 0), clockPtr(16, 30), clockPtr(12, 0), clockPtr(13, 0), 30)
		require.True(t, ok)
		assert.Equal(t, "7", hours.String())
	})

	t.Run("fractional hours", func(t *testing.T) {
		// 09:15-17:30 with no deductions = 8.25h
		hours, ok := WorkedHours(clock(9, 15), clockPtr(17, 30), nil, nil, 0)
		require.True(t, ok)
		assert.True(t, hours.Equal(decimal.RequireFromString("8.25")))
	})

	t.Run("open day has no total", func(t *testing.T) {
		_, ok := WorkedHours(clock(8, 0), nil, nil, nil, 0)
		assert.False(t, ok)
	})

	t.Run("inverted range has no total", func(t *testing.T) {
		_, ok := WorkedHours(clock(17, 0), clockPtr(8, 0), nil, nil, 0)
		assert.False(t, ok)
	})

	t.Run("deductions exceeding span clamp to zero", func(t *testing.T) {
		hours, ok := WorkedHours(clock(8, 0), clockPtr(9, 0), nil, nil, 120)
		require.True(t, ok)
		assert.True(t, hours.IsZero())
	})

	t.Run("inverted lunch window is ignored", func(t *testing.T) {
		hours, ok := WorkedHours(clock(8, 0), clockPtr(16, 0), clockPtr(13, 0), clockPtr(12, 0), 0)
		require.True(t, ok)
		assert.Equal(t, "8", hours.String())
	})
}

func TestISOWeekRange(t *testing.T) {
	t.Run("mid-year week", func(t *testing.T) {
		from, to := ISOWeekRange(2026, 35)
		assert.Equal(t, "2026-08-24", from.Format("2006-01-02"))
		assert.Equal(t, "2026-08-30", to.Format("2006-01-02"))
		assert.Equal(t, time.Monday, from.Weekday())
		assert.Equal(t, time.Sunday, to.Weekday())
	})

	t.Run("week one can start in the previous year", func(t *testing.T) {
		from, to := ISOWeekRange(2026, 1)
		assert.Equal(t, "2025-12-29", from.Format("2006-01-02"))
		assert.Equal(t, "2026-01-04", to.Format("2006-01-02"))
	})

	t.Run("week 53 of a long year", func(t *testing.T) {
		from, to := ISOWeekRange(2020, 53)
		assert.Equal(t, "2020-12-28", from.Format("2006-01-02"))
		assert.Equal(t, "2021-01-03", to.Format("2006-01-02"))
	})
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2026, 2)
	assert.Equal(t, "2026-02-01", from.Format("2006-01-02"))
	assert.Equal(t, "2026-02-28", to.Format("2006-01-02"))

	from, to = MonthRange(2024, 2)
	assert.Equal(t, "2024-02-01", from.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", to.Format("2006-01-02"))
}

func TestDaysInclusive(t *testing.T) {
	start := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, DaysInclusive(start, start))
	assert.Equal(t, 5, DaysInclusive(start, start.AddDate(0, 0, 4)))
	assert.Equal(t, 0, DaysInclusive(start, start.AddDate(0, 0, -1)))
}
