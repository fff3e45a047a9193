package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-08-24")
	require.True(t, ok)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.August, date.Month())
	assert.Equal(t, 24, date.Day())

	_, ok = IsValidDate("24/08/2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	clock, ok := IsValidClock("08:30")
	require.True(t, ok)
	assert.Equal(t, 8, clock.Hour())
	assert.Equal(t, 30, clock.Minute())

	_, ok = IsValidClock("8:30am")
	assert.False(t, ok)

	_, ok = IsValidClock("25:00")
	assert.False(t, ok)
}

func TestCombineDateClock(t *testing.T) {
	date, _ := IsValidDate("2026-08-24")
	clock, _ := IsValidClock("13:45")

	combined := CombineDateClock(date, clock)
	assert.Equal(t, "2026-08-24T13:45:00Z", combined.Format(time.RFC3339))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date is required"},
		{Field: "role", Message: "role is required"},
	}

	assert.Equal(t, "date: date is required; role: role is required", errs.Error())
	assert.Equal(t, map[string]string{
		"date": "date is required",
		"role": "role is required",
	}, errs.ToMap())
}

func TestIsInSlice(t *testing.T) {
	values := []string{"morning", "afternoon"}
	assert.True(t, IsInSlice("morning", values))
	assert.False(t, IsInSlice("full_day", values))
}
