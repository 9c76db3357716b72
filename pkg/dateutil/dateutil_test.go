package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrence(t *testing.T) {
	cases := []struct {
		name  string
		today time.Time
		day   int
		want  time.Time
	}{
		{"later this month", day(2026, 10, 10), 15, day(2026, 10, 15)},
		{"today", day(2026, 10, 15), 15, day(2026, 10, 15)},
		{"already passed rolls over", day(2026, 10, 20), 5, day(2026, 11, 5)},
		{"december rolls into next year", day(2026, 12, 28), 1, day(2027, 1, 1)},
		{"clamped to short month", day(2027, 2, 3), 31, day(2027, 2, 28)},
		{"leap february", day(2028, 2, 3), 30, day(2028, 2, 29)},
		{"rollover then clamp", day(2027, 1, 31), 30, day(2027, 2, 28)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextOccurrence(tc.today, tc.day))
		})
	}
}

func TestNextOccurrence_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, day(2026, 10, 15), NextOccurrence(now, 15))
}

func TestParse(t *testing.T) {
	d, err := Parse("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, day(2026, 3, 1), d)

	d, err = Parse("2026-03-01T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, day(2026, 3, 1), d)

	_, err = Parse("03/01/2026")
	assert.Error(t, err)

	opt, err := ParseOptional("")
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(day(2026, 12, 14))
	assert.Equal(t, day(2026, 12, 1), start)
	assert.Equal(t, day(2027, 1, 1), end)
}
