package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "05/03/2025", want: "05/03/2025"},
		{in: "5/3/2025", want: "05/03/2025"},
		{in: "5/3/25", want: "05/03/2025"},
		{in: "05/03/25", want: "05/03/2025"},
		{in: "2025-03-05", want: "05/03/2025"},
		{in: "2025-3-5", want: "05/03/2025"},
		{in: "05-03-2025", want: "05/03/2025"},
		{in: "2025/03/05", want: "05/03/2025"},
		{in: "  05/03/2025 ", want: "05/03/2025"},
		{in: "01/01/85", want: "01/01/1985"},
		{in: "1-1-69", want: "01/01/2069"},
		{in: "1-1-70", want: "01/01/1970"},
		{in: "29/02/2024", want: "29/02/2024"},
		{in: "", want: ""},
		{in: "demain", want: ""},
		{in: "31/02/2025", want: ""},
		{in: "29/02/2025", want: ""},
		{in: "12/13/2025", want: ""},
		{in: "05/03", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"2025-03-05", "5/3/25", "05-03-2025"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2025, 3, 5, 18, 7, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-05 18:07", FormatTimestamp(ts))
	assert.Equal(t, "05/03/2025", Format(ts))
}

func TestMondayOf(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Add(15 * time.Hour)
		assert.Equal(t, monday, MondayOf(day), day.Weekday().String())
	}
}

func TestMonthWeeks(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday
	weeks := MonthWeeks(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))
	require.Len(t, weeks, 6)
	assert.Equal(t, "24/02/2025", Format(weeks[0][0]))
	assert.Equal(t, "01/03/2025", Format(weeks[0][5]))
	assert.Equal(t, "31/03/2025", Format(weeks[5][0]))
	assert.Equal(t, "06/04/2025", Format(weeks[5][6]))
	for _, w := range weeks {
		require.Len(t, w, 7)
		assert.Equal(t, time.Monday, w[0].Weekday())
	}

	// February 2021 is exactly four weeks starting on a Monday
	weeks = MonthWeeks(time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, weeks, 4)
	assert.Equal(t, "01/02/2021", Format(weeks[0][0]))
	assert.Equal(t, "28/02/2021", Format(weeks[3][6]))
}

func TestRanges(t *testing.T) {
	day := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	from, to := WeekRange(day)
	assert.Equal(t, "03/03/2025", Format(from))
	assert.Equal(t, "09/03/2025", Format(to))

	from, to = MonthRange(day)
	assert.Equal(t, "01/03/2025", Format(from))
	assert.Equal(t, "31/03/2025", Format(to))

	assert.True(t, InRange(day, from, to))
	assert.True(t, InRange(from, from, to))
	assert.True(t, InRange(to, from, to))
	assert.False(t, InRange(to.AddDate(0, 0, 1), from, to))
	assert.True(t, InRange(day, time.Time{}, time.Time{}))
	assert.True(t, InRange(day, from, time.Time{}))
}
