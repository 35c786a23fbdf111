// Package dates holds the date formats shared by the per-user stores and the
// program generators, plus the calendar arithmetic for week and month views.
package dates

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	// DisplayLayout is the canonical DD/MM/YYYY form stored in schedule and history files.
	DisplayLayout = "02/01/2006"
	// TimestampLayout is used for history entries created outside the planner.
	TimestampLayout = "2006-01-02 15:04"
)

var ErrInvalidDate = errors.New("invalid date")

// accepted input layouts, tried in order
var inputLayouts = []string{
	"2/1/2006",
	"2/1/06",
	"2006-1-2",
	"2-1-2006",
	"2006/1/2",
}

// Parse reads s using the accepted layouts, then falls back to splitting
// day/month/year on '/' or '-' with a two digit year pivot at 70.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	var parts []int
	for _, p := range strings.Split(strings.ReplaceAll(s, "-", "/"), "/") {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			continue
		}
		parts = append(parts, n)
	}
	if len(parts) != 3 {
		return time.Time{}, false
	}

	d, m, y := parts[0], parts[1], parts[2]
	if y < 100 {
		if y < 70 {
			y += 2000
		} else {
			y += 1900
		}
	}
	return Date(y, m, d)
}

// Date builds a UTC date, rejecting out of range components instead of normalizing them.
func Date(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// Normalize returns s in DisplayLayout, or "" when s is not a recognizable date.
func Normalize(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return Format(t)
}

func Format(t time.Time) string {
	return t.Format(DisplayLayout)
}

func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday starting the week that contains t.
func MondayOf(t time.Time) time.Time {
	day := Day(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// MonthWeeks returns the Monday-first weeks covering the month of t.
// Each week has 7 days; days of neighbouring months fill the first and last weeks.
func MonthWeeks(t time.Time) [][]time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var weeks [][]time.Time
	for start := MondayOf(first); !start.After(last); start = start.AddDate(0, 0, 7) {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = start.AddDate(0, 0, i)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	monday := MondayOf(t)
	return monday, monday.AddDate(0, 0, 6)
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// InRange reports whether day falls within [from, to]. Zero bounds are open.
func InRange(day, from, to time.Time) bool {
	day = Day(day)
	if !from.IsZero() && day.Before(Day(from)) {
		return false
	}
	if !to.IsZero() && day.After(Day(to)) {
		return false
	}
	return true
}
