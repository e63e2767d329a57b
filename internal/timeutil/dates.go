package timeutil

import (
	"time"
)

// Business dates are plain calendar dates ("2006-01-02", no time component).
// All parsing and formatting uses local calendar components so that a date
// typed in the UI never shifts by a day at timezone boundaries.

const (
	DateLayout  = "2006-01-02"
	LabelLayout = "Jan 2006"
)

// NowMillis returns the current time as Unix milliseconds, the format used
// for created_at/updated_at/changed_at timestamps.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// ParseDate parses a "2006-01-02" business date in the local calendar.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

// FormatDate formats a time as a "2006-01-02" business date using its
// local calendar components.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Date builds a local-midnight time from calendar components. Month and day
// overflow normalizes the usual Go way (day 0 = last day of previous month).
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// LastDayOfMonth returns the number of days in the given month,
// leap years included.
func LastDayOfMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// IsWeekend reports whether the date falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
