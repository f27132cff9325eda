package utils

import "time"

const DateLayout = "2006-01-02"

// DateKey returns the current UTC calendar date, used to scope cache keys so
// day-sensitive entries roll over at midnight.
func DateKey(now time.Time) string {
	return now.UTC().Format(DateLayout)
}

// DaysAgo returns the date n days before now, formatted as a date string.
func DaysAgo(now time.Time, n int) string {
	return now.AddDate(0, 0, -n).UTC().Format(DateLayout)
}
