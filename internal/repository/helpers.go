package repository

import "time"

// formatTime stores timestamps as RFC3339 in UTC so string order is time order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

func nowUTC() string {
	return formatTime(time.Now())
}
