package domain

import "time"

// WeekStart returns the Monday-aligned start date of the week containing t,
// truncated to midnight in t's location. Sunday rolls back to the previous
// Monday (ISO-8601 weeks).
func WeekStart(t time.Time) time.Time {
	day := DateOf(t)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
