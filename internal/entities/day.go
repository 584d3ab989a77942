package entities

import (
	"time"
)

const dayLayout = "2006-01-02"

// DayOf returns calendar day of t in loc as a date-only value (midnight UTC).
func DayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayKey formats day as YYYY-MM-DD.
func DayKey(day time.Time) string {
	return day.Format(dayLayout)
}

// ParseDayKey ...
func ParseDayKey(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

// PrevDay ...
func PrevDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}
