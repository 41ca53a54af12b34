package models

import (
	"time"
)

// DateLayout is the storage format of a presence record's calendar day
const DateLayout = "2006-01-02"

// TimeLayout is the storage format of a presence record's time of day
const TimeLayout = "15:04:05"

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTime formats a time as HH:MM:SS
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseDate parses a YYYY-MM-DD string into a time.Time in the given location
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, dateStr, loc)
}
