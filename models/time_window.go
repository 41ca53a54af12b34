package models

import (
	"fmt"
	"time"
)

// TimeWindow is the daily admission window, both ends inclusive
type TimeWindow struct {
	Open  string `json:"open"`  // "08:00" format
	Close string `json:"close"` // "18:00" format
}

// DefaultTimeWindow is used when no window is configured
var DefaultTimeWindow = TimeWindow{Open: "08:00", Close: "18:00"}

// Validate validates the window configuration
func (w TimeWindow) Validate() []string {
	var errors []string

	if !isValidTimeFormat(w.Open) {
		errors = append(errors, "Open time must be in HH:MM format (e.g., 08:00)")
	}

	if !isValidTimeFormat(w.Close) {
		errors = append(errors, "Close time must be in HH:MM format (e.g., 18:00)")
	}

	// Check that open time is before close time
	if isValidTimeFormat(w.Open) && isValidTimeFormat(w.Close) {
		if !isStartBeforeEnd(w.Open, w.Close) {
			errors = append(errors, "Open time must be before close time")
		}
	}

	return errors
}

// Contains reports whether t's time of day falls inside the window.
// The caller is responsible for converting t to the attendance location.
func (w TimeWindow) Contains(t time.Time) bool {
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	open := timeToMinutes(w.Open) * 60
	closeAt := timeToMinutes(w.Close) * 60
	return seconds >= open && seconds <= closeAt
}

// String returns the window as "HH:MM-HH:MM"
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.Open, w.Close)
}

// isValidTimeFormat validates HH:MM format
func isValidTimeFormat(timeStr string) bool {
	if len(timeStr) != 5 {
		return false
	}

	if timeStr[2] != ':' {
		return false
	}

	// Parse hours
	hours := timeStr[0:2]
	if !isNumeric(hours) {
		return false
	}
	h := parseNumber(hours)
	if h < 0 || h > 23 {
		return false
	}

	// Parse minutes
	minutes := timeStr[3:5]
	if !isNumeric(minutes) {
		return false
	}
	m := parseNumber(minutes)
	if m < 0 || m > 59 {
		return false
	}

	return true
}

// isStartBeforeEnd checks if start time is before end time
func isStartBeforeEnd(start, end string) bool {
	startMinutes := timeToMinutes(start)
	endMinutes := timeToMinutes(end)
	return startMinutes < endMinutes
}

// timeToMinutes converts HH:MM to total minutes
func timeToMinutes(timeStr string) int {
	hours := parseNumber(timeStr[0:2])
	minutes := parseNumber(timeStr[3:5])
	return hours*60 + minutes
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

// parseNumber converts a numeric string to int (assumes valid input)
func parseNumber(s string) int {
	result := 0
	for _, char := range s {
		result = result*10 + int(char-'0')
	}
	return result
}
