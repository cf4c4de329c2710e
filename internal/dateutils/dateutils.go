// Package dateutils provides the date operations shared by the statement
// parser and the cash-flow report.
package dateutils

import (
	"fmt"
	"time"
)

// Layouts used throughout the application.
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutOFX  = "20060102"
	DateLayoutFull = "2006-01-02 15:04:05"
)

// ParseOFXDate parses the 8-digit YYYYMMDD prefix of a DTPOSTED value and
// normalizes it to midnight UTC. Longer values (timestamps with timezone
// suffixes) are truncated to the date part.
func ParseOFXDate(raw string) (time.Time, error) {
	if len(raw) < 8 {
		return time.Time{}, fmt.Errorf("date too short: %q", raw)
	}
	t, err := time.ParseInLocation(DateLayoutOFX, raw[:8], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", raw, err)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// DayKey truncates a date to its day, formatted as an ISO string, for use
// in composite dedup keys.
func DayKey(date time.Time) string {
	return date.UTC().Format(DateLayoutISO)
}

// MonthIndex returns the 0-11 calendar month index of a date.
func MonthIndex(date time.Time) int {
	return int(date.Month()) - 1
}

// SameYear reports whether a date falls in the given calendar year.
func SameYear(date time.Time, year int) bool {
	return date.Year() == year
}
