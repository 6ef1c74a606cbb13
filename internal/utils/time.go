package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// DateOnly keeps the YYYY-MM-DD prefix of a date or timestamp string.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= len(layoutDate) {
		if _, err := ParseDate(s[:len(layoutDate)]); err == nil {
			return s[:len(layoutDate)]
		}
	}
	return s
}
