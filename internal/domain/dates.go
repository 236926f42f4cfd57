package domain

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses day-first dates as typed in the sheets. The time of day is dropped.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
