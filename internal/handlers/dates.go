package handlers

import "time"

// dayFormat is the human-readable day string used in responses,
// e.g. "Mon Jan 01 2024". It carries no time-of-day component.
const dayFormat = "Mon Jan 02 2006"

// dateFormats are the accepted input layouts, tried in order.
var dateFormats = []string{"2006-01-02", time.RFC3339}

// parseDate parses a calendar date string. The second return value reports
// whether the input was a valid date.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dayString formats a date as a human-readable day string.
func dayString(t time.Time) string {
	return t.Format(dayFormat)
}
