package utils

import (
	"log"
	"strings"
	"time"
)

const DefaultDateFormat = "2006-01-02"

// Layouts seen in the wild from the upstream feed.
var fallbackDateFormats = []string{
	"02/01/2006",
	"02-01-2006",
	"Jan 2, 2006",
}

// ParseDate parses a match date string, trying the default format first
// and a few known fallbacks. Logs and returns zero time if nothing
// matches; aggregation does not depend on the date value, so a bad date
// never excludes a row.
func ParseDate(dateStr string) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if t, err := time.Parse(DefaultDateFormat, dateStr); err == nil {
		return t
	}
	for _, layout := range fallbackDateFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t
		}
	}
	log.Printf("Error parsing date '%s': no known layout matched. Returning zero time.", dateStr)
	return time.Time{}
}
