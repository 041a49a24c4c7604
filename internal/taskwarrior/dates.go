package taskwarrior

import (
	"regexp"
	"strings"
)

// The engine accepts a handful of date shorthand families. Values matching
// any of these pass through to the command line unchanged; anything else is a
// DateFormatError before a process is spawned.
var (
	// 2025-01-31, 2025-01-31T09:00, 2025-01-31T09:00:00, optionally with Z.
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2})?Z?)?$`)

	// Signed offsets: +2d, -1w, +3m, +1q, -2y. The sign is required.
	relativeOffsetPattern = regexp.MustCompile(`^[+-]\d+[dwmqy]$`)

	// Ordinal day of month: 1st..31st (any of the st/nd/rd/th suffixes).
	ordinalDayPattern = regexp.MustCompile(`^([1-9]|[12][0-9]|3[01])(st|nd|rd|th)$`)
)

var namedDates = map[string]bool{
	"eom": true, "eoq": true, "eoy": true,
	"som": true, "soq": true, "soy": true,
	"today": true, "tomorrow": true, "yesterday": true, "now": true,
}

var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

var monthNames = map[string]bool{
	"january": true, "february": true, "march": true, "april": true,
	"may": true, "june": true, "july": true, "august": true,
	"september": true, "october": true, "november": true, "december": true,
	"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "oct": true, "nov": true, "dec": true,
}

// ValidDate reports whether v matches one of the accepted date shorthand
// grammars. Named tokens, weekday and month names are case-insensitive.
func ValidDate(v string) bool {
	if v == "" {
		return false
	}
	if isoDatePattern.MatchString(v) || relativeOffsetPattern.MatchString(v) {
		return true
	}
	lower := strings.ToLower(v)
	if namedDates[lower] || weekdayNames[lower] || monthNames[lower] {
		return true
	}
	return ordinalDayPattern.MatchString(lower)
}
