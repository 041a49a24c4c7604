package taskwarrior

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	valid := []string{
		// ISO-8601 variants
		"2025-01-31",
		"2025-01-31T09:00",
		"2025-01-31T09:00:00",
		"2025-01-31T09:00Z",
		"2025-01-31T09:00:00Z",
		// signed relative offsets
		"+2d", "-1w", "+3m", "+1q", "-2y", "+10d",
		// named dates
		"eom", "eoq", "eoy", "som", "soq", "soy",
		"today", "tomorrow", "yesterday", "now",
		"EOM", "Today",
		// weekday names
		"monday", "friday", "sun", "Wed",
		// month names
		"january", "december", "jan", "Sep",
		// ordinal days
		"1st", "2nd", "3rd", "4th", "11th", "21st", "22nd", "23rd", "31st",
	}
	for _, v := range valid {
		t.Run("valid/"+v, func(t *testing.T) {
			assert.True(t, ValidDate(v), "expected %q to be a valid date", v)
		})
	}

	invalid := []string{
		"",
		"soon",
		"next week",
		"2025-1-31",     // month not zero-padded
		"2025-01-31T09", // hour without minutes
		"01-31-2025",
		"2d",   // offset without sign
		"+2",   // offset without unit
		"+d",   // offset without count
		"+2h",  // unsupported unit
		"32nd", // out of range
		"0th",
		"maybe",
		"janurary",
		"mond",
		"; rm -rf /",
		"+2d; reboot",
	}
	for _, v := range invalid {
		t.Run("invalid/"+v, func(t *testing.T) {
			assert.False(t, ValidDate(v), "expected %q to be rejected", v)
		})
	}
}

func TestValidDateOrdinalSuffixLeniency(t *testing.T) {
	// Suffix and day number are not cross-checked: 1th, 2st etc. are accepted
	// as long as the day is 1..31 and the suffix is one of st/nd/rd/th.
	assert.True(t, ValidDate("1th"))
	assert.True(t, ValidDate("2st"))
	assert.False(t, ValidDate("32th"))
}
