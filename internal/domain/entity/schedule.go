package entity

import (
	"strings"
	"time"
)

// weekdayAbbreviations maps the three-letter day tokens stored on habits to
// their weekday values.
var weekdayAbbreviations = map[string]time.Weekday{
	"Mon": time.Monday,
	"Tue": time.Tuesday,
	"Wed": time.Wednesday,
	"Thu": time.Thursday,
	"Fri": time.Friday,
	"Sat": time.Saturday,
	"Sun": time.Sunday,
}

// ParseDaysOfWeek converts a comma-separated list of three-letter weekday
// abbreviations ("Mon, Wed,Fri") into a weekday set. Whitespace around tokens
// is ignored, duplicates collapse, and unrecognized tokens are dropped.
// An empty or entirely unrecognized list yields an empty set, which the task
// generator treats as "generate nothing".
func ParseDaysOfWeek(daysOfWeek string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, token := range strings.Split(daysOfWeek, ",") {
		if day, ok := weekdayAbbreviations[strings.TrimSpace(token)]; ok {
			days[day] = true
		}
	}
	return days
}
