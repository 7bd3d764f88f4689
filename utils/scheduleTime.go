package utils

import (
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// NextOccurrence returns the next session start for a weekly schedule after
// the given reference time, or nil when the weekday list never matches.
func NextOccurrence(weekdays []string, startTime string, from time.Time) *time.Time {
	parsed, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil
	}

	wanted := make(map[string]bool, len(weekdays))
	for _, d := range weekdays {
		wanted[strings.ToLower(strings.TrimSpace(d))] = true
	}
	if len(wanted) == 0 {
		return nil
	}

	for i := 0; i < 8; i++ {
		day := from.AddDate(0, 0, i)
		if !wanted[strings.ToLower(day.Weekday().String())] {
			continue
		}
		candidate := now.With(day).BeginningOfDay().
			Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute)
		if candidate.After(from) {
			return &candidate
		}
	}

	return nil
}
