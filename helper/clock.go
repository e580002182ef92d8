package helper

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Now is replaced in tests.
var Now = time.Now

// WorkDate is the calendar day t falls on in loc.
func WorkDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// MinuteOfDay is the wall-clock position of t in loc, 0..1439.
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// ParseTimestamp accepts the timestamp shapes the admin screen sends.
// Values without an offset are read in loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", value)
}
