package models

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, stored as minutes since
// midnight. Schedule boundaries compare as whole minutes, matching the
// "HH:MM" granularity periods are defined with.
type TimeOfDay int

// ParseTimeOfDay parses a "HH:MM" string. Trailing text, extra colon
// segments and malformed digits are rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

// TimeOfDayFrom extracts the wall-clock minute of a timestamp. The caller
// is responsible for converting t into the school time zone first.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
