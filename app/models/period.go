package models

import "time"

// Period represents one scheduled teaching slot. A period is scoped to a
// specific class when ClassID is set, otherwise it applies school-wide.
// At most one period may exist per (day_of_week, period_number, scope).
type Period struct {
	ID           string     `json:"id"`
	DayOfWeek    int        `json:"day_of_week" validate:"min=0,max=6"` // Sunday=0 .. Saturday=6
	PeriodNumber int        `json:"period_number" validate:"min=1"`
	StartTime    *TimeOfDay `json:"start_time,omitempty"`
	EndTime      *TimeOfDay `json:"end_time,omitempty"`
	ClassID      *string    `json:"class_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasTimeRange reports whether the period carries both boundaries and can
// take part in time-based resolution.
func (p *Period) HasTimeRange() bool {
	return p.StartTime != nil && p.EndTime != nil
}

// ContainsTime reports whether t falls inside the period's time range.
// Both boundaries are inclusive, so a 09:00-09:45 period is current at
// exactly 09:00 and exactly 09:45.
func (p *Period) ContainsTime(t TimeOfDay) bool {
	if !p.HasTimeRange() {
		return false
	}
	return *p.StartTime <= t && t <= *p.EndTime
}

// DayNames maps DayOfWeek values to display names, Sunday first.
var DayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// DayOfWeekFor returns the schedule day index for a date. Go's
// time.Weekday already counts Sunday as 0.
func DayOfWeekFor(t time.Time) int {
	return int(t.Weekday())
}
