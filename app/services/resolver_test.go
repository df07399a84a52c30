package services

import (
	"testing"
	"time"

	"github.com/bounis0910/Att-School/app/models"
)

func makePeriod(number int, start, end string) *models.Period {
	period := &models.Period{PeriodNumber: number}
	if start != "" {
		t, err := models.ParseTimeOfDay(start)
		if err != nil {
			panic(err)
		}
		period.StartTime = &t
	}
	if end != "" {
		t, err := models.ParseTimeOfDay(end)
		if err != nil {
			panic(err)
		}
		period.EndTime = &t
	}
	return period
}

func at(hhmm string) time.Time {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2025, 3, 9, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func TestResolveCurrentPeriodByTimeRange(t *testing.T) {
	periods := []*models.Period{
		makePeriod(1, "08:00", "08:45"),
		makePeriod(2, "09:00", "09:45"),
	}

	tests := []struct {
		time string
		want int
	}{
		{"08:00", 1},
		{"08:45", 1},
		{"09:00", 2}, // inclusive start boundary
		{"09:45", 2}, // inclusive end boundary
	}

	for _, tt := range tests {
		got, ok := ResolveCurrentPeriod(periods, at(tt.time))
		if !ok || got != tt.want {
			t.Errorf("ResolveCurrentPeriod at %s = %d, %v; want %d", tt.time, got, ok, tt.want)
		}
	}
}

func TestResolveCurrentPeriodFallsBackToFirstPeriod(t *testing.T) {
	periods := []*models.Period{
		makePeriod(1, "08:00", "08:45"),
		makePeriod(2, "09:00", "09:45"),
	}

	// Between periods and after the last one, the day's first period is
	// returned so attendance can still be recorded.
	for _, tt := range []string{"08:59", "09:46", "07:00", "15:30"} {
		got, ok := ResolveCurrentPeriod(periods, at(tt))
		if !ok || got != 1 {
			t.Errorf("ResolveCurrentPeriod at %s = %d, %v; want fallback to 1", tt, got, ok)
		}
	}
}

func TestResolveCurrentPeriodEmptySchedule(t *testing.T) {
	if got, ok := ResolveCurrentPeriod(nil, at("09:00")); ok {
		t.Errorf("expected no period for empty schedule, got %d", got)
	}
}

func TestResolveCurrentPeriodSkipsEntriesWithoutRange(t *testing.T) {
	periods := []*models.Period{
		makePeriod(1, "", ""),
		makePeriod(2, "09:00", "09:45"),
	}

	got, ok := ResolveCurrentPeriod(periods, at("09:30"))
	if !ok || got != 2 {
		t.Errorf("ResolveCurrentPeriod = %d, %v; want 2 (entry without range skipped)", got, ok)
	}

	// Outside every range the first entry still wins the fallback even
	// though it carries no times.
	got, ok = ResolveCurrentPeriod(periods, at("11:00"))
	if !ok || got != 1 {
		t.Errorf("ResolveCurrentPeriod fallback = %d, %v; want 1", got, ok)
	}
}

func TestResolveCurrentPeriodOverlapUsesScheduleOrder(t *testing.T) {
	periods := []*models.Period{
		makePeriod(1, "09:00", "10:00"),
		makePeriod(2, "09:30", "09:45"), // tighter range, later in order
	}

	got, ok := ResolveCurrentPeriod(periods, at("09:40"))
	if !ok || got != 1 {
		t.Errorf("overlap resolution = %d, %v; want 1 (schedule order wins, not tightness)", got, ok)
	}
}
