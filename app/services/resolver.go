package services

import (
	"database/sql"
	"time"

	"github.com/bounis0910/Att-School/app/database"
	"github.com/bounis0910/Att-School/app/models"
)

// ResolveCurrentPeriod determines the active period number from a day's
// schedule. periods must already be filtered to the right day and class
// scope and ordered ascending by period number, which is also the
// tie-break for overlapping time ranges.
//
// The first entry whose inclusive [start, end] range contains the
// time-of-day wins. Entries missing either boundary are skipped during
// the range scan. When no range matches, the day's first period is
// returned so a teacher can still record outside exact bell times. An
// empty schedule resolves to nothing; that is a valid terminal state,
// not an error.
func ResolveCurrentPeriod(periods []*models.Period, at time.Time) (int, bool) {
	timeOfDay := models.TimeOfDayFrom(at)

	for _, p := range periods {
		if p.ContainsTime(timeOfDay) {
			return p.PeriodNumber, true
		}
	}

	if len(periods) > 0 {
		return periods[0].PeriodNumber, true
	}
	return 0, false
}

// ResolveCurrentPeriodForClass loads today's schedule for the class and
// resolves the current period. at must already be in the school time zone.
func ResolveCurrentPeriodForClass(db *sql.DB, classID string, at time.Time) (int, bool, error) {
	periods, err := database.GetPeriodsForClassDay(db, models.DayOfWeekFor(at), classID)
	if err != nil {
		return 0, false, err
	}
	period, ok := ResolveCurrentPeriod(periods, at)
	return period, ok, nil
}
