package services

import (
	"database/sql"
	"sort"
	"time"

	"github.com/bounis0910/Att-School/app/database"
	"github.com/bounis0910/Att-School/app/models"
)

// PeriodCounts are the per-period totals for one class and date. An
// excused absence counts as present and leaves the absent total.
type PeriodCounts struct {
	Period       int `json:"period"`
	PresentTotal int `json:"present_total"`
	AbsentTotal  int `json:"absent_total"`
}

// DaySummary is the derived aggregate view for one class and date. It is
// computed from current records on every call, never stored.
type DaySummary struct {
	ClassID string                          `json:"class_id"`
	Date    string                          `json:"date"`
	Periods []int                           `json:"periods"`
	Counts  []PeriodCounts                  `json:"counts"`
	Overall map[string]models.OverallStatus `json:"overall"`
}

// Summarize computes per-period counts and per-student overall labels from
// a set of attendance records. Period columns are driven by the distinct
// recorded periods, not an assumed fixed range. Pure and side-effect free;
// safe to call concurrently.
func Summarize(records []*models.Attendance) *DaySummary {
	summary := &DaySummary{
		Periods: make([]int, 0),
		Counts:  make([]PeriodCounts, 0),
		Overall: make(map[string]models.OverallStatus),
	}

	countsByPeriod := make(map[int]*PeriodCounts)
	for _, record := range records {
		counts, ok := countsByPeriod[record.Period]
		if !ok {
			counts = &PeriodCounts{Period: record.Period}
			countsByPeriod[record.Period] = counts
			summary.Periods = append(summary.Periods, record.Period)
		}

		if record.Remark.CountsAsPresent(record.Status) {
			counts.PresentTotal++
		} else {
			counts.AbsentTotal++
		}

		// Overall label: any non-excused absence in any period makes the
		// day absent; otherwise any record makes it present.
		if record.Status == models.Absent && record.Remark != models.RemarkExcused {
			summary.Overall[record.StudentID] = models.OverallAbsent
		} else if summary.Overall[record.StudentID] != models.OverallAbsent {
			summary.Overall[record.StudentID] = models.OverallPresent
		}
	}

	sort.Ints(summary.Periods)
	for _, period := range summary.Periods {
		summary.Counts = append(summary.Counts, *countsByPeriod[period])
	}
	return summary
}

// OverallFor returns the derived daily label for a student, including
// not_recorded when the student has no record in the summary.
func (s *DaySummary) OverallFor(studentID string) models.OverallStatus {
	if overall, ok := s.Overall[studentID]; ok {
		return overall
	}
	return models.OverallNotRecorded
}

// CountsFor returns the totals for one period, or zero counts when the
// period is not recorded.
func (s *DaySummary) CountsFor(period int) PeriodCounts {
	for _, counts := range s.Counts {
		if counts.Period == period {
			return counts
		}
	}
	return PeriodCounts{Period: period}
}

// AggregateClassDay loads the class's records for a date and summarizes
// them. The read is a plain snapshot; rebuild callers tolerate concurrent
// writes because regeneration is idempotent and re-triggerable.
func AggregateClassDay(db *sql.DB, classID string, date time.Time) (*DaySummary, error) {
	records, err := database.GetAttendanceByClassAndDate(db, classID, date)
	if err != nil {
		return nil, err
	}
	summary := Summarize(records)
	summary.ClassID = classID
	summary.Date = date.Format("2006-01-02")
	return summary, nil
}

// AggregateSchoolDay summarizes every active class for a date, keyed by
// class ID, for the school-wide dashboard view.
func AggregateSchoolDay(db *sql.DB, date time.Time) (map[string]*DaySummary, error) {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]*DaySummary, len(classes))
	for _, class := range classes {
		summary, err := AggregateClassDay(db, class.ID, date)
		if err != nil {
			return nil, err
		}
		summaries[class.ID] = summary
	}
	return summaries, nil
}
