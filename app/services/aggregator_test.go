package services

import (
	"reflect"
	"testing"

	"github.com/bounis0910/Att-School/app/models"
)

func record(studentID string, period int, status models.AttendanceStatus, remark models.Remark) *models.Attendance {
	return &models.Attendance{
		StudentID: studentID,
		Period:    period,
		Status:    status,
		Remark:    remark,
	}
}

func TestSummarizeCountsExcusedAsPresent(t *testing.T) {
	records := []*models.Attendance{
		record("s1", 1, models.Absent, models.RemarkExcused),
		record("s2", 1, models.Present, models.RemarkNone),
	}

	counts := Summarize(records).CountsFor(1)
	if counts.PresentTotal != 2 || counts.AbsentTotal != 0 {
		t.Errorf("counts = %+v, want present 2 absent 0", counts)
	}
}

func TestSummarizeScenario(t *testing.T) {
	// Class with S1 absent and S2 present in period 1.
	records := []*models.Attendance{
		record("s1", 1, models.Absent, models.RemarkNone),
		record("s2", 1, models.Present, models.RemarkNone),
	}

	summary := Summarize(records)
	counts := summary.CountsFor(1)
	if counts.PresentTotal != 1 || counts.AbsentTotal != 1 {
		t.Fatalf("before excusal: counts = %+v, want 1/1", counts)
	}

	// Excusing S1 flips the totals to 2 present, 0 absent.
	records[0].Remark = models.RemarkExcused
	counts = Summarize(records).CountsFor(1)
	if counts.PresentTotal != 2 || counts.AbsentTotal != 0 {
		t.Fatalf("after excusal: counts = %+v, want 2/0", counts)
	}
}

func TestSummarizePeriodsAreDistinctAndSorted(t *testing.T) {
	records := []*models.Attendance{
		record("s1", 3, models.Present, models.RemarkNone),
		record("s1", 1, models.Present, models.RemarkNone),
		record("s2", 3, models.Absent, models.RemarkNone),
		record("s2", 1, models.Present, models.RemarkNone),
	}

	summary := Summarize(records)
	if !reflect.DeepEqual(summary.Periods, []int{1, 3}) {
		t.Errorf("Periods = %v, want [1 3]", summary.Periods)
	}
}

func TestSummarizeOverallStatus(t *testing.T) {
	records := []*models.Attendance{
		// present in one period, unexcused absence in another: absent overall
		record("s1", 1, models.Present, models.RemarkNone),
		record("s1", 2, models.Absent, models.RemarkStillAbsent),
		// only an excused absence: present overall
		record("s2", 1, models.Absent, models.RemarkExcused),
		// plain presence
		record("s3", 1, models.Present, models.RemarkNone),
	}

	summary := Summarize(records)

	tests := []struct {
		studentID string
		want      models.OverallStatus
	}{
		{"s1", models.OverallAbsent},
		{"s2", models.OverallPresent},
		{"s3", models.OverallPresent},
		{"s4", models.OverallNotRecorded},
	}
	for _, tt := range tests {
		if got := summary.OverallFor(tt.studentID); got != tt.want {
			t.Errorf("OverallFor(%s) = %s, want %s", tt.studentID, got, tt.want)
		}
	}
}

func TestSummarizeAbsenceAfterPresenceStaysAbsent(t *testing.T) {
	// Record order must not matter for the overall label.
	records := []*models.Attendance{
		record("s1", 2, models.Absent, models.RemarkNone),
		record("s1", 1, models.Present, models.RemarkNone),
	}

	if got := Summarize(records).OverallFor("s1"); got != models.OverallAbsent {
		t.Errorf("OverallFor(s1) = %s, want absent", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if len(summary.Periods) != 0 || len(summary.Counts) != 0 {
		t.Errorf("empty summary should carry no periods, got %+v", summary)
	}
}
