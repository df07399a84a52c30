package models

import "testing"

func TestParseStatus(t *testing.T) {
	if got, err := ParseStatus("present"); err != nil || got != Present {
		t.Errorf("ParseStatus(present) = %v, %v", got, err)
	}
	if got, err := ParseStatus("absent"); err != nil || got != Absent {
		t.Errorf("ParseStatus(absent) = %v, %v", got, err)
	}
	for _, bad := range []string{"", "late", "PRESENT", "excused"} {
		if _, err := ParseStatus(bad); err == nil {
			t.Errorf("ParseStatus(%q): expected error", bad)
		}
	}
}

func TestParseRemarkNormalizesEmpty(t *testing.T) {
	got, err := ParseRemark("")
	if err != nil || got != RemarkNone {
		t.Errorf("ParseRemark(\"\") = %v, %v, want none", got, err)
	}
}

func TestParseRemarkRejectsUnknownValues(t *testing.T) {
	for _, bad := range []string{"sick", "EXCUSED", "present"} {
		if _, err := ParseRemark(bad); err == nil {
			t.Errorf("ParseRemark(%q): expected error", bad)
		}
	}
}

func TestRemarkCountsAsPresent(t *testing.T) {
	tests := []struct {
		status AttendanceStatus
		remark Remark
		want   bool
	}{
		{Present, RemarkNone, true},
		{Absent, RemarkExcused, true},
		{Absent, RemarkNone, false},
		{Absent, RemarkStillAbsent, false},
	}

	for _, tt := range tests {
		if got := tt.remark.CountsAsPresent(tt.status); got != tt.want {
			t.Errorf("CountsAsPresent(%s, %s) = %v, want %v", tt.status, tt.remark, got, tt.want)
		}
	}
}
