package models

import "fmt"

// AttendanceStatus defines the possible status values for an attendance record.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// ParseStatus validates a raw status value against the enumeration.
func ParseStatus(s string) (AttendanceStatus, error) {
	switch AttendanceStatus(s) {
	case Present:
		return Present, nil
	case Absent:
		return Absent, nil
	}
	return "", fmt.Errorf("invalid status %q: must be present or absent", s)
}

// Remark is the excusal sub-state attached to an absence. It is only
// meaningful while the record's status is absent.
type Remark string

const (
	RemarkNone        Remark = "none"
	RemarkExcused     Remark = "excused"
	RemarkStillAbsent Remark = "still_absent"
)

// ParseRemark validates a raw remark value. An empty value normalizes to
// RemarkNone.
func ParseRemark(s string) (Remark, error) {
	switch Remark(s) {
	case "", RemarkNone:
		return RemarkNone, nil
	case RemarkExcused:
		return RemarkExcused, nil
	case RemarkStillAbsent:
		return RemarkStillAbsent, nil
	}
	return "", fmt.Errorf("invalid remark %q: must be excused, still_absent or empty", s)
}

// CountsAsPresent reports whether a record contributes to present totals.
// An excused absence is forgiven in every summary without changing the
// stored status.
func (r Remark) CountsAsPresent(status AttendanceStatus) bool {
	if status == Present {
		return true
	}
	return r == RemarkExcused
}

// OverallStatus is a student's derived daily label, computed by scanning
// all periods recorded for the student on one date.
type OverallStatus string

const (
	OverallNotRecorded OverallStatus = "not_recorded"
	OverallPresent     OverallStatus = "present"
	OverallAbsent      OverallStatus = "absent"
)
