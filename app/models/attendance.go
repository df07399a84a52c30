package models

import "time"

// Attendance is the single authoritative record for one student in one
// period on one date. The (student_id, date, period) triple is unique;
// submissions after the first only update the row, they never duplicate it.
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id" validate:"required,uuid"`
	ClassID   string           `json:"class_id" validate:"required,uuid"`
	Date      time.Time        `json:"date"`
	Period    int              `json:"period" validate:"min=1"`
	Status    AttendanceStatus `json:"status"`
	Remark    Remark           `json:"remark"`
	TeacherID string           `json:"teacher_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Joined display fields, populated by listing queries only.
	StudentName string `json:"student_name,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
}
