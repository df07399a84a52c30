package models

import "time"

type Class struct {
	ID           string    `json:"id" validate:"required,uuid"`
	Name         string    `json:"name" validate:"required"`
	Code         string    `json:"code" validate:"required"`
	IsActive     bool      `json:"is_active"`
	StudentCount int       `json:"student_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Student struct {
	ID        string    `json:"id" validate:"required,uuid"`
	StudentID string    `json:"student_id"` // school-assigned admission number
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	ClassID   string    `json:"class_id" validate:"required,uuid"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName returns the student's display name used on report rows.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
