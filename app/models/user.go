package models

import "time"

// User is a staff member. Authentication lives outside this service; the
// recording teacher arrives as an already-authenticated identifier.
type User struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Email     string    `json:"email" validate:"required,email"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
