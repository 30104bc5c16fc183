package models

import "time"

// StaffMember represents an employee of the institute.
type StaffMember struct {
	ID          string     `db:"id" json:"id"`
	FullName    string     `db:"full_name" json:"full_name"`
	Role        string     `db:"role" json:"role"`
	Email       string     `db:"email" json:"email"`
	JoiningDate *time.Time `db:"joining_date" json:"joining_date,omitempty"`
}
