package models

import (
	"time"

	"github.com/lib/pq"
)

// Student represents a learner admitted to the institute.
type Student struct {
	ID            string         `db:"id" json:"id"`
	FullName      string         `db:"full_name" json:"full_name"`
	Email         string         `db:"email" json:"email"`
	Phone         string         `db:"phone" json:"phone"`
	AdmissionDate *time.Time     `db:"admission_date" json:"admission_date,omitempty"`
	CourseIDs     pq.StringArray `db:"course_ids" json:"course_ids"`
}
