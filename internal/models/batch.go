package models

import "time"

// Batch is a scheduled cohort of a course.
type Batch struct {
	ID        string     `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	CourseID  string     `db:"course_id" json:"course_id"`
	StartDate *time.Time `db:"start_date" json:"start_date,omitempty"`
}
