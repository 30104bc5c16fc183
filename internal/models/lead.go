package models

import "time"

// Lead is a prospective student enquiry.
type Lead struct {
	ID          string     `db:"id" json:"id"`
	FullName    string     `db:"full_name" json:"full_name"`
	Phone       string     `db:"phone" json:"phone"`
	Source      string     `db:"source" json:"source"`
	EnquiryDate *time.Time `db:"enquiry_date" json:"enquiry_date,omitempty"`
}
