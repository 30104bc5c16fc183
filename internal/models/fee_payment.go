package models

import "time"

// PaymentStatus enumerates fee payment states.
type PaymentStatus string

const (
	// PaymentStatusPaid marks a collected fee.
	PaymentStatusPaid PaymentStatus = "Paid"
	// PaymentStatusPending marks an outstanding fee.
	PaymentStatusPending PaymentStatus = "Pending"
)

// FeePayment is a fee instalment owed or collected from a student. Date is the due date for
// pending payments and the transaction date for paid ones.
type FeePayment struct {
	ID        string        `db:"id" json:"id"`
	StudentID string        `db:"student_id" json:"student_id"`
	Amount    float64       `db:"amount" json:"amount"`
	Date      time.Time     `db:"date" json:"date"`
	Status    PaymentStatus `db:"status" json:"status"`
}
