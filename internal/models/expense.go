package models

import "time"

// Expense is money spent by the institute.
type Expense struct {
	ID          string    `db:"id" json:"id"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	Amount      float64   `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
}
