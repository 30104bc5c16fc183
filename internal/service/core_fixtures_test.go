package service

import (
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

func paid(id string, amount float64, date time.Time) models.FeePayment {
	return models.FeePayment{ID: id, StudentID: "stu-" + id, Amount: amount, Date: date, Status: models.PaymentStatusPaid}
}

func pending(id string, amount float64, date time.Time) models.FeePayment {
	return models.FeePayment{ID: id, StudentID: "stu-" + id, Amount: amount, Date: date, Status: models.PaymentStatusPending}
}

func expense(id string, amount float64, date time.Time) models.Expense {
	return models.Expense{ID: id, Category: "rent", Amount: amount, Date: date}
}

func paymentIDs(payments []models.FeePayment) []string {
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}
	return ids
}
