package service

import (
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

// InPeriod reports whether date falls inside the inclusive period.
func InPeriod(date time.Time, period models.Period) bool {
	return !date.Before(period.Start) && !date.After(period.End)
}

// effectiveDate substitutes today for a missing record date. A record without a date is counted
// as if it happened today.
func effectiveDate(date *time.Time, today time.Time) time.Time {
	if date == nil || date.IsZero() {
		return today
	}
	return *date
}

// FilterStudents keeps students admitted within the period.
func FilterStudents(students []models.Student, period models.Period, today time.Time) []models.Student {
	result := make([]models.Student, 0, len(students))
	for _, student := range students {
		if InPeriod(effectiveDate(student.AdmissionDate, today), period) {
			result = append(result, student)
		}
	}
	return result
}

// FilterStaff keeps staff members who joined within the period.
func FilterStaff(staff []models.StaffMember, period models.Period, today time.Time) []models.StaffMember {
	result := make([]models.StaffMember, 0, len(staff))
	for _, member := range staff {
		if InPeriod(effectiveDate(member.JoiningDate, today), period) {
			result = append(result, member)
		}
	}
	return result
}

// FilterBatches keeps batches starting within the period.
func FilterBatches(batches []models.Batch, period models.Period, today time.Time) []models.Batch {
	result := make([]models.Batch, 0, len(batches))
	for _, batch := range batches {
		if InPeriod(effectiveDate(batch.StartDate, today), period) {
			result = append(result, batch)
		}
	}
	return result
}

// FilterLeads keeps leads enquiring within the period.
func FilterLeads(leads []models.Lead, period models.Period, today time.Time) []models.Lead {
	result := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if InPeriod(effectiveDate(lead.EnquiryDate, today), period) {
			result = append(result, lead)
		}
	}
	return result
}

// FilterPaidPayments keeps paid fee payments dated within the period.
func FilterPaidPayments(payments []models.FeePayment, period models.Period) []models.FeePayment {
	result := make([]models.FeePayment, 0, len(payments))
	for _, payment := range payments {
		if payment.Status == models.PaymentStatusPaid && InPeriod(payment.Date, period) {
			result = append(result, payment)
		}
	}
	return result
}

// FilterExpenses keeps expenses dated within the period.
func FilterExpenses(expenses []models.Expense, period models.Period) []models.Expense {
	result := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if InPeriod(expense.Date, period) {
			result = append(result, expense)
		}
	}
	return result
}
