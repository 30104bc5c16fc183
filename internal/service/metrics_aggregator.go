package service

import (
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

// Aggregate computes the period metrics over the dataset. Empty collections contribute zero.
// Amounts are summed as given; negative or NaN values are the data source's responsibility.
func Aggregate(period models.Period, today time.Time, data models.DashboardDataset) models.MetricsSnapshot {
	admitted := FilterStudents(data.Students, period, today)

	return models.MetricsSnapshot{
		NewAdmissions: len(admitted),
		NewHires:      len(FilterStaff(data.Staff, period, today)),
		ActiveCourses: countDistinctCourses(admitted),
		NewBatches:    len(FilterBatches(data.Batches, period, today)),
		NewLeads:      len(FilterLeads(data.Leads, period, today)),
		Revenue:       sumPayments(FilterPaidPayments(data.FeePayments, period)),
		Expenses:      sumExpenses(FilterExpenses(data.Expenses, period)),
	}
}

func countDistinctCourses(students []models.Student) int {
	courses := make(map[string]struct{})
	for _, student := range students {
		for _, courseID := range student.CourseIDs {
			courses[courseID] = struct{}{}
		}
	}
	return len(courses)
}

func sumPayments(payments []models.FeePayment) float64 {
	var total moneyTotal
	for _, payment := range payments {
		total.add(payment.Amount)
	}
	return total.value()
}

func sumExpenses(expenses []models.Expense) float64 {
	var total moneyTotal
	for _, expense := range expenses {
		total.add(expense.Amount)
	}
	return total.value()
}
