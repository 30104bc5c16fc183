package service

import (
	"sort"
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

// MonthLabelLayout formats bucket labels such as "Mar 2024".
const MonthLabelLayout = "Jan 2006"

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(other monthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

// BuildMonthlySeries buckets payment and expense amounts by the calendar month of their dates,
// read in each date's own location. Callers pass the paid payments they want counted as revenue.
// Buckets are ordered by (year, month), oldest first.
func BuildMonthlySeries(paidPayments []models.FeePayment, expenses []models.Expense) []models.MonthlyBucket {
	type accumulator struct {
		bucket   models.MonthlyBucket
		revenue  moneyTotal
		expenses moneyTotal
	}
	buckets := make(map[monthKey]*accumulator)
	bucketFor := func(date time.Time) *accumulator {
		key := monthKey{year: date.Year(), month: date.Month()}
		acc, ok := buckets[key]
		if !ok {
			acc = &accumulator{bucket: models.MonthlyBucket{
				Label: time.Date(key.year, key.month, 1, 0, 0, 0, 0, date.Location()).Format(MonthLabelLayout),
				Year:  key.year,
				Month: key.month,
			}}
			buckets[key] = acc
		}
		return acc
	}

	for _, payment := range paidPayments {
		bucketFor(payment.Date).revenue.add(payment.Amount)
	}
	for _, expense := range expenses {
		bucketFor(expense.Date).expenses.add(expense.Amount)
	}

	keys := make([]monthKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].before(keys[j])
	})

	series := make([]models.MonthlyBucket, 0, len(keys))
	for _, key := range keys {
		acc := buckets[key]
		acc.bucket.Revenue = acc.revenue.value()
		acc.bucket.Expenses = acc.expenses.value()
		series = append(series, acc.bucket)
	}
	return series
}
