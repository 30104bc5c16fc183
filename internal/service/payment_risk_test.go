package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

func TestClassifyPendingScenario(t *testing.T) {
	today := time.Date(2024, 6, 10, 16, 45, 0, 0, time.UTC)
	payments := []models.FeePayment{
		pending("far", 100, day(2024, 8, 1)),
		pending("soon", 100, day(2024, 6, 25)),
		pending("today", 100, day(2024, 6, 10)),
		pending("past", 100, day(2024, 6, 1)),
		paid("settled", 100, day(2024, 6, 1)),
	}

	lists := ClassifyPending(payments, today)
	assert.Equal(t, []string{"past"}, paymentIDs(lists.Overdue))
	assert.Equal(t, []string{"today", "soon"}, paymentIDs(lists.Upcoming))
}

func TestClassifyPendingHorizonBoundary(t *testing.T) {
	today := day(2024, 6, 10)
	payments := []models.FeePayment{
		pending("day31", 1, today.AddDate(0, 0, 31)),
		pending("day30", 1, today.AddDate(0, 0, 30)),
		pending("yesterday", 1, today.Add(-time.Millisecond)),
	}

	lists := ClassifyPending(payments, today)
	assert.Equal(t, []string{"yesterday"}, paymentIDs(lists.Overdue))
	assert.Equal(t, []string{"day30"}, paymentIDs(lists.Upcoming))
}

func TestClassifyPendingOrdersByDateThenID(t *testing.T) {
	today := day(2024, 6, 10)
	payments := []models.FeePayment{
		pending("c", 1, day(2024, 5, 2)),
		pending("b", 1, day(2024, 5, 1)),
		pending("a", 1, day(2024, 5, 2)),
		pending("z", 1, day(2024, 6, 20)),
		pending("y", 1, day(2024, 6, 12)),
	}

	lists := ClassifyPending(payments, today)
	assert.Equal(t, []string{"b", "a", "c"}, paymentIDs(lists.Overdue))
	assert.Equal(t, []string{"y", "z"}, paymentIDs(lists.Upcoming))
}

func TestClassifyPendingNeverDuplicates(t *testing.T) {
	today := day(2024, 6, 10)
	var payments []models.FeePayment
	for offset := -40; offset <= 40; offset++ {
		payments = append(payments, pending(today.AddDate(0, 0, offset).Format("2006-01-02"), 1, today.AddDate(0, 0, offset)))
	}

	lists := ClassifyPending(payments, today)
	seen := map[string]bool{}
	for _, p := range append(lists.Overdue, lists.Upcoming...) {
		assert.False(t, seen[p.ID], p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, lists.Overdue, 40)
	assert.Len(t, lists.Upcoming, 31)
}

func TestClassifyPendingEmpty(t *testing.T) {
	lists := ClassifyPending(nil, day(2024, 6, 10))
	assert.NotNil(t, lists.Overdue)
	assert.NotNil(t, lists.Upcoming)
	assert.Empty(t, lists.Overdue)
	assert.Empty(t, lists.Upcoming)
}

func TestClassifyPendingWithinCustomHorizon(t *testing.T) {
	today := day(2024, 6, 10)
	payments := []models.FeePayment{pending("p", 1, day(2024, 6, 17)), pending("q", 1, day(2024, 6, 18))}

	lists := ClassifyPendingWithin(payments, today, 7)
	assert.Equal(t, []string{"p"}, paymentIDs(lists.Upcoming))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, DaysBetween(day(2024, 6, 1), time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, -9, DaysBetween(day(2024, 6, 10), day(2024, 6, 1)))
	assert.Equal(t, 0, DaysBetween(day(2024, 6, 10), day(2024, 6, 10)))
}
