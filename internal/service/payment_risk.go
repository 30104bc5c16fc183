package service

import (
	"sort"
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

// DefaultRiskHorizonDays is how far ahead a pending payment counts as upcoming.
const DefaultRiskHorizonDays = 30

// ClassifyPending splits pending payments into overdue (due before today) and upcoming (due from
// today through the horizon day, inclusive). Both lists are ordered by date, earliest first, with
// the payment ID breaking ties. Payments due after the horizon day appear in neither list.
func ClassifyPending(payments []models.FeePayment, today time.Time) models.PaymentRiskLists {
	return ClassifyPendingWithin(payments, today, DefaultRiskHorizonDays)
}

// ClassifyPendingWithin is ClassifyPending with a configurable horizon in days.
func ClassifyPendingWithin(payments []models.FeePayment, today time.Time, horizonDays int) models.PaymentRiskLists {
	if horizonDays < 0 {
		horizonDays = 0
	}
	startOfToday := StartOfDay(today)
	horizonEnd := EndOfDay(startOfToday.AddDate(0, 0, horizonDays))

	lists := models.PaymentRiskLists{
		Overdue:  []models.FeePayment{},
		Upcoming: []models.FeePayment{},
	}
	for _, payment := range payments {
		if payment.Status != models.PaymentStatusPending {
			continue
		}
		switch {
		case payment.Date.Before(startOfToday):
			lists.Overdue = append(lists.Overdue, payment)
		case !payment.Date.After(horizonEnd):
			lists.Upcoming = append(lists.Upcoming, payment)
		}
	}
	sortByDueDate(lists.Overdue)
	sortByDueDate(lists.Upcoming)
	return lists
}

// DaysBetween counts whole calendar days from a to b, negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func sortByDueDate(payments []models.FeePayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].Date.Equal(payments[j].Date) {
			return payments[i].Date.Before(payments[j].Date)
		}
		return payments[i].ID < payments[j].ID
	})
}
