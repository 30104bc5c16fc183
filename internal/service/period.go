package service

import (
	"strings"
	"time"

	"github.com/noah-isme/institute-dashboard-api/internal/models"
)

// QuickRange names one of the preset periods offered by the dashboard.
type QuickRange string

const (
	RangeLast30Days QuickRange = "last30days"
	RangeThisMonth  QuickRange = "thisMonth"
	RangeThisYear   QuickRange = "thisYear"
	RangeCustom     QuickRange = "custom"
)

// StartOfDay returns 00:00:00.000 of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// MakePeriod widens start and end to full inclusive days. start after end is kept as is and
// yields a period nothing falls into.
func MakePeriod(start, end time.Time) models.Period {
	return models.Period{Start: StartOfDay(start), End: EndOfDay(end)}
}

// Last30Days covers today minus 30 days through today.
func Last30Days(now time.Time) models.Period {
	return MakePeriod(now.AddDate(0, 0, -30), now)
}

// ThisMonth covers the first of the current month through today.
func ThisMonth(now time.Time) models.Period {
	y, m, _ := now.Date()
	return MakePeriod(time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), now)
}

// ThisYear covers January 1st of the current year through today.
func ThisYear(now time.Time) models.Period {
	return MakePeriod(time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), now)
}

// ParseQuickRange resolves a range name case-insensitively. ok is false for unknown names.
func ParseQuickRange(raw string) (QuickRange, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "last30days", "last_30_days", "30d":
		return RangeLast30Days, true
	case "thismonth", "this_month", "month":
		return RangeThisMonth, true
	case "thisyear", "this_year", "year":
		return RangeThisYear, true
	case "custom":
		return RangeCustom, true
	}
	return "", false
}

// QuickPeriod returns the preset period for r evaluated at now. ok is false for RangeCustom and
// unknown ranges, which have no preset bounds.
func QuickPeriod(r QuickRange, now time.Time) (models.Period, bool) {
	switch r {
	case RangeLast30Days:
		return Last30Days(now), true
	case RangeThisMonth:
		return ThisMonth(now), true
	case RangeThisYear:
		return ThisYear(now), true
	}
	return models.Period{}, false
}
