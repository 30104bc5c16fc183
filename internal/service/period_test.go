package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMakePeriodNormalisesBounds(t *testing.T) {
	start := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	end := time.Date(2024, 3, 9, 1, 0, 0, 0, time.UTC)

	period := MakePeriod(start, end)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2024, 3, 9, 23, 59, 59, 999000000, time.UTC), period.End)
	assert.False(t, period.Empty())
}

func TestMakePeriodSameDayCoversWholeDay(t *testing.T) {
	day := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	period := MakePeriod(day, day)

	assert.True(t, InPeriod(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), period))
	assert.True(t, InPeriod(time.Date(2024, 3, 5, 23, 59, 59, 999000000, time.UTC), period))
	assert.False(t, InPeriod(time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), period))
}

func TestMakePeriodInvertedIsEmpty(t *testing.T) {
	period := MakePeriod(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	assert.True(t, period.Empty())
	assert.False(t, InPeriod(time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC), period))
	assert.False(t, InPeriod(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), period))
}

func TestQuickRanges(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)
	endOfToday := time.Date(2024, 6, 10, 23, 59, 59, 999000000, time.UTC)

	last30 := Last30Days(now)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), last30.Start)
	assert.Equal(t, endOfToday, last30.End)

	month := ThisMonth(now)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), month.Start)
	assert.Equal(t, endOfToday, month.End)

	year := ThisYear(now)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), year.Start)
	assert.Equal(t, endOfToday, year.End)
}

func TestQuickRangesKeepLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	now := time.Date(2024, 1, 1, 2, 0, 0, 0, loc)

	month := ThisMonth(now)
	assert.Equal(t, loc, month.Start.Location())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, loc), month.Start)
}

func TestParseQuickRange(t *testing.T) {
	cases := map[string]QuickRange{
		"last30days": RangeLast30Days,
		"THISMONTH":  RangeThisMonth,
		"this_year":  RangeThisYear,
		"custom":     RangeCustom,
	}
	for raw, want := range cases {
		got, ok := ParseQuickRange(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
	_, ok := ParseQuickRange("fortnight")
	assert.False(t, ok)
}

func TestQuickPeriodCustomHasNoPreset(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	_, ok := QuickPeriod(RangeCustom, now)
	assert.False(t, ok)

	period, ok := QuickPeriod(RangeThisYear, now)
	assert.True(t, ok)
	assert.Equal(t, ThisYear(now), period)
}
