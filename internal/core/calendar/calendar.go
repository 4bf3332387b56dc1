// Package calendar holds the calendar-aware arithmetic shared by the readings,
// the milestone projector and the timeline: month addition that clamps the day
// to the end of the target month, fractional month/year differences and the
// representable date range.
package calendar

import (
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/model"
)

// maxCalendarMonths bounds month arithmetic before the exact range check runs.
const maxCalendarMonths = 300000 * 12

var fixedUnitSeconds = map[string]int64{
	model.UnitWeeks:   7 * 86400,
	model.UnitDays:    86400,
	model.UnitHours:   3600,
	model.UnitMinutes: 60,
	model.UnitSeconds: 1,
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths adds n months to t. The day of month is clamped to the last day of
// the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	ty := y + floorDiv(total, 12)
	tm := time.Month(total-floorDiv(total, 12)*12 + 1)
	if last := DaysIn(ty, tm); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(ty, tm, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// AddYears adds n calendar years to t, clamping Feb 29 to Feb 28 when needed.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, n*12)
}

// MonthsBetween returns the fractional number of calendar months from a to b.
// The whole part counts month boundaries crossed; the fraction is the position of
// b inside the following (variable length) month.
func MonthsBetween(a, b time.Time) float64 {
	b = b.In(a.Location())
	if b.Before(a) {
		return -MonthsBetween(b, a.In(b.Location()))
	}

	whole := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	anchor := AddMonths(a, whole)
	if b.Before(anchor) {
		whole--
		anchor = AddMonths(a, whole)
	}
	next := AddMonths(a, whole+1)

	span := next.Sub(anchor)
	if span <= 0 {
		return float64(whole)
	}
	return float64(whole) + float64(b.Sub(anchor))/float64(span)
}

// YearsBetween returns the fractional number of calendar years from a to b.
func YearsBetween(a, b time.Time) float64 {
	return MonthsBetween(a, b) / 12
}

// Representable reports whether t falls inside the addressable date range.
func Representable(t time.Time) bool {
	ms := t.UnixMilli()
	return ms >= -constants.MaxRepresentableMillis && ms <= constants.MaxRepresentableMillis
}

// AddUnit adds amount of unit to t. Years and months are calendar-aware, the
// other units are fixed durations. The second return value is false when the
// result leaves the representable range (or the unit is unknown).
func AddUnit(t time.Time, amount int64, unit string) (time.Time, bool) {
	switch unit {
	case model.UnitYears:
		return addMonthsChecked(t, amount, 12)
	case model.UnitMonths:
		return addMonthsChecked(t, amount, 1)
	}

	secs, ok := fixedUnitSeconds[unit]
	if !ok {
		return time.Time{}, false
	}
	limit := 2 * constants.MaxRepresentableMillis / constants.MillisPerSecond / secs
	if amount > limit || amount < -limit {
		return time.Time{}, false
	}
	target := time.Unix(t.Unix()+amount*secs, int64(t.Nanosecond())).In(t.Location())
	return target, Representable(target)
}

// UnitSeconds returns the fixed length of a non-calendar unit in seconds.
func UnitSeconds(unit string) (int64, bool) {
	secs, ok := fixedUnitSeconds[unit]
	return secs, ok
}

func addMonthsChecked(t time.Time, amount int64, factor int64) (time.Time, bool) {
	if amount > maxCalendarMonths/factor || amount < -maxCalendarMonths/factor {
		return time.Time{}, false
	}
	target := AddMonths(t, int(amount*factor))
	return target, Representable(target)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
