package units

import (
	"time"

	"github.com/penwyp/agelens/internal/core/calendar"
)

// DogYears maps calendar years lived onto the piecewise dog-age curve:
// the first 15 years are one dog year, the next 9 another, then 5 years each.
func DogYears(birth, now time.Time) float64 {
	y := calendar.YearsBetween(birth, now)
	switch {
	case y <= 15:
		return y / 15
	case y <= 24:
		return 1 + (y-15)/9
	default:
		return 2 + (y-24)/5
	}
}
