package timeline

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/core/calendar"
	"github.com/penwyp/agelens/internal/core/constants"
)

// FormatRelative describes target relative to now in the coarsest unit that is
// at least one: "In 3.2 years", "14 months ago", "Tomorrow", "Today".
func FormatRelative(now, target time.Time) string {
	target = target.In(now.Location())
	if sameDay(now, target) {
		return "Today"
	}

	diffYears := calendar.YearsBetween(now, target)
	if math.Abs(diffYears) >= 1 {
		return relativePhrase(diffYears, "years")
	}

	diffMonths := calendar.MonthsBetween(now, target)
	if math.Abs(diffMonths) >= 1 {
		return relativePhrase(diffMonths, "months")
	}

	diffDays := civilDays(target) - civilDays(now)
	switch {
	case diffDays == 0 && target.After(now):
		return "Later today"
	case diffDays == 0:
		return "Earlier today"
	case diffDays == 1:
		return "Tomorrow"
	case diffDays == -1:
		return "Yesterday"
	case diffDays > 0:
		return fmt.Sprintf("In %d days", diffDays)
	default:
		return fmt.Sprintf("%d days ago", -diffDays)
	}
}

func relativePhrase(diff float64, unit string) string {
	abs := math.Abs(diff)
	var value string
	if abs >= 10 {
		value = strconv.FormatFloat(math.Round(abs), 'f', 0, 64)
	} else {
		value = strconv.FormatFloat(abs, 'f', 1, 64)
	}
	if diff >= 0 {
		return "In " + value + " " + unit
	}
	return value + " " + unit + " ago"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// civilDays counts calendar days since the epoch, ignoring the time of day
func civilDays(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// FormatEventTiming renders the countdown to (or time since) an event:
// "Happening now", "In 12 d 3h 4m 5s" or "Time elapsed 2h 0s".
func FormatEventTiming(instant, now int64) string {
	diff := instant - now
	abs := diff
	if abs < 0 {
		abs = -abs
	}
	if abs < constants.MillisPerSecond {
		return "Happening now"
	}

	days := abs / constants.MillisPerDay
	hours := (abs % constants.MillisPerDay) / constants.MillisPerHour
	minutes := (abs % constants.MillisPerHour) / constants.MillisPerMinute
	seconds := (abs % constants.MillisPerMinute) / constants.MillisPerSecond

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d d", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	descriptor := strings.Join(parts, " ")
	if diff > 0 {
		return "In " + descriptor
	}
	return "Time elapsed " + descriptor
}

// FocusFromPosition maps a position along the axis (0 = start, 1 = end,
// clamped) to an instant.
func FocusFromPosition(position float64, r Range) int64 {
	if math.IsNaN(position) {
		position = 0
	}
	position = math.Min(math.Max(position, 0), 1)
	span := r.Span()
	if span <= 0 {
		span = 1
	}
	return r.Clamp(r.Start + int64(math.Round(position*float64(span))))
}

// FocusFromSlider maps a slider value in [0, SliderResolution] to an instant.
func FocusFromSlider(value float64, r Range) int64 {
	return FocusFromPosition(value/constants.SliderResolution, r)
}

// SliderValue maps the focus instant to a slider value in [0, SliderResolution].
func SliderValue(focus int64, r Range) float64 {
	return Ratio(focus, r) * constants.SliderResolution
}

// Nudge moves the focus by fraction of the range, staying inside it.
func Nudge(focus int64, fraction float64, r Range) int64 {
	return FocusFromPosition(Ratio(focus, r)+fraction, r)
}
