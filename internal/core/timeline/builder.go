package timeline

import (
	"time"

	"github.com/penwyp/agelens/internal/core/calendar"
	"github.com/penwyp/agelens/internal/core/constants"
)

const (
	weekdayLayout         = "Mon, Jan 2, 2006"
	weekdayWithTimeLayout = "Mon, Jan 2, 2006 15:04"
)

// Well-known event IDs of the life timeline
const (
	EventBirth             = "birth"
	EventMidpoint          = "midpoint"
	EventToday             = "today"
	EventTenThousandDays   = "10kdays"
	EventBillionSeconds    = "1Bseconds"
	EventFiveHundredMonths = "500months"
)

// LifeTimeline is the data behind the personal timeline view
type LifeTimeline struct {
	Range  Range   `json:"range"`
	Events []Event `json:"events"`
	Ticks  []Tick  `json:"ticks"`
	Focus  int64   `json:"focus"`
}

// BuildLifeTimeline lays out a life from birth to well past now: the window
// starts 20 years before birth and ends 40 years after the midpoint between
// birth and now. Both instants should carry the display location.
func BuildLifeTimeline(birth, now time.Time) LifeTimeline {
	midpoint := time.UnixMilli(birth.UnixMilli() + (now.UnixMilli()-birth.UnixMilli())/2).In(birth.Location())
	start := calendar.AddYears(birth, -constants.LookbackYears)
	end := calendar.AddYears(midpoint, constants.FutureWindowYears)
	if !end.After(start) {
		end = calendar.AddYears(start, constants.FutureWindowYears*2)
	}

	tenThousandDays := birth.AddDate(0, 0, 10_000)
	fiveHundredMonths := calendar.AddMonths(birth, 500)
	billionSeconds := birth.Add(1_000_000_000 * time.Second)

	events := []Event{
		{ID: EventBirth, Label: "Birth", SubLabel: birth.Format(weekdayLayout), Instant: birth.UnixMilli(),
			Placement: PlacementAbove, Marker: MarkerDot, Accent: AccentHighlight},
		{ID: EventMidpoint, Label: "Midpoint", SubLabel: midpoint.Format(weekdayLayout), Instant: midpoint.UnixMilli(),
			Placement: PlacementAbove, Marker: MarkerDot, Accent: AccentMuted},
		{ID: EventToday, Label: "Today", SubLabel: now.Format(weekdayLayout), Instant: now.UnixMilli(),
			Placement: PlacementBelow, Marker: MarkerTriangle, Accent: AccentHighlight},
		{ID: EventTenThousandDays, Label: "10,000 days old", SubLabel: tenThousandDays.Format(weekdayLayout), Instant: tenThousandDays.UnixMilli(),
			Placement: PlacementBelow, Marker: MarkerDot, Accent: AccentDefault},
		{ID: EventBillionSeconds, Label: "1 billion seconds old", SubLabel: billionSeconds.Format(weekdayWithTimeLayout), Instant: billionSeconds.UnixMilli(),
			Placement: PlacementAbove, Marker: MarkerDot, Accent: AccentDefault},
		{ID: EventFiveHundredMonths, Label: "500 months old", SubLabel: fiveHundredMonths.Format(weekdayWithTimeLayout), Instant: fiveHundredMonths.UnixMilli(),
			Placement: PlacementAbove, Marker: MarkerDot, Accent: AccentDefault},
	}

	r := Range{Start: start.UnixMilli(), End: end.UnixMilli()}
	return LifeTimeline{
		Range:  r,
		Events: events,
		Ticks:  YearTicks(start, end, constants.TickStepYears),
		Focus:  r.Clamp(now.UnixMilli()),
	}
}
