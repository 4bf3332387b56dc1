package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = constants.MillisPerDay

func ev(id string, instant int64) Event {
	return Event{ID: id, Label: id, Instant: instant}
}

func ids(items []RenderItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestLayoutGrouping(t *testing.T) {
	r := Range{Start: 0, End: 1000}

	tests := []struct {
		name     string
		events   []Event
		width    float64
		expected []string
	}{
		{
			name:     "close events grouped",
			events:   []Event{ev("a", 0), ev("b", 10), ev("c", 500), ev("d", 1000)},
			width:    1000,
			expected: []string{"a::b", "c", "d"},
		},
		{
			name:     "unsorted input",
			events:   []Event{ev("d", 1000), ev("c", 500), ev("b", 10), ev("a", 0)},
			width:    1000,
			expected: []string{"a::b", "c", "d"},
		},
		{
			name:     "gap measured against the previous event",
			events:   []Event{ev("a", 0), ev("b", 40), ev("c", 80), ev("d", 120)},
			width:    1000,
			expected: []string{"a::b::c::d"},
		},
		{
			name:     "wide gap splits",
			events:   []Event{ev("a", 0), ev("b", 50)},
			width:    1000,
			expected: []string{"a", "b"},
		},
		{
			name:     "unknown width renders singles",
			events:   []Event{ev("a", 0), ev("b", 1)},
			width:    0,
			expected: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Layout(r, tt.events, tt.width)))
		})
	}
}

func TestLayoutGroupGeometry(t *testing.T) {
	items := Layout(Range{Start: 0, End: 1000}, []Event{ev("a", 0), ev("b", 10), ev("c", 500)}, 1000)
	require.Len(t, items, 2)

	g := items[0]
	assert.True(t, g.IsGroup())
	assert.Equal(t, 2, g.Count())
	assert.InDelta(t, 0.005, g.Ratio, 1e-12)
	assert.InDelta(t, 0.0, g.StartRatio, 1e-12)
	assert.InDelta(t, 0.01, g.EndRatio, 1e-12)
	assert.Equal(t, Range{Start: 0, End: 10}, g.ValueRange)

	s := items[1]
	assert.False(t, s.IsGroup())
	assert.InDelta(t, 0.5, s.Ratio, 1e-12)
}

func TestLayoutClampedAndInvalid(t *testing.T) {
	items := Layout(Range{Start: 0, End: 1000}, []Event{ev("late", 5000), ev("early", -5)}, 0)
	require.Len(t, items, 2)
	assert.Equal(t, "early", items[0].ID)
	assert.True(t, items[0].Clamped)
	assert.InDelta(t, 0.0, items[0].Ratio, 1e-12)
	assert.True(t, items[1].Clamped)
	assert.InDelta(t, 1.0, items[1].Ratio, 1e-12)

	grouped := Layout(Range{Start: 0, End: 1000}, []Event{ev("a", 5000), ev("b", 9000), ev("c", 100)}, 800)
	require.Len(t, grouped, 2)
	assert.False(t, grouped[0].IsGroup())
	assert.False(t, grouped[0].Clamped)
	assert.True(t, grouped[1].IsGroup())
	assert.Equal(t, "a::b", grouped[1].ID)
	assert.True(t, grouped[1].Clamped)
	assert.InDelta(t, 1.0, grouped[1].Ratio, 1e-12)

	inside := Layout(Range{Start: 0, End: 1000}, []Event{ev("x", 500), ev("y", 501)}, 800)
	require.Len(t, inside, 1)
	assert.True(t, inside[0].IsGroup())
	assert.False(t, inside[0].Clamped)

	assert.Nil(t, Layout(Range{Start: 10, End: 10}, []Event{ev("a", 10)}, 100))
	assert.Nil(t, Layout(Range{Start: 0, End: 10}, nil, 100))

	assert.True(t, errors.Is(Validate(Range{Start: 10, End: 5}), model.ErrInvalidRange))
	assert.NoError(t, Validate(Range{Start: 0, End: 5}))
}

func TestSubRange(t *testing.T) {
	parent := Range{Start: 0, End: 100 * day}

	tests := []struct {
		name     string
		values   Range
		expected Range
	}{
		{"coincident events widen by a day", Range{Start: 10 * day, End: 10 * day}, Range{Start: 9 * day, End: 11 * day}},
		{"thirty percent margin", Range{Start: 10 * day, End: 20 * day}, Range{Start: 7 * day, End: 23 * day}},
		{"clamped to parent start", Range{Start: 0, End: day}, Range{Start: 0, End: 2 * day}},
		{"clamped to parent end", Range{Start: 100 * day, End: 100 * day}, Range{Start: 99 * day, End: 100 * day}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := RenderItem{Kind: ItemGroup, ValueRange: tt.values}
			assert.Equal(t, tt.expected, SubRange(group, parent))
		})
	}
}

func TestSubTicks(t *testing.T) {
	ticks := SubTicks(Range{Start: 0, End: 2 * day}, time.UTC)
	require.Len(t, ticks, 3)
	assert.Equal(t, "1 Jan 1970", ticks[0].Label)
	assert.Equal(t, "2 Jan 1970", ticks[1].Label)
	assert.Equal(t, "3 Jan 1970", ticks[2].Label)

	assert.Len(t, SubTicks(Range{Start: 0, End: 1}, time.UTC), 2)
	assert.Nil(t, SubTicks(Range{Start: 1, End: 1}, time.UTC))
}

func TestZoomInto(t *testing.T) {
	parent := Range{Start: 0, End: 100 * day}
	items := Layout(parent, []Event{ev("a", 10*day), ev("b", 20*day)}, 100)
	require.Len(t, items, 1)

	zoom := ZoomInto(items[0], parent, time.UTC)
	assert.Equal(t, "a::b", zoom.GroupID)
	assert.Equal(t, Range{Start: 7 * day, End: 23 * day}, zoom.Range)
	require.Len(t, zoom.Events, 2)
	assert.InDelta(t, 3.0/16.0, zoom.Events[0].Ratio, 1e-12)
	assert.InDelta(t, 13.0/16.0, zoom.Events[1].Ratio, 1e-12)
	assert.Len(t, zoom.Ticks, 3)
}

func TestSubPanel(t *testing.T) {
	left, width := SubPanel(RenderItem{Ratio: 0.5, StartRatio: 0.45, EndRatio: 0.55}, 1000)
	assert.InDelta(t, 320.0, width, 1e-9)
	assert.InDelta(t, 340.0, left, 1e-9)

	left, width = SubPanel(RenderItem{Ratio: 0.01, StartRatio: 0, EndRatio: 0.02}, 1000)
	assert.InDelta(t, 320.0, width, 1e-9)
	assert.InDelta(t, 0.0, left, 1e-9)

	left, width = SubPanel(RenderItem{Ratio: 0.5, StartRatio: 0.1, EndRatio: 0.9}, 200)
	assert.InDelta(t, 200.0, width, 1e-9)
	assert.InDelta(t, 0.0, left, 1e-9)
}

func TestExpansion(t *testing.T) {
	items := []RenderItem{
		{Kind: ItemGroup, ID: "a::b"},
		{Kind: ItemSingle, ID: "c"},
		{Kind: ItemGroup, ID: "d::e"},
	}

	var exp Expansion
	exp.Toggle("a::b")
	assert.Equal(t, "a::b", exp.Active())
	exp.Toggle("a::b")
	assert.Equal(t, "", exp.Active())

	exp.Toggle("a::b")
	exp.Toggle("d::e")
	assert.Equal(t, "d::e", exp.Active(), "only one group is expanded at a time")

	assert.False(t, exp.Sync(items))
	assert.True(t, exp.Sync(items[:2]), "group vanished after relayout")
	assert.Equal(t, "", exp.Active())

	assert.Equal(t, "a::b", exp.Cycle(items))
	assert.Equal(t, "d::e", exp.Cycle(items))
	assert.Equal(t, "", exp.Cycle(items))

	exp.Toggle("a::b")
	exp.Close()
	assert.Equal(t, "", exp.Active())
}

func TestYearTicks(t *testing.T) {
	start := time.Date(1970, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2001, 3, 1, 0, 0, 0, 0, time.UTC)

	var labels []string
	for _, tick := range YearTicks(start, end, 10) {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"1970", "1980", "1990", "2000", "2001"}, labels)

	aligned := YearTicks(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), 10)
	assert.Len(t, aligned, 2, "boundaries coinciding with start and end are not repeated")

	assert.Nil(t, YearTicks(end, start, 10))
	assert.Nil(t, YearTicks(start, end, 0))
}

func TestBuildLifeTimeline(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	life := BuildLifeTimeline(birth, now)

	assert.Equal(t, time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), life.Range.Start)
	assert.Equal(t, time.Date(2049, 12, 31, 12, 0, 0, 0, time.UTC).UnixMilli(), life.Range.End)
	assert.Equal(t, now.UnixMilli(), life.Focus)

	require.Len(t, life.Events, 6)
	assert.Equal(t, EventBirth, life.Events[0].ID)
	assert.Equal(t, "Sat, Jan 1, 2000", life.Events[0].SubLabel)
	assert.Equal(t, time.Date(2027, 5, 19, 0, 0, 0, 0, time.UTC).UnixMilli(), life.Events[3].Instant)
	assert.Equal(t, "Tue, Sep 9, 2031 01:46", life.Events[4].SubLabel)
	assert.Equal(t, time.Date(2041, 9, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), life.Events[5].Instant)
	assert.Equal(t, MarkerTriangle, life.Events[2].Marker)

	var labels []string
	for _, tick := range life.Ticks {
		labels = append(labels, tick.Label)
	}
	assert.Equal(t, []string{"1980", "1990", "2000", "2010", "2020", "2030", "2040", "2049"}, labels)

	items := Layout(life.Range, life.Events, 400)
	assert.Equal(t, []string{"birth", "midpoint", "today::10kdays::1Bseconds", "500months"}, ids(items))
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	at := func(y int, m time.Month, d, h int) time.Time { return time.Date(y, m, d, h, 0, 0, 0, time.UTC) }

	tests := []struct {
		target   time.Time
		expected string
	}{
		{at(2024, 6, 15, 8), "Today"},
		{at(2027, 12, 15, 12), "In 3.5 years"},
		{at(2004, 6, 15, 12), "20 years ago"},
		{at(2024, 8, 15, 12), "In 2.0 months"},
		{at(2024, 6, 16, 9), "Tomorrow"},
		{at(2024, 6, 14, 20), "Yesterday"},
		{at(2024, 6, 25, 12), "In 10 days"},
		{at(2024, 6, 5, 12), "10 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRelative(now, tt.target))
		})
	}
}

func TestFormatEventTiming(t *testing.T) {
	const (
		sec    = constants.MillisPerSecond
		minute = constants.MillisPerMinute
		hour   = constants.MillisPerHour
	)
	now := int64(1_700_000_000_000)

	assert.Equal(t, "Happening now", FormatEventTiming(now+500, now))
	assert.Equal(t, "In 12 d 3h 4m 5s", FormatEventTiming(now+12*day+3*hour+4*minute+5*sec, now))
	assert.Equal(t, "Time elapsed 2h 0s", FormatEventTiming(now-2*hour, now))
	assert.Equal(t, "In 59s", FormatEventTiming(now+59*sec, now))
}

func TestFocusAndSlider(t *testing.T) {
	r := Range{Start: 0, End: 10_000}

	assert.InDelta(t, 2500.0, SliderValue(5000, r), 1e-9)
	assert.Equal(t, int64(5000), FocusFromSlider(2500, r))
	assert.Equal(t, int64(0), FocusFromPosition(-1, r))
	assert.Equal(t, int64(10_000), FocusFromPosition(2, r))
	assert.Equal(t, int64(6000), Nudge(5000, 0.1, r))
	assert.Equal(t, int64(10_000), Nudge(9990, 0.1, r))
}
