package timeline

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
)

// subTickLayout labels the zoomed axis, e.g. "17 May 1990"
const subTickLayout = "2 Jan 2006"

// SubRange computes the zoomed range around a group: its value range widened
// by a margin of 30% of its span (at least one day) on both sides, clamped to
// the parent range and kept at least a day wide.
func SubRange(group RenderItem, parent Range) Range {
	start, end := group.ValueRange.Start, group.ValueRange.End
	rawSpan := end - start
	if rawSpan < 0 {
		rawSpan = 0
	}
	margin := int64(math.Max(float64(rawSpan)*constants.SubTimelineMarginRatio, float64(constants.MinSubTimelineSpan)))

	next := Range{
		Start: parent.Clamp(start - margin),
		End:   parent.Clamp(end + margin),
	}

	if next.Span() < 1 {
		middle := next.Start + next.Span()/2
		next.Start = max(parent.Start, middle-constants.MinSubTimelineSpan/2)
		next.End = min(parent.End, middle+constants.MinSubTimelineSpan/2)
	}
	if next.End <= next.Start {
		next.End = min(parent.End, next.Start+constants.MinSubTimelineSpan)
	}
	return next
}

// SubTicks marks the start, middle and end of a zoomed range, skipping duplicates.
func SubTicks(r Range, loc *time.Location) []Tick {
	if !r.Valid() {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	values := []int64{r.Start, r.Start + r.Span()/2, r.End}
	seen := make(map[int64]bool, len(values))
	ticks := make([]Tick, 0, len(values))
	for i, v := range values {
		v = r.Clamp(v)
		if seen[v] {
			continue
		}
		seen[v] = true
		ticks = append(ticks, Tick{
			ID:      fmt.Sprintf("subtick-%d-%d", v, i),
			Instant: v,
			Label:   time.UnixMilli(v).In(loc).Format(subTickLayout),
		})
	}
	return ticks
}

// ZoomedEvent is a group member re-projected onto the zoomed range
type ZoomedEvent struct {
	Event   Event
	Ratio   float64
	Clamped bool
}

// Zoom is the expanded view of one group
type Zoom struct {
	GroupID string
	Range   Range
	Ticks   []Tick
	Events  []ZoomedEvent
}

// ZoomInto builds the expanded view of group within parent.
func ZoomInto(group RenderItem, parent Range, loc *time.Location) Zoom {
	sub := SubRange(group, parent)
	zoom := Zoom{
		GroupID: group.ID,
		Range:   sub,
		Ticks:   SubTicks(sub, loc),
		Events:  make([]ZoomedEvent, 0, len(group.Events)),
	}
	for _, e := range group.Events {
		zoom.Events = append(zoom.Events, ZoomedEvent{
			Event:   e,
			Ratio:   Ratio(e.Instant, sub),
			Clamped: !sub.Contains(e.Instant),
		})
	}
	return zoom
}

// SubPanel places the expanded panel under the main axis: it is as wide as the
// group plus a buffer (at least the minimum panel width, at most the axis) and
// centred on the group without leaving the axis.
func SubPanel(group RenderItem, axisWidthPx float64) (left, width float64) {
	if axisWidthPx <= 0 {
		return 0, 0
	}
	base := math.Max(axisWidthPx*(group.EndRatio-group.StartRatio), 0)
	desired := math.Max(base+constants.SubTimelineBufferPx*2, constants.SubTimelineMinWidthPx)
	width = math.Min(axisWidthPx, desired)
	center := axisWidthPx * group.Ratio
	left = math.Min(math.Max(center-width/2, 0), math.Max(axisWidthPx-width, 0))
	return left, width
}

// Expansion tracks which group, if any, is expanded. At most one is.
type Expansion struct {
	mu     sync.Mutex
	active string
}

// Active returns the expanded group ID, empty when none.
func (e *Expansion) Active() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Toggle expands id, or collapses it when it is already expanded.
func (e *Expansion) Toggle(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == id {
		e.active = ""
		return
	}
	e.active = id
}

// Close collapses any expanded group.
func (e *Expansion) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = ""
}

// Sync collapses the expansion when its group is no longer among items, e.g.
// after the axis was resized. It reports whether the expansion was closed.
func (e *Expansion) Sync(items []RenderItem) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == "" {
		return false
	}
	if _, ok := FindGroup(items, e.active); ok {
		return false
	}
	e.active = ""
	return true
}

// Cycle expands the next group after the active one, wrapping to none after
// the last group.
func (e *Expansion) Cycle(items []RenderItem) string {
	groups := Groups(items)

	e.mu.Lock()
	defer e.mu.Unlock()
	if len(groups) == 0 {
		e.active = ""
		return ""
	}
	next := 0
	for i, g := range groups {
		if g.ID == e.active {
			next = i + 1
			break
		}
	}
	if next >= len(groups) {
		e.active = ""
		return ""
	}
	e.active = groups[next].ID
	return e.active
}
