package timeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/model"
)

// groupIDSeparator joins member IDs into a group ID
const groupIDSeparator = "::"

// Validate reports model.ErrInvalidRange for an empty range.
func Validate(r Range) error {
	if !r.Valid() {
		return fmt.Errorf("%w: end %d is not after start %d", model.ErrInvalidRange, r.End, r.Start)
	}
	return nil
}

// Ratio projects instant onto [0,1], clamping it to the range first.
func Ratio(instant int64, r Range) float64 {
	span := r.Span()
	if span <= 0 {
		return 0
	}
	return float64(r.Clamp(instant)-r.Start) / float64(span)
}

type positioned struct {
	event Event
	ratio float64
}

// Layout sorts events by instant and turns them into render items. Events
// closer than the grouping gap (in pixels at axisWidthPx) are merged into a
// group; with no known axis width every event is rendered single. An invalid
// range yields no items.
func Layout(r Range, events []Event, axisWidthPx float64) []RenderItem {
	if !r.Valid() || len(events) == 0 {
		return nil
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Instant < sorted[j].Instant
	})

	items := make([]RenderItem, 0, len(sorted))
	if axisWidthPx <= 0 {
		for _, e := range sorted {
			items = append(items, single(positioned{event: e, ratio: Ratio(e.Instant, r)}, r))
		}
		return items
	}

	var buffer []positioned
	flush := func() {
		switch len(buffer) {
		case 0:
			return
		case 1:
			items = append(items, single(buffer[0], r))
		default:
			items = append(items, group(buffer, r))
		}
		buffer = nil
	}

	for _, e := range sorted {
		p := positioned{event: e, ratio: Ratio(e.Instant, r)}
		if len(buffer) > 0 {
			prev := buffer[len(buffer)-1]
			if (p.ratio-prev.ratio)*axisWidthPx >= constants.GroupingGapPx {
				flush()
			}
		}
		buffer = append(buffer, p)
	}
	flush()

	return items
}

func single(p positioned, r Range) RenderItem {
	clamped := r.Clamp(p.event.Instant)
	return RenderItem{
		Kind:       ItemSingle,
		ID:         p.event.ID,
		Events:     []Event{p.event},
		Ratio:      p.ratio,
		StartRatio: p.ratio,
		EndRatio:   p.ratio,
		ValueRange: Range{Start: clamped, End: clamped},
		Clamped:    !r.Contains(p.event.Instant),
	}
}

func group(buffer []positioned, r Range) RenderItem {
	ids := make([]string, len(buffer))
	events := make([]Event, len(buffer))
	sum := 0.0
	clamped := false
	minInstant, maxInstant := r.Clamp(buffer[0].event.Instant), r.Clamp(buffer[0].event.Instant)

	for i, p := range buffer {
		ids[i] = p.event.ID
		events[i] = p.event
		sum += p.ratio
		clamped = clamped || !r.Contains(p.event.Instant)

		v := r.Clamp(p.event.Instant)
		if v < minInstant {
			minInstant = v
		}
		if v > maxInstant {
			maxInstant = v
		}
	}

	return RenderItem{
		Kind:       ItemGroup,
		ID:         strings.Join(ids, groupIDSeparator),
		Events:     events,
		Ratio:      sum / float64(len(buffer)),
		StartRatio: buffer[0].ratio,
		EndRatio:   buffer[len(buffer)-1].ratio,
		ValueRange: Range{Start: minInstant, End: maxInstant},
		Clamped:    clamped,
	}
}

// FindGroup returns the group with the given ID among items.
func FindGroup(items []RenderItem, id string) (RenderItem, bool) {
	if id == "" {
		return RenderItem{}, false
	}
	for _, item := range items {
		if item.IsGroup() && item.ID == id {
			return item, true
		}
	}
	return RenderItem{}, false
}

// Groups returns the group items in axis order.
func Groups(items []RenderItem) []RenderItem {
	var groups []RenderItem
	for _, item := range items {
		if item.IsGroup() {
			groups = append(groups, item)
		}
	}
	return groups
}
