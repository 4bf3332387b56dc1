package layout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/core/timeline"
	"github.com/penwyp/agelens/internal/util"
)

const (
	markerDot      = '●'
	markerTriangle = '▲'
	markerGroup    = '◆'
	markerFocus    = '╂'
	axisTick       = '┼'
)

// TimelineView is a life timeline laid out for one axis width
type TimelineView struct {
	Timeline timeline.LifeTimeline
	Items    []timeline.RenderItem
	// Zoom is set while a group is expanded
	Zoom  *timeline.Zoom
	Group timeline.RenderItem
	Cols  int
	Now   time.Time
}

// NewTimelineView groups the events of lt for an axis cols cells wide and
// zooms into activeGroup when it is one of the resulting groups.
func NewTimelineView(lt timeline.LifeTimeline, cols int, activeGroup string, now time.Time) TimelineView {
	cols = max(cols, minWidth)
	view := TimelineView{
		Timeline: lt,
		Items:    timeline.Layout(lt.Range, lt.Events, AxisWidthPx(cols)),
		Cols:     cols,
		Now:      now,
	}
	if group, ok := timeline.FindGroup(view.Items, activeGroup); ok {
		zoom := timeline.ZoomInto(group, lt.Range, now.Location())
		view.Zoom = &zoom
		view.Group = group
	}
	return view
}

func column(ratio float64, cols int) int {
	if cols <= 1 {
		return 0
	}
	return int(math.Round(ratio * float64(cols-1)))
}

func itemMarker(item timeline.RenderItem) rune {
	if item.IsGroup() {
		return markerGroup
	}
	if item.Events[0].Marker == timeline.MarkerTriangle {
		return markerTriangle
	}
	return markerDot
}

func itemLabel(item timeline.RenderItem) string {
	if item.IsGroup() {
		return fmt.Sprintf("%d events", item.Count())
	}
	return item.Events[0].Label
}

// RenderTimelineText draws the view as plain lines: labels above the axis,
// the axis with its markers, year ticks, labels below, a legend and the
// zoom panel of the expanded group.
func RenderTimelineText(view TimelineView) []string {
	cols := view.Cols
	const (
		rowAbove = iota
		rowAxis
		rowTicks
		rowBelow
		rowCount
	)
	c := newCanvas(rowCount, cols)

	c.fill(rowAxis, '─')
	c.set(rowAxis, 0, '├')
	c.set(rowAxis, cols-1, '┤')
	for _, tick := range view.Timeline.Ticks {
		col := column(timeline.Ratio(tick.Instant, view.Timeline.Range), cols)
		c.set(rowAxis, col, axisTick)
		c.centered(rowTicks, col, tick.Label)
	}
	c.set(rowAxis, column(timeline.Ratio(view.Timeline.Focus, view.Timeline.Range), cols), markerFocus)

	for _, item := range view.Items {
		col := column(item.Ratio, cols)
		c.set(rowAxis, col, itemMarker(item))

		row := rowAbove
		if !item.IsGroup() && item.Events[0].Placement == timeline.PlacementBelow {
			row = rowBelow
		}
		c.centered(row, col, itemLabel(item))
	}

	lines := []string{c.line(rowAbove), c.raw(rowAxis), c.line(rowTicks), c.line(rowBelow), ""}
	lines = append(lines, timelineLegend(view)...)
	if view.Zoom != nil {
		lines = append(lines, "")
		lines = append(lines, renderZoom(view)...)
	}
	return lines
}

func timelineLegend(view TimelineView) []string {
	lines := make([]string, 0, len(view.Items))
	for _, item := range view.Items {
		if item.IsGroup() {
			names := make([]string, 0, item.Count())
			for _, e := range item.Events {
				names = append(names, e.Label)
			}
			hint := "g to expand"
			if view.Zoom != nil && view.Group.ID == item.ID {
				hint = "expanded, Esc to close"
			}
			line := fmt.Sprintf("%c %s: %s  %s",
				markerGroup, itemLabel(item), strings.Join(names, ", "), util.FormatMuted("("+hint+")"))
			if item.Clamped {
				line += util.FormatMuted(" (off axis)")
			}
			lines = append(lines, line)
			continue
		}

		e := item.Events[0]
		line := fmt.Sprintf("%c %s  %s  %s", itemMarker(item), util.PadRight(e.Label, 22), util.PadRight(e.SubLabel, 24),
			timeline.FormatRelative(view.Now, time.UnixMilli(e.Instant)))
		if item.Clamped {
			line += util.FormatMuted(" (off axis)")
		}
		lines = append(lines, line)
	}
	return lines
}

func renderZoom(view TimelineView) []string {
	zoom := view.Zoom
	left, width := timeline.SubPanel(view.Group, AxisWidthPx(view.Cols))
	offset := int(math.Round(left / AxisWidthPx(1)))
	cells := max(int(math.Round(width/AxisWidthPx(1))), 3)
	offset = max(0, min(view.Cols-cells, offset))
	indent := strings.Repeat(" ", offset)

	c := newCanvas(3, cells)
	c.fill(1, '─')
	c.set(1, 0, '├')
	c.set(1, cells-1, '┤')
	for _, tick := range zoom.Ticks {
		c.centered(2, column(timeline.Ratio(tick.Instant, zoom.Range), cells), tick.Label)
	}
	for i, ze := range zoom.Events {
		col := column(ze.Ratio, cells)
		marker := markerDot
		if ze.Event.Marker == timeline.MarkerTriangle {
			marker = markerTriangle
		}
		c.set(1, col, marker)
		// Alternate rows so neighbours do not hide each other
		row := 0
		if i%2 == 1 {
			row = 2
		}
		c.centered(row, col, ze.Event.Label)
	}

	lines := []string{
		util.FormatDataTitle(fmt.Sprintf("Zoom: %d events", len(zoom.Events))),
		indent + c.line(0),
		indent + c.raw(1),
		indent + c.line(2),
	}
	nowMillis := view.Now.UnixMilli()
	for _, ze := range zoom.Events {
		lines = append(lines, fmt.Sprintf("  %s  %s  %s", util.PadRight(ze.Event.Label, 22),
			util.PadRight(ze.Event.SubLabel, 24), timeline.FormatEventTiming(ze.Event.Instant, nowMillis)))
	}
	return lines
}
