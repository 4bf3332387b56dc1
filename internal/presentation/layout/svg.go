package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/agelens/internal/core/timeline"
)

// SVGOptions controls the exported timeline image
type SVGOptions struct {
	Width        int
	Height       int
	Margin       int
	FontFamily   string
	FontSize     int
	Background   string
	Line         string
	Text         string
	Highlight    string
	Muted        string
	CalloutShort int
	CalloutLong  int
}

// DefaultSVGOptions returns a light theme 1200x420 canvas
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:        1200,
		Height:       420,
		Margin:       60,
		FontFamily:   "Arial, sans-serif",
		FontSize:     13,
		Background:   "#ffffff",
		Line:         "#334155",
		Text:         "#0f172a",
		Highlight:    "#e11d48",
		Muted:        "#94a3b8",
		CalloutShort: 40,
		CalloutLong:  80,
	}
}

// WriteSVG renders view as a standalone SVG document. The axis spans the
// canvas between the margins; events alternate between a short and a long
// callout so adjacent labels do not overlap, and an expanded group is drawn
// as a zoomed axis in the lower third.
func WriteSVG(w io.Writer, view TimelineView, opts SVGOptions) error {
	if err := timeline.Validate(view.Timeline.Range); err != nil {
		return err
	}
	if opts.Width <= 2*opts.Margin || opts.Height <= 0 {
		opts = DefaultSVGOptions()
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.label { font-family: %s; font-size: %dpx; fill: %s; }
.sub { font-family: %s; font-size: %dpx; fill: %s; }
.tick { font-family: %s; font-size: %dpx; fill: %s; }
</style>
</defs>
`, opts.Width, opts.Height, opts.Background,
		opts.FontFamily, opts.FontSize, opts.Text,
		opts.FontFamily, opts.FontSize-2, opts.Muted,
		opts.FontFamily, opts.FontSize-2, opts.Line))

	axisY := opts.Height / 3
	if view.Zoom == nil {
		axisY = opts.Height / 2
	}
	axisLeft := opts.Margin
	axisWidth := opts.Width - 2*opts.Margin
	x := func(ratio float64) int {
		return axisLeft + int(ratio*float64(axisWidth))
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n",
		axisLeft, axisY, axisLeft+axisWidth, axisY, opts.Line))

	for _, tick := range view.Timeline.Ticks {
		tx := x(timeline.Ratio(tick.Instant, view.Timeline.Range))
		svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
			tx, axisY-4, tx, axisY+4, opts.Line))
		svg.WriteString(fmt.Sprintf(`<text class="tick" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
			tx, axisY+18, escapeXML(tick.Label)))
	}

	fx := x(timeline.Ratio(view.Timeline.Focus, view.Timeline.Range))
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1" stroke-dasharray="4 3"/>`+"\n",
		fx, axisY-opts.CalloutLong, fx, axisY+opts.CalloutLong, opts.Highlight))

	for i, item := range view.Items {
		ix := x(item.Ratio)
		callout := opts.CalloutShort
		if i%2 == 1 {
			callout = opts.CalloutLong
		}

		if item.IsGroup() {
			drawGroup(&svg, item, ix, axisY, callout, view.Zoom != nil && view.Group.ID == item.ID, opts)
			continue
		}

		e := item.Events[0]
		above := e.Placement != timeline.PlacementBelow
		drawEvent(&svg, e, ix, axisY, callout, above, opts)
	}

	if view.Zoom != nil {
		drawZoom(&svg, view, axisY, x, opts)
	}

	svg.WriteString("</svg>\n")
	_, err := io.WriteString(w, svg.String())
	return err
}

func accentColor(accent timeline.Accent, opts SVGOptions) string {
	switch accent {
	case timeline.AccentHighlight:
		return opts.Highlight
	case timeline.AccentMuted:
		return opts.Muted
	default:
		return opts.Line
	}
}

// drawEvent draws a marker on the axis with a callout line and its labels
func drawEvent(svg *strings.Builder, e timeline.Event, x, y, callout int, above bool, opts SVGOptions) {
	color := accentColor(e.Accent, opts)
	endY := y + callout
	labelY, subY := endY+opts.FontSize+2, endY+2*opts.FontSize+4
	if above {
		endY = y - callout
		labelY, subY = endY-opts.FontSize-4, endY-4
	}

	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
		x, y, x, endY, opts.Line))
	drawMarker(svg, e.Marker, x, y, color)
	svg.WriteString(fmt.Sprintf(`<text class="label" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
		x, labelY, escapeXML(e.Label)))
	if e.SubLabel != "" {
		svg.WriteString(fmt.Sprintf(`<text class="sub" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
			x, subY, escapeXML(e.SubLabel)))
	}
}

func drawMarker(svg *strings.Builder, marker timeline.Marker, x, y int, color string) {
	if marker == timeline.MarkerTriangle {
		svg.WriteString(fmt.Sprintf(`<polygon points="%d,%d %d,%d %d,%d" fill="%s"/>`+"\n",
			x, y-6, x-6, y+5, x+6, y+5, color))
		return
	}
	svg.WriteString(fmt.Sprintf(`<circle cx="%d" cy="%d" r="5" fill="%s"/>`+"\n", x, y, color))
}

func drawGroup(svg *strings.Builder, item timeline.RenderItem, x, y, callout int, expanded bool, opts SVGOptions) {
	fill := opts.Background
	if expanded {
		fill = opts.Muted
	}
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
		x, y, x, y-callout, opts.Line))
	svg.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="20" height="16" rx="4" fill="%s" stroke="%s"/>`+"\n",
		x-10, y-8, fill, opts.Line))
	svg.WriteString(fmt.Sprintf(`<text class="label" x="%d" y="%d" text-anchor="middle">%d</text>`+"\n",
		x, y+5, item.Count()))

	names := make([]string, 0, item.Count())
	for _, e := range item.Events {
		names = append(names, e.Label)
	}
	svg.WriteString(fmt.Sprintf(`<text class="sub" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
		x, y-callout-4, escapeXML(strings.Join(names, " · "))))
}

func drawZoom(svg *strings.Builder, view TimelineView, axisY int, x func(float64) int, opts SVGOptions) {
	zoom := view.Zoom
	axisWidth := opts.Width - 2*opts.Margin
	left, width := timeline.SubPanel(view.Group, float64(axisWidth))
	panelLeft := opts.Margin + int(left)
	panelWidth := int(width)
	panelY := axisY + (opts.Height-axisY)/2

	// Connect the group on the main axis to the panel
	svg.WriteString(fmt.Sprintf(`<path d="M%d,%d L%d,%d L%d,%d" stroke="%s" stroke-width="1" fill="none" stroke-dasharray="2 2"/>`+"\n",
		x(view.Group.StartRatio), axisY, panelLeft, panelY, panelLeft+panelWidth, panelY, opts.Muted))
	svg.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n",
		panelLeft, panelY, panelLeft+panelWidth, panelY, opts.Line))

	px := func(ratio float64) int {
		return panelLeft + int(ratio*float64(panelWidth))
	}
	for _, tick := range zoom.Ticks {
		tx := px(timeline.Ratio(tick.Instant, zoom.Range))
		svg.WriteString(fmt.Sprintf(`<text class="tick" x="%d" y="%d" text-anchor="middle">%s</text>`+"\n",
			tx, panelY+18, escapeXML(tick.Label)))
	}
	for i, ze := range zoom.Events {
		callout := opts.CalloutShort / 2
		if i%2 == 1 {
			callout = opts.CalloutShort
		}
		drawEvent(svg, ze.Event, px(ze.Ratio), panelY, callout, true, opts)
	}
}

// escapeXML escapes special XML characters in a string to ensure valid SVG output.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
