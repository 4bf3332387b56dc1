package layout

import (
	"fmt"
	"io"

	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/util"
)

// FullLayoutStrategy implements the full dashboard layout
type FullLayoutStrategy struct {
	BaseStrategy
}

func (s *FullLayoutStrategy) GetName() string {
	return "Full Dashboard"
}

func (s *FullLayoutStrategy) Render(w io.Writer, view DashboardView) {
	maxWidth := s.width(view)

	fmt.Fprintln(w, s.Border("╭", "╮", maxWidth))
	s.header(w, view, maxWidth)
	fmt.Fprintln(w, s.Border("├", "┤", maxWidth))

	switch {
	case view.ShowHelp:
		s.help(w, maxWidth)
	case view.Birth == "":
		msg := model.UserMessage(model.ErrMissingInput)
		fmt.Fprintln(w, s.BoxLine(msg, util.FormatHighlight(msg), maxWidth))
	default:
		s.tabs(w, view, maxWidth)
		fmt.Fprintln(w, s.Border("├", "┤", maxWidth))
		s.readings(w, view, maxWidth)
	}
	fmt.Fprintln(w, s.Border("╰", "╯", maxWidth))

	if view.Timeline != nil && view.Birth != "" && !view.ShowHelp {
		fmt.Fprintln(w)
		for _, line := range RenderTimelineText(*view.Timeline) {
			fmt.Fprintln(w, line)
		}
	}

	s.footer(w, view)
}

func (s *FullLayoutStrategy) header(w io.Writer, view DashboardView, maxWidth int) {
	clock := view.Now.Format("15:04:05")
	title := "AGELENS"
	birth := "birth date not set"
	if view.Birth != "" {
		birth = "born " + view.Birth
	}

	plain := fmt.Sprintf("%s  ·  %s  ·  %s", title, birth, clock)
	colored := fmt.Sprintf("%s  ·  %s  ·  %s", util.FormatHeaderTitle(title), birth, util.FormatMuted(clock))
	fmt.Fprintln(w, s.BoxLine(plain, colored, maxWidth))
}

func (s *FullLayoutStrategy) tabs(w io.Writer, view DashboardView, maxWidth int) {
	plain, colored := s.TabBar(view.Tables, view.ActiveTab)
	fmt.Fprintln(w, s.BoxLine(plain, colored, maxWidth))
}

func (s *FullLayoutStrategy) readings(w io.Writer, view DashboardView, maxWidth int) {
	readings := view.Snapshot.Readings
	if view.Snapshot.Idle {
		msg := "Paused. Press p to resume."
		fmt.Fprintln(w, s.BoxLine(msg, util.FormatMuted(msg), maxWidth))
	}

	labelWidth, valueWidth := 0, 0
	for _, r := range readings {
		labelWidth = max(labelWidth, util.GetDisplayWidth(r.Label))
		valueWidth = max(valueWidth, util.GetDisplayWidth(r.Display))
	}
	labelWidth = min(labelWidth, maxWidth/2)
	valueWidth = min(valueWidth, maxWidth-labelWidth-6)

	for _, r := range readings {
		plain, colored := s.ReadingLine(r, labelWidth, valueWidth)
		fmt.Fprintln(w, s.BoxLine(plain, colored, maxWidth))
	}
}

func (s *FullLayoutStrategy) help(w io.Writer, maxWidth int) {
	fmt.Fprintln(w, s.BoxLine("Keys", util.FormatDataTitle("Keys"), maxWidth))
	for _, line := range s.HelpLines() {
		fmt.Fprintln(w, s.BoxLine(line, "", maxWidth))
	}
}

func (s *FullLayoutStrategy) footer(w io.Writer, view DashboardView) {
	keys := "1-6 tables · s sort · g groups · [ ] focus · h help · q quit"
	if view.SortLabel != "" {
		keys = "sort: " + view.SortLabel + " · " + keys
	}
	fmt.Fprintln(w, util.FormatMuted(keys))
	if view.Status != "" {
		fmt.Fprintln(w, util.Colorize(view.Status, util.ColorYellow))
	}
}
