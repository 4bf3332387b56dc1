package layout

import (
	"fmt"
	"strings"

	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/util"
)

// BaseStrategy provides common functionality for all layout strategies
type BaseStrategy struct {
}

// GetSizer returns the shared sizer instance
func (b *BaseStrategy) GetSizer() *Sizer {
	return sharedSizer
}

// width resolves the frame width, asking the terminal when the view has none
func (b *BaseStrategy) width(view DashboardView) int {
	if view.Width > 0 {
		return clampWidth(view.Width)
	}
	return b.GetSizer().GetMaxWidth()
}

// BoxLine frames plain text; colored is printed instead when set, padded by
// the width of the plain text.
func (b *BaseStrategy) BoxLine(plain, colored string, width int) string {
	inner := width - 4
	if util.GetDisplayWidth(plain) > inner {
		plain = util.PadRight(plain, inner)
		colored = ""
	}
	padding := strings.Repeat(" ", inner-util.GetDisplayWidth(plain))
	if colored == "" {
		colored = plain
	}
	return "│ " + colored + padding + " │"
}

// Border draws a horizontal box edge
func (b *BaseStrategy) Border(left, right string, width int) string {
	return left + strings.Repeat("─", width-2) + right
}

// TabBar lists the tables with the active one reversed, returning plain and colored text
func (b *BaseStrategy) TabBar(tables []string, active int) (string, string) {
	plain := make([]string, len(tables))
	colored := make([]string, len(tables))
	for i, name := range tables {
		tab := fmt.Sprintf(" %d %s ", i+1, name)
		plain[i] = tab
		if i == active {
			colored[i] = util.Colorize(tab, util.ColorReverse)
		} else {
			colored[i] = tab
		}
	}
	return strings.Join(plain, ""), strings.Join(colored, "")
}

// ReadingLine aligns a reading's label and value, highlighting changed values
func (b *BaseStrategy) ReadingLine(r elapsed.Reading, labelWidth, valueWidth int) (string, string) {
	label := util.PadRight(r.Label, labelWidth)
	value := util.PadLeft(r.Display, valueWidth)
	plain := label + "  " + value
	if r.Changed {
		return plain, label + "  " + util.FormatHighlight(value)
	}
	return plain, ""
}

// HelpLines lists the dashboard keys
func (b *BaseStrategy) HelpLines() []string {
	return []string{
		"1-6 / Tab    switch table",
		"s            cycle sort order",
		"g            expand the next timeline group",
		"Esc          close the expanded group",
		"[ / ]        move the timeline focus",
		"r            reload the birth date",
		"p            pause or resume ticking",
		"t            toggle the compact layout",
		"h            toggle this help",
		"q / Ctrl+C   quit",
	}
}
