package layout

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/util"
	"golang.org/x/term"
)

// Package-level singleton Sizer instance
var sharedSizer = &Sizer{}

const (
	fallbackWidth  = 74
	fallbackHeight = 24
	minWidth       = 40
	maxWidth       = 160
)

type Sizer struct {
	// Fixed overrides the terminal width when positive
	Fixed int
}

// displayWidth calculates the actual display width of a string containing emojis and Unicode characters
func (i Sizer) displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadString pads a string to a specific display width, handling emojis correctly
func (i Sizer) PadString(s string, width int, leftAlign bool) string {
	actualWidth := i.displayWidth(s)
	if actualWidth >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actualWidth)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// TerminalSize returns the stdout terminal size, falling back to 74x24
func (i Sizer) TerminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return fallbackWidth, fallbackHeight
	}
	if rows <= 0 {
		rows = fallbackHeight
	}
	return cols, rows
}

// GetMaxWidth returns the width dashboards and timelines are drawn at
func (i Sizer) GetMaxWidth() int {
	if i.Fixed > 0 {
		return clampWidth(i.Fixed)
	}

	termWidth, _ := i.TerminalSize()
	width := clampWidth(termWidth - 2) // Leave some margin

	util.LogDebugf("GetMaxWidth %d", width)
	return width
}

// AxisWidthPx converts a width in cells to the pixel width used for grouping
func AxisWidthPx(cols int) float64 {
	return float64(cols) * constants.PxPerCell
}

func clampWidth(width int) int {
	return max(minWidth, min(maxWidth, width))
}
