package util

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal control sequences
const (
	ColorReset   = "\033[0m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGreen   = "\033[32m"
	ColorYellow  = "\033[33m"
	ColorRed     = "\033[31m"
	ColorMagenta = "\033[35m"
	ColorGray    = "\033[90m"
	ColorBold    = "\033[1m"
	ColorReverse = "\033[7m"

	ClearScreen         = "\033[2J"     // Clear entire screen
	ClearLine           = "\033[2K"     // Clear entire line
	ClearLineFromCursor = "\033[0K"     // Clear from cursor to end of line
	ClearScrollback     = "\033[3J"     // Clear scrollback buffer
	MoveCursorHome      = "\033[H"      // Move cursor to home position
	ClearToEnd          = "\033[J"      // Clear from cursor to end of screen
	HideCursor          = "\033[?25l"   // Hide cursor
	ShowCursor          = "\033[?25h"   // Show cursor
	EnterAltScreen      = "\033[?1049h" // Switch to the alternate screen buffer
	ExitAltScreen       = "\033[?1049l" // Restore the main screen buffer
)

// GetDisplayWidth returns the terminal cell width of text, accounting for emojis
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads text with spaces to width cells, truncating when it is wider
func PadRight(text string, width int) string {
	if GetDisplayWidth(text) > width {
		return runewidth.Truncate(text, width, "…")
	}
	return runewidth.FillRight(text, width)
}

// PadLeft right-aligns text in width cells
func PadLeft(text string, width int) string {
	if GetDisplayWidth(text) > width {
		return runewidth.Truncate(text, width, "…")
	}
	return runewidth.FillLeft(text, width)
}

// Colorize wraps text in the given color sequence(s)
func Colorize(text string, colors ...string) string {
	if len(colors) == 0 {
		return text
	}
	return strings.Join(colors, "") + text + ColorReset
}

// FormatHeaderTitle formats main header titles (Magenta + Bold)
func FormatHeaderTitle(title string) string {
	return Colorize(title, ColorBold, ColorMagenta)
}

// FormatDataTitle formats data section titles (Green + Bold)
func FormatDataTitle(title string) string {
	return Colorize(title, ColorBold, ColorGreen)
}

// FormatHighlight marks a value that changed on the last tick
func FormatHighlight(text string) string {
	return Colorize(text, ColorBold, ColorYellow)
}

// FormatMuted renders secondary text
func FormatMuted(text string) string {
	return Colorize(text, ColorGray)
}

// FormatSectionSeparator creates a separator line width cells wide
func FormatSectionSeparator(width int) string {
	if width <= 0 {
		width = 80
	}
	return Colorize(strings.Repeat("─", width), ColorCyan)
}

// MoveCursor returns ANSI sequence to move cursor to specific position
func MoveCursor(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// CenterText centers text within the given width
func CenterText(text string, width int) string {
	w := GetDisplayWidth(text)
	if w >= width {
		return runewidth.Truncate(text, width, "")
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-padding-w)
}
