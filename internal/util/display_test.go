package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadding(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		right    string
		left     string
	}{
		{"ascii", "Days", 6, "Days  ", "  Days"},
		{"exact", "Years", 5, "Years", "Years"},
		{"emoji is two cells", "📅", 4, "📅  ", "  📅"},
		{"truncated", "Heartbeats", 6, "Heart…", "Heart…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.right, PadRight(tt.text, tt.width))
			assert.Equal(t, tt.left, PadLeft(tt.text, tt.width))
		})
	}
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab  ", CenterText("ab", 6))
	assert.Equal(t, " ab  ", CenterText("ab", 5))
	assert.Equal(t, "abc", CenterText("abcdef", 3))
}

func TestColorize(t *testing.T) {
	assert.Equal(t, "plain", Colorize("plain"))
	assert.Equal(t, ColorBold+ColorYellow+"x"+ColorReset, FormatHighlight("x"))
	assert.Equal(t, 3, GetDisplayWidth("a📅"))
	assert.Equal(t, "\033[3;7H", MoveCursor(3, 7))
}
