package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// canvas is a fixed grid of single-cell runes text is stamped onto
type canvas struct {
	width int
	rows  [][]rune
}

func newCanvas(rows, width int) *canvas {
	c := &canvas{width: width, rows: make([][]rune, rows)}
	for i := range c.rows {
		c.rows[i] = []rune(strings.Repeat(" ", width))
	}
	return c
}

func (c *canvas) fill(row int, r rune) {
	for i := range c.rows[row] {
		c.rows[row][i] = r
	}
}

func (c *canvas) set(row, col int, r rune) {
	if row < 0 || row >= len(c.rows) || col < 0 || col >= c.width {
		return
	}
	c.rows[row][col] = r
}

// centered stamps text centred on col, shifted to stay inside the canvas.
// It refuses to overwrite existing text and reports whether it was drawn.
func (c *canvas) centered(row, col int, text string) bool {
	text = runewidth.Truncate(text, c.width, "…")
	runes := []rune(text)
	start := col - len(runes)/2
	start = max(0, min(c.width-len(runes), start))

	// Keep one blank cell between neighbouring labels
	for i := start - 1; i <= start+len(runes); i++ {
		if i >= 0 && i < c.width && c.rows[row][i] != ' ' {
			return false
		}
	}
	copy(c.rows[row][start:], runes)
	return true
}

func (c *canvas) line(row int) string {
	return strings.TrimRight(string(c.rows[row]), " ")
}

func (c *canvas) raw(row int) string {
	return string(c.rows[row])
}
