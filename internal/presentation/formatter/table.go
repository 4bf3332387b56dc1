package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/agelens/internal/util"
)

type TableFormatter struct {
	w       io.Writer
	headers []string
}

func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		w:       w,
		headers: []string{"Unit", "Elapsed"},
	}
}

func (f *TableFormatter) Format(report Report) error {
	fmt.Fprintf(f.w, "%s table, born %s, at %s\n",
		report.Table, report.Birth, report.At.Format("2006-01-02 15:04:05 MST"))

	widths := f.calculateColumnWidths(report)

	f.printBorder(widths, "top")
	f.printRow(f.headers, widths)
	f.printBorder(widths, "middle")
	for _, r := range report.Readings {
		f.printRow([]string{r.Label, r.Display}, widths)
	}
	f.printBorder(widths, "bottom")

	return nil
}

// calculateColumnWidths sizes columns in terminal cells so emoji labels line up
func (f *TableFormatter) calculateColumnWidths(report Report) []int {
	widths := make([]int, len(f.headers))
	for i, h := range f.headers {
		widths[i] = util.GetDisplayWidth(h)
	}
	for _, r := range report.Readings {
		widths[0] = max(widths[0], util.GetDisplayWidth(r.Label))
		widths[1] = max(widths[1], util.GetDisplayWidth(r.Display))
	}

	// Apply minimum widths for readability
	for i := range widths {
		widths[i] = max(widths[i], 8)
	}
	return widths
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right string

	switch borderType {
	case "top":
		left, middle, right = "┌", "┬", "┐"
	case "middle":
		left, middle, right = "├", "┼", "┤"
	case "bottom":
		left, middle, right = "└", "┴", "┘"
	}

	var b strings.Builder
	b.WriteString(left)
	for i, width := range widths {
		b.WriteString(strings.Repeat("─", width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			b.WriteString(middle)
		}
	}
	b.WriteString(right)
	fmt.Fprintln(f.w, b.String())
}

// printRow prints a row: labels left-aligned, values right-aligned
func (f *TableFormatter) printRow(values []string, widths []int) {
	var b strings.Builder
	b.WriteString("│")
	for i, value := range values {
		if i == 0 {
			b.WriteString(" " + util.PadRight(value, widths[i]) + " │")
		} else {
			b.WriteString(" " + util.PadLeft(value, widths[i]) + " │")
		}
	}
	fmt.Fprintln(f.w, b.String())
}
