package formatter

import (
	"fmt"
	"io"
	"time"

	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/model"
)

// Report is everything a one-shot readings command prints
type Report struct {
	Table    string            `json:"table"`
	Birth    string            `json:"birth"`
	At       time.Time         `json:"at"`
	Readings []elapsed.Reading `json:"readings"`
}

// Formatter renders a report
type Formatter interface {
	Format(report Report) error
}

// OutputSummary is the prose output format
const OutputSummary = "summary"

// New returns the formatter for output, writing to w
func New(output string, w io.Writer) (Formatter, error) {
	switch output {
	case model.OutputJSON:
		return NewJSONFormatter(w), nil
	case model.OutputCSV:
		return NewCSVFormatter(w), nil
	case OutputSummary:
		return NewSummaryFormatter(w), nil
	case model.OutputTable, "":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s': must be table, json, csv or summary", output)
	}
}
