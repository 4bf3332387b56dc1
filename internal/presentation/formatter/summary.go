package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
)

// SummaryFormatter prints each reading as a rounded, human sentence.
type SummaryFormatter struct {
	w io.Writer
}

// NewSummaryFormatter creates a new instance of SummaryFormatter.
func NewSummaryFormatter(w io.Writer) *SummaryFormatter {
	return &SummaryFormatter{w: w}
}

// Format prints the summary of a report.
func (f *SummaryFormatter) Format(report Report) error {
	fmt.Fprintln(f.w, util.FormatHeaderTitle(fmt.Sprintf("Born %s", report.Birth)))
	fmt.Fprintln(f.w, util.FormatSectionSeparator(40))

	if len(report.Readings) == 0 {
		fmt.Fprintln(f.w, "No readings.")
		return nil
	}

	for _, r := range report.Readings {
		amount := format.FormatNice(r.RawCount)
		if r.Variant == units.VariantCustom {
			amount = r.Display
		}
		fmt.Fprintf(f.w, "  %s about %s\n", util.PadRight(strings.TrimSpace(r.Label)+":", 28), amount)
	}
	return nil
}
