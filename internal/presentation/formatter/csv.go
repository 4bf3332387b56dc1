package formatter

import (
	"encoding/csv"
	"io"
	"strconv"
)

type CSVFormatter struct {
	w io.Writer
}

func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

func (f *CSVFormatter) Format(report Report) error {
	w := csv.NewWriter(f.w)

	if err := w.Write([]string{"Table", "Unit", "Raw", "Display"}); err != nil {
		return err
	}
	for _, r := range report.Readings {
		record := []string{
			report.Table,
			r.Label,
			strconv.FormatFloat(r.RawCount, 'f', -1, 64),
			r.Display,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
