package formatter

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/penwyp/agelens/internal/core/elapsed"
)

type JSONFormatter struct {
	w io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

func (f *JSONFormatter) Format(report Report) error {
	if report.Readings == nil {
		report.Readings = []elapsed.Reading{}
	}
	encoder := sonic.ConfigStd.NewEncoder(f.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
