package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCount renders an animated or approximate count in the scale explainer.
func FormatCount(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Sentinel
	}
	abs := math.Abs(value)
	switch {
	case abs >= 1_000_000:
		return FormatBig(value)
	case abs >= 1000:
		return humanize.Comma(int64(math.Round(value)))
	case abs >= 1:
		return humanize.CommafWithDigits(roundTo(value, 1), 1)
	default:
		return humanize.CommafWithDigits(roundTo(value, 3), 3)
	}
}

// FormatLegend renders "<value> <unit>" for a dot-grid legend, with more
// fraction digits the smaller the value is.
func FormatLegend(value float64, unit string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		if unit == "" {
			return "1"
		}
		return unit
	}

	abs := math.Abs(value)
	digits := 0
	switch {
	case abs < 0.001:
		digits = 6
	case abs < 0.01:
		digits = 4
	case abs < 1:
		digits = 3
	case abs < 10:
		digits = 2
	}

	base := humanize.CommafWithDigits(roundTo(value, digits), digits)
	if unit == "" {
		return base
	}
	return base + " " + unit
}

func roundTo(value float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(value*p) / p
}
