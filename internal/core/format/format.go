// Package format turns raw counts into the strings shown next to each reading.
//
// Values are split into regimes: tiny fractions keep their significant digits
// (optionally truncating long runs of leading zeros), small and medium values
// use fixed decimals, and large values are locale-grouped integers or, beyond
// 1e15, exponential notation.
package format

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sentinel shown for values that are not finite numbers
const Sentinel = "--"

// bigExponentialThreshold is where grouped integers switch to exponential notation
const bigExponentialThreshold = 1e15

// Options controls the small-number convention and the grouping locale.
type Options struct {
	DecimalSeparator string
	// Values with at least this many zeros after the separator are truncated
	MaxLeadingZeros int
	// Significant digits kept in the small regime
	MantissaDigits int
	Locale         language.Tag
}

var (
	// CompactOptions is the default: comma separator, truncation from 6 leading zeros.
	CompactOptions = Options{
		DecimalSeparator: ",",
		MaxLeadingZeros:  6,
		MantissaDigits:   4,
		Locale:           language.English,
	}

	// PlainOptions keeps a dot separator and expands up to 12 leading zeros.
	PlainOptions = Options{
		DecimalSeparator: ".",
		MaxLeadingZeros:  12,
		MantissaDigits:   4,
		Locale:           language.English,
	}
)

// Formatter formats numbers according to its Options. It is safe for concurrent use.
type Formatter struct {
	opts    Options
	printer *message.Printer
}

// New creates a formatter, filling zero option fields from CompactOptions.
func New(opts Options) *Formatter {
	if opts.DecimalSeparator == "" {
		opts.DecimalSeparator = CompactOptions.DecimalSeparator
	}
	if opts.MaxLeadingZeros <= 0 {
		opts.MaxLeadingZeros = CompactOptions.MaxLeadingZeros
	}
	if opts.MantissaDigits <= 0 {
		opts.MantissaDigits = CompactOptions.MantissaDigits
	}
	if opts.Locale == language.Und {
		opts.Locale = CompactOptions.Locale
	}
	return &Formatter{
		opts:    opts,
		printer: message.NewPrinter(opts.Locale),
	}
}

var (
	defaultFormatter = New(CompactOptions)
	plainFormatter   = New(PlainOptions)
)

// Default returns the shared formatter using CompactOptions.
func Default() *Formatter {
	return defaultFormatter
}

// Options returns the options the formatter was built with.
func (f *Formatter) Options() Options {
	return f.opts
}

// Format renders any float64. It never fails.
func (f *Formatter) Format(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Sentinel
	}
	if value == 0 {
		return "0"
	}
	if value < 0 {
		return "-" + f.Format(-value)
	}

	// Regime boundaries are compared after rounding to the regime's precision
	switch {
	case value < 1 && f.smallExponent(value) < 0:
		return f.formatSmall(value)
	case roundDecimals(value, 4) < 10:
		return f.FormatFixed(value, 4)
	case roundDecimals(value, 2) < 1000:
		return f.FormatFixed(value, 2)
	default:
		return f.FormatBig(math.Max(value, 1000))
	}
}

// smallExponent is the decimal exponent of value once rounded to the
// mantissa digits; it reaches 0 when value rounds up to 1.
func (f *Formatter) smallExponent(value float64) int {
	sci := strconv.FormatFloat(value, 'e', f.opts.MantissaDigits-1, 64)
	_, expPart, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return 0
	}
	return exp
}

func roundDecimals(value float64, decimals int) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', decimals, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}

// FormatBig renders large magnitudes: a grouped integer (floor) below 1e15,
// exponential notation with two mantissa decimals from there on.
func (f *Formatter) FormatBig(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Sentinel
	}
	if value < 0 {
		return "-" + f.FormatBig(-value)
	}
	if value >= bigExponentialThreshold {
		s := strconv.FormatFloat(value, 'e', 2, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		exp = strings.TrimPrefix(exp, "+")
		exp = strings.TrimLeft(exp, "0")
		return mantissa + "e" + exp
	}
	return f.printer.Sprintf("%d", int64(math.Floor(value)))
}

// FormatFixed renders value with exactly decimals digits after the separator.
func (f *Formatter) FormatFixed(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Sentinel
	}
	s := strconv.FormatFloat(value, 'f', decimals, 64)
	return strings.Replace(s, ".", f.opts.DecimalSeparator, 1)
}

// DisplayCount is the convention used for linear readings: fractions keep their
// small-regime precision, whole counts are floored and grouped.
func (f *Formatter) DisplayCount(raw float64) string {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Sentinel
	}
	if raw < 1 {
		return f.Format(raw)
	}
	return f.FormatBig(math.Floor(raw))
}

// FormatNice renders round milestone amounts ("10,000", "1 million", "1.2 billion").
func (f *Formatter) FormatNice(n float64) string {
	switch {
	case n >= 1e9:
		return scaled(n, 1e9) + " billion"
	case n >= 1e6:
		return scaled(n, 1e6) + " million"
	default:
		return f.printer.Sprintf("%d", int64(math.Round(n)))
	}
}

func scaled(n, unit float64) string {
	if math.Mod(n, unit) != 0 {
		return strconv.FormatFloat(n/unit, 'f', 1, 64)
	}
	return strconv.FormatFloat(n/unit, 'f', 0, 64)
}

// formatSmall handles 0 < value < 1.
func (f *Formatter) formatSmall(value float64) string {
	digits := f.opts.MantissaDigits
	sci := strconv.FormatFloat(value, 'e', digits-1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, err := strconv.Atoi(expPart)
	if err != nil {
		return Sentinel
	}

	leadingZeros := -exp - 1
	if leadingZeros < 0 {
		leadingZeros = 0
	}

	if leadingZeros < f.opts.MaxLeadingZeros {
		s := strconv.FormatFloat(value, 'f', leadingZeros+digits, 64)
		s = trimZeros(s)
		return strings.Replace(s, ".", f.opts.DecimalSeparator, 1)
	}

	significant := strings.TrimRight(strings.Replace(mantissa, ".", "", 1), "0")
	if significant == "" {
		significant = "0"
	}
	return "0" + f.opts.DecimalSeparator + "..." + strconv.Itoa(leadingZeros) + " zeros..." + significant
}

func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Format renders value with the default formatter.
func Format(value float64) string {
	return defaultFormatter.Format(value)
}

// FormatBig renders value with the default formatter's big-number rules.
func FormatBig(value float64) string {
	return defaultFormatter.FormatBig(value)
}

// FormatNice renders a round amount with the default formatter.
func FormatNice(n float64) string {
	return defaultFormatter.FormatNice(n)
}

// FormatSmall renders value with the plain convention (dot separator, no
// truncation below 12 leading zeros).
func FormatSmall(value float64) string {
	return plainFormatter.Format(value)
}

// DisplayCount renders a linear reading with the default formatter.
func DisplayCount(raw float64) string {
	return defaultFormatter.DisplayCount(raw)
}
