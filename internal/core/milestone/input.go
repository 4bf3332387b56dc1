package milestone

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Presets are the round amounts offered as shortcuts
var Presets = []int64{1_000, 5_000, 10_000, 20_000, 40_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// Timezone is a named UTC offset
type Timezone struct {
	OffsetHours int
	City        string
}

// OffsetMinutes returns the offset in minutes
func (tz Timezone) OffsetMinutes() int {
	return tz.OffsetHours * 60
}

// Timezones lists one representative city per whole-hour offset
var Timezones = []Timezone{
	{-12, "Baker Island"},
	{-11, "Pago Pago"},
	{-10, "Honolulu"},
	{-9, "Anchorage"},
	{-8, "Los Angeles"},
	{-7, "Denver"},
	{-6, "Chicago"},
	{-5, "New York"},
	{-4, "Santiago"},
	{-3, "Buenos Aires"},
	{-2, "South Georgia"},
	{-1, "Azores"},
	{0, "London"},
	{1, "Rome"},
	{2, "Cairo"},
	{3, "Moscow"},
	{4, "Dubai"},
	{5, "Karachi"},
	{6, "Dhaka"},
	{7, "Bangkok"},
	{8, "Beijing"},
	{9, "Tokyo"},
	{10, "Sydney"},
	{11, "Nouméa"},
	{12, "Auckland"},
	{13, "Apia"},
	{14, "Kiritimati"},
}

// TimezoneByCity finds a timezone by case-insensitive city name.
func TimezoneByCity(city string) (Timezone, bool) {
	for _, tz := range Timezones {
		if strings.EqualFold(tz.City, strings.TrimSpace(city)) {
			return tz, true
		}
	}
	return Timezone{}, false
}

// ParseAmount reads a user-typed amount. Leading zeros are ignored, anything
// that is not a number reads as 0, and the result is clamped to at least 1.
func ParseAmount(s string) int64 {
	s = strings.TrimLeft(strings.TrimSpace(s), "0")
	if s == "" || strings.HasPrefix(s, "-") {
		return 1
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt64
		}
		return 1
	}
	if n < 1 {
		return 1
	}
	return n
}

// PresetIndex returns the index of the preset matching amount, or the first
// larger one; amounts above every preset map to the last index.
func PresetIndex(amount int64) int {
	for i, p := range Presets {
		if p >= amount {
			return i
		}
	}
	return len(Presets) - 1
}
