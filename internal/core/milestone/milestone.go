// Package milestone projects "when will I be N units old" onto the calendar.
package milestone

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/core/birth"
	"github.com/penwyp/agelens/internal/core/calendar"
	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/model"
)

// targetLayout renders the projected instant, e.g. "9 September 2031 01:46:40"
const targetLayout = "2 January 2006 15:04:05"

// Request describes one projection. Birth nil means no birth date is set.
type Request struct {
	Birth            *birth.Instant
	Amount           int64
	Unit             string
	UTCOffsetMinutes int
	Now              time.Time
	Formatter        *format.Formatter
}

// Projection is the result. Target is nil on the approximate path, where
// Reason carries model.ErrUnrepresentable.
type Projection struct {
	Target      *time.Time `json:"target,omitempty"`
	Text        string     `json:"text"`
	Approximate bool       `json:"approximate"`
	ApproxYear  int64      `json:"approx_year,omitempty"`
	Reason      error      `json:"-"`
}

// Project computes the instant at which the person turns Amount Units old.
func Project(req Request) (Projection, error) {
	if req.Birth == nil {
		return Projection{Text: model.UserMessage(model.ErrMissingInput)}, model.ErrMissingInput
	}

	unit, err := ParseUnit(req.Unit)
	if err != nil {
		return Projection{}, err
	}
	amount := req.Amount
	if amount < 1 {
		amount = 1
	}
	formatter := req.Formatter
	if formatter == nil {
		formatter = format.Default()
	}
	nice := formatter.FormatNice(float64(amount))

	start := req.Birth.AtOffset(req.UTCOffsetMinutes)
	target, ok := calendar.AddUnit(start, amount, unit)
	if !ok {
		approx := approximateYear(req.Birth.Year, amount, unit)
		return Projection{
			Text: fmt.Sprintf("≈ Year %d (about %s %s from your birth)\n%s 🙂",
				approx, nice, unit, model.UserMessage(model.ErrUnrepresentable)),
			Approximate: true,
			ApproxYear:  approx,
			Reason:      model.ErrUnrepresentable,
		}, nil
	}

	verb := "will be"
	if target.Before(req.Now) {
		verb = "were"
	}

	return Projection{
		Target: &target,
		Text: fmt.Sprintf("📅 You %s %s %s old on:\n%s  (%s)",
			verb, nice, unit, target.Format(targetLayout), birth.OffsetName(req.UTCOffsetMinutes)),
	}, nil
}

// approximateYear adds amount of unit to birthYear in fixed-length years,
// saturating at math.MaxInt64.
func approximateYear(birthYear int, amount int64, unit string) int64 {
	years := math.Round(float64(amount) * yearsPerUnit[unit])
	if years >= math.Ldexp(1, 63) {
		return math.MaxInt64
	}
	n := int64(years)
	if n > math.MaxInt64-int64(birthYear) {
		return math.MaxInt64
	}
	return int64(birthYear) + n
}

// yearsPerUnit uses fixed 365-day years (a month is a twelfth of one)
var yearsPerUnit = map[string]float64{
	model.UnitYears:   1,
	model.UnitMonths:  1.0 / 12,
	model.UnitWeeks:   7 / constants.ApproxDaysPerYear,
	model.UnitDays:    1 / constants.ApproxDaysPerYear,
	model.UnitHours:   1 / (constants.ApproxDaysPerYear * 24),
	model.UnitMinutes: 1 / (constants.ApproxDaysPerYear * 24 * 60),
	model.UnitSeconds: 1 / constants.SecondsPerDay / constants.ApproxDaysPerYear,
}

// Units lists the accepted units, largest first
var Units = []string{
	model.UnitYears,
	model.UnitMonths,
	model.UnitWeeks,
	model.UnitDays,
	model.UnitHours,
	model.UnitMinutes,
	model.UnitSeconds,
}

// ParseUnit accepts a unit name in any case, singular or plural.
func ParseUnit(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return model.UnitDays, nil
	}
	if !strings.HasSuffix(name, "s") {
		name += "s"
	}
	for _, u := range Units {
		if u == name {
			return u, nil
		}
	}
	return "", fmt.Errorf("%w: %q", model.ErrUnknownUnit, s)
}
