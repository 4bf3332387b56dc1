// Package birth owns the single user-editable birth instant: its validation,
// persistence through an injected key-value adapter and change notification.
package birth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Instant is a calendar date plus a wall-clock time with no zone attached.
type Instant struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
}

// In places the wall-clock instant in loc.
func (i Instant) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(i.Year, i.Month, i.Day, i.Hour, i.Minute, 0, 0, loc)
}

// AtOffset places the wall-clock instant at a fixed UTC offset in minutes.
func (i Instant) AtOffset(offsetMinutes int) time.Time {
	return i.In(time.FixedZone(OffsetName(offsetMinutes), offsetMinutes*60))
}

// DateString returns the ISO-8601 date (YYYY-MM-DD).
func (i Instant) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", i.Year, int(i.Month), i.Day)
}

// TimeString returns the wall-clock time as HH:MM.
func (i Instant) TimeString() string {
	return fmt.Sprintf("%02d:%02d", i.Hour, i.Minute)
}

func (i Instant) String() string {
	return i.DateString() + " " + i.TimeString()
}

// OffsetName renders an offset in minutes as "UTC+2", "UTC-3.5" or "UTC+0".
func OffsetName(offsetMinutes int) string {
	hours := strconv.FormatFloat(float64(offsetMinutes)/60, 'f', -1, 64)
	if offsetMinutes >= 0 {
		return "UTC+" + hours
	}
	return "UTC" + hours
}

// ParseDate validates a YYYY-MM-DD date (a full ISO timestamp is accepted and
// its date part used). The year must lie between 1900 and the year of now.
func ParseDate(s string, now time.Time) (year int, month time.Month, day int, err error) {
	s = strings.TrimSpace(s)
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		s = s[:len(dateLayout)]
	}
	t, perr := time.Parse(dateLayout, s)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", model.ErrInvalidDate, s)
	}
	if t.Year() < constants.MinBirthYear || t.Year() > now.Year() {
		return 0, 0, 0, fmt.Errorf("%w: year %d outside %d..%d", model.ErrInvalidDate, t.Year(), constants.MinBirthYear, now.Year())
	}
	return t.Year(), t.Month(), t.Day(), nil
}

// ParseTime validates an HH:MM wall-clock time (hour 0..23, minute 0..59).
func ParseTime(s string) (hour, minute int, err error) {
	s = strings.TrimSpace(s)
	t, perr := time.Parse(timeLayout, s)
	if perr != nil {
		// Accept a single-digit hour, e.g. "7:05"
		t, perr = time.Parse("3:04", s)
		if perr != nil {
			return 0, 0, fmt.Errorf("%w: %q", model.ErrInvalidTime, s)
		}
	}
	return t.Hour(), t.Minute(), nil
}

// NewInstant validates and combines a date and an HH:MM time.
func NewInstant(date, hhmm string, now time.Time) (Instant, error) {
	y, m, d, err := ParseDate(date, now)
	if err != nil {
		return Instant{}, err
	}
	h, min, err := ParseTime(hhmm)
	if err != nil {
		return Instant{}, err
	}
	return Instant{Year: y, Month: m, Day: d, Hour: h, Minute: min}, nil
}
