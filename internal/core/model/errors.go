package model

import "errors"

// Sentinel errors shared by the core packages. Check with errors.Is.
var (
	// ErrMissingInput is returned when a computation needs a birth date that was never set.
	ErrMissingInput = errors.New("birth date not set")

	// ErrUnrepresentable marks a milestone target outside the addressable calendar range.
	ErrUnrepresentable = errors.New("target outside representable calendar range")

	// ErrInvalidRange marks a timeline range whose end is not after its start.
	ErrInvalidRange = errors.New("invalid timeline range")

	ErrInvalidDate  = errors.New("invalid birth date")
	ErrInvalidTime  = errors.New("invalid birth time")
	ErrUnknownTable = errors.New("unknown unit table")
	ErrUnknownUnit  = errors.New("unknown milestone unit")
	ErrUnknownLabel = errors.New("unknown unit label")
)

type userMessage struct {
	err error
	msg string
}

var userMessages = []userMessage{
	{ErrMissingInput, "Insert your birth date first! ✋  (agelens birth set YYYY-MM-DD)"},
	{ErrUnrepresentable, "The exact calendar date is beyond what this tool can represent."},
	{ErrInvalidRange, "The timeline range is empty."},
	{ErrInvalidDate, "Birth date must be a real date between 1900 and today (YYYY-MM-DD)."},
	{ErrInvalidTime, "Birth time must be HH:MM in 24h format."},
	{ErrUnknownTable, "Unknown table. Run 'agelens tables' to list them."},
	{ErrUnknownUnit, "Unit must be one of years, months, weeks, days, hours, minutes, seconds."},
	{ErrUnknownLabel, "Unknown unit label. Run 'agelens tables' to list them."},
}

// UserMessage returns the user-facing text for err, falling back to err.Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
