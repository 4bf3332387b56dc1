package constants

import "time"

const (
	// Calendar conversion factors
	SecondsPerMinute = 60.0
	SecondsPerHour   = 3600.0
	SecondsPerDay    = 86400.0
	SecondsPerWeek   = 7 * SecondsPerDay
	SecondsPerYear   = 365.25 * SecondsPerDay // Julian year, used by the unit tables

	// Fixed-length year used by the approximate milestone path
	ApproxDaysPerYear = 365.0

	MillisPerSecond = int64(1000)
	MillisPerMinute = 60 * MillisPerSecond
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour

	// Largest absolute epoch offset a date value can address (100,000,000 days)
	MaxRepresentableMillis = int64(8.64e15)
)

const (
	// Elapsed readings refresh cadence and highlight lifetime
	TickInterval      = 1 * time.Second
	HighlightDuration = 300 * time.Millisecond
)

const (
	// Birth date bounds
	MinBirthYear = 1900
)
