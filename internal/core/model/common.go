package model

// Persisted state keys
const (
	KeyBirthDate = "dob"
	KeyBirthTime = "dobTime"
)

// DefaultBirthTime is used when a birth date is stored without a time
const DefaultBirthTime = "00:00"

// Milestone units
const (
	UnitYears   = "years"
	UnitMonths  = "months"
	UnitWeeks   = "weeks"
	UnitDays    = "days"
	UnitHours   = "hours"
	UnitMinutes = "minutes"
	UnitSeconds = "seconds"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputCSV   = "csv"
)
