package units

import (
	"github.com/penwyp/agelens/internal/core/constants"
)

const (
	day  = constants.SecondsPerDay
	year = constants.SecondsPerYear
)

var (
	count     = ScaleHint{Kind: KindCount}
	timeHint  = ScaleHint{Kind: KindTime, Unit: "s"}
	liters    = ScaleHint{Kind: KindVolume, Unit: "L"}
	kilograms = ScaleHint{Kind: KindMass, Unit: "kg"}
	cm        = ScaleHint{Kind: KindDistance, Unit: "m", Factor: 0.01}
	km        = ScaleHint{Kind: KindDistance, Unit: "m", Factor: 1000}
)

func countOf(unit string) ScaleHint {
	return ScaleHint{Kind: KindCount, Unit: unit}
}

var builtinTables = []Table{
	{
		Name: "Classic",
		Rows: []UnitDefinition{
			Linear("Years", year, timeHint),
			Linear("Months", year/12, timeHint),
			Linear("Weeks", 7*day, timeHint),
			Linear("Days", day, timeHint),
			Linear("Hours", 3600, timeHint),
			Linear("Minutes", 60, timeHint),
			Linear("Seconds", 1, timeHint),
			Linear("Nanoseconds", 1e-9, timeHint),
		},
	},
	{
		Name: "Biological",
		Rows: []UnitDefinition{
			Linear("Breaths", 4, count),
			Linear("Air inhaled (Liters)", 8.64, liters),
			Linear("Blinks", 3.5, count),
			Linear("Heartbeats", 0.8, count),
			Linear("Blood pumped (Liters)", 12, liters),
			Linear("Dead and replaced cells", 0.0000099, count),
			Linear("Liquid drank (Liters)", day/2.25, liters),
			Linear("Food eaten (kilograms)", day/1.2, kilograms),
			Linear("Calories burned (kcal)", day/2100, countOf("kcal")),
			Linear("Hair grown (cm)", 2010000, cm),
			Linear("Nail grown (cm)", 8640000, cm),
			Linear("Toilet visits", day/5, count),
			Custom("Dog years", DogYears, ScaleHint{Kind: KindCount, DisableOverlay: true}),
		},
	},
	{
		Name: "Everyday",
		Rows: []UnitDefinition{
			Linear("Steps taken", day/6000, count),
			Linear("Kilometers walked", day/4, km),
			Linear("Showers", day/0.55, count),
			Linear("Songs played", day/20, count),
			Linear("Words spoken", day/11000, count),
			Linear("Curses spoken", day/40, count),
			Linear("Laughs", day/13, count),
			Linear("Sneezes", day/0.5, count),
			Linear("Yawns", day/7.2, count),
		},
	},
	{
		Name: "Nerdy",
		Rows: []UnitDefinition{
			Linear("Smartphone unlocks", day/36, count),
			Linear("Photos taken", day/12.5, count),
			Linear("Videos taken", day/0.3, count),
			Linear("Keystrokes", day/12000, count),
			Linear("Mouse clicks", day/4000, count),
			Linear("Notifications", day/100, count),
			Linear("Gigabytes downloaded", day/8, countOf("GB")),
			Linear("Gigabytes uploaded", day/0.75, countOf("GB")),
			Linear("Mined Bitcoin blocks", 600, count),
			Linear("Chained Ethereum blocks", 12, count),
			Linear("Eye processed frames", 0.022222, count),
		},
	},
	{
		Name: "Cosmic",
		Rows: []UnitDefinition{
			Linear("Sun equatorial rotations", 24.5*day, count),
			Linear("Lunar cycles", 29.530588*day, count),
			Linear("Venus days", 243*day, count),
			Linear("Venus years", 225*day, count),
			Linear("Martian days", 88775, count),
			Linear("Martian years", 687*day, count),
			Linear("Jovian days", 35700, count),
			Linear("Jovian years", 11.862615*year, count),
			Linear("Halley comet orbits", 76*year, count),
			Linear("Kms in equatorial rotations", 1/0.4651, km),
			Linear("Kms in solar orbit", 1/29.78, km),
			Linear("Kms in galactic motion", 1/220.0, km),
			Linear("Kms in Local Group motion", 1/620.0, km),
		},
	},
	{
		Name: "Eons",
		Rows: []UnitDefinition{
			Linear("Universe age portion", 13.9e9*year, count),
			Linear("Earth age portion", 4.54e9*year, count),
			Linear("Life on Earth portion", 3.7e9*year, count),
			Linear("Complex life portion", 650e6*year, count),
			Linear("Galactic year portion", 230e6*year, count),
			Linear("Fire controlled portion", 1.5e6*year, count),
			Linear("Homo sapiens portion", 300_000*year, count),
			Linear("Written history portion", 5200*year, count),
		},
	},
}
