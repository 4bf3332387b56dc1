package scale

import "github.com/penwyp/agelens/internal/core/units"

// Anchor is a familiar quantity expressed in its kind's base unit
type Anchor struct {
	Label string
	Value float64
}

var anchors = map[units.Kind][]Anchor{
	units.KindCount: {
		{"egg cartons", 12},
		{"decks of cards", 52},
		{"full stadiums", 50_000},
	},
	units.KindVolume: {
		{"teaspoons", 0.005},
		{"bottles", 0.5},
		{"buckets", 10},
		{"bathtubs", 150},
		{"tanker trucks", 30_000},
		{"Olympic pools", 2_500_000},
	},
	units.KindMass: {
		{"paperclips", 0.001},
		{"apples", 0.2},
		{"people", 70},
		{"cars", 1500},
		{"elephants", 6000},
		{"locomotives", 120_000},
	},
	units.KindDistance: {
		{"football pitches", 105},
		{"Mont Blancs", 4807},
		{"marathons", 42_195},
		{"Earth-Moon trips", 384_400_000},
	},
	units.KindTime: {
		{"heartbeats", 0.8},
		{"days", 86_400},
		{"years", 31_557_600},
	},
	units.KindMoney: {
		{"espressos", 1.2},
		{"pizzas", 8},
		{"pairs of shoes", 80},
		{"laptops", 2000},
		{"cars", 20_000},
	},
}

// Anchors returns the reference quantities of kind.
func Anchors(kind units.Kind) []Anchor {
	return anchors[kind]
}
