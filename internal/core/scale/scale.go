// Package scale puts a large count in perspective: equivalents in familiar
// quantities and a dot grid where each dot stands for a round step.
package scale

import (
	"math"
	"sort"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/units"
)

// Equivalent expresses a value as a number of anchors
type Equivalent struct {
	Label  string  `json:"label"`
	Approx float64 `json:"approx"`
}

// Grid is a dot visualisation of a value
type Grid struct {
	Dots   int     `json:"dots"`
	Step   float64 `json:"step"`
	Legend string  `json:"legend"`
}

// Explanation bundles everything shown for one reading
type Explanation struct {
	Label       string       `json:"label"`
	Kind        units.Kind   `json:"kind"`
	Unit        string       `json:"unit,omitempty"`
	Value       float64      `json:"value"`
	Display     string       `json:"display"`
	Equivalents []Equivalent `json:"equivalents"`
	Grid        Grid         `json:"grid"`
	Hinted      bool         `json:"hinted"`
}

// PickStep returns the smallest 1/2/5 x 10^n step that splits value into at
// most target parts; values up to target use a step of 1.
func PickStep(value, target float64) float64 {
	if value <= target {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(value/target)))
	for _, m := range []float64{1, 2, 5} {
		if step := m * base; value/step <= target {
			return step
		}
	}
	return 10 * base
}

// BuildEquivalents compares value with the anchors of kind. Anchors the value
// is less than a tenth of are dropped; the rest are ordered by how close the
// ratio is to one and the best five returned.
func BuildEquivalents(value float64, kind units.Kind) []Equivalent {
	type candidate struct {
		label string
		n     float64
	}

	var candidates []candidate
	for _, a := range Anchors(kind) {
		n := value / a.Value
		if n >= constants.MinEquivalentCount {
			candidates = append(candidates, candidate{a.Label, n})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(math.Log10(candidates[i].n)) < math.Abs(math.Log10(candidates[j].n))
	})
	if len(candidates) > constants.MaxEquivalents {
		candidates = candidates[:constants.MaxEquivalents]
	}

	out := make([]Equivalent, 0, len(candidates))
	for _, c := range candidates {
		approx := math.Round(c.n*100) / 100
		if c.n >= 1 {
			approx = math.Round(c.n*10) / 10
		}
		out = append(out, Equivalent{Label: c.label, Approx: approx})
	}
	return out
}

// DotGrid splits value into at most MaxDots dots of a round step.
func DotGrid(value float64, unit string) Grid {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return Grid{Dots: 1, Step: 1, Legend: "1 dot = " + format.FormatLegend(1, unit)}
	}

	step := PickStep(value, constants.DotStepTarget)
	if value < step {
		step = value
	}
	dots := int(math.Round(value / step))
	dots = max(1, min(constants.MaxDots, dots))

	return Grid{
		Dots:   dots,
		Step:   step,
		Legend: "1 dot = " + format.FormatLegend(step, unit),
	}
}

// ShouldHint reports whether a reading deserves the "how much is it?" hint:
// only finite counts outside the 0.001..1000 band of rows that allow it.
func ShouldHint(value float64, hint units.ScaleHint) bool {
	if hint.DisableOverlay || math.IsNaN(value) || hint.Kind != units.KindCount {
		return false
	}
	magnitude := math.Abs(value)
	return magnitude < constants.MinInterestingValue || magnitude > constants.MaxInterestingValue
}

// Explain builds the perspective for a reading of row with raw count raw.
func Explain(row units.UnitDefinition, raw float64) Explanation {
	value := row.ScaledValue(raw)
	kind := row.Scale.Kind
	if kind == "" {
		kind = units.KindCount
	}
	return Explanation{
		Label:       row.Label,
		Kind:        kind,
		Unit:        row.Scale.Unit,
		Value:       value,
		Display:     format.FormatCount(value),
		Equivalents: BuildEquivalents(value, kind),
		Grid:        DotGrid(value, row.Scale.Unit),
		Hinted:      ShouldHint(raw, row.Scale),
	}
}

// EaseOutCubic maps animation progress in [0,1] to the eased fraction of the
// distance covered, used when counting up to a value.
func EaseOutCubic(progress float64) float64 {
	progress = math.Min(math.Max(progress, 0), 1)
	return 1 - math.Pow(1-progress, 3)
}
