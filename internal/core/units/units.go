// Package units defines the named tables of units that elapsed time is
// expressed in. Most rows are linear (a fixed number of seconds per unit); a
// row may instead carry its own evaluation function.
package units

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/agelens/internal/core/model"
)

// Variant distinguishes linear rows from rows with a custom evaluation
type Variant int

const (
	VariantLinear Variant = iota
	VariantCustom
)

func (v Variant) String() string {
	switch v {
	case VariantLinear:
		return "linear"
	case VariantCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Kind groups rows by what their count measures, for the scale explainer
type Kind string

const (
	KindCount    Kind = "count"
	KindVolume   Kind = "volume_L"
	KindMass     Kind = "mass_kg"
	KindDistance Kind = "distance_m"
	KindTime     Kind = "time_s"
	KindMoney    Kind = "money_eur"
)

// ScaleHint describes how a row's count can be put in perspective.
// Factor converts the row's unit into the kind's base unit (cm -> m = 0.01).
type ScaleHint struct {
	Kind           Kind    `json:"kind"`
	Unit           string  `json:"unit,omitempty"`
	Factor         float64 `json:"factor,omitempty"`
	DisableOverlay bool    `json:"disable_overlay,omitempty"`
}

// EvaluateFunc computes a custom row's count from the birth and current instants
type EvaluateFunc func(birth, now time.Time) float64

// UnitDefinition is one row of a table
type UnitDefinition struct {
	Label          string
	Variant        Variant
	SecondsPerUnit float64
	Evaluate       EvaluateFunc
	Scale          ScaleHint
}

// Linear builds a row counting fixed-length units
func Linear(label string, secondsPerUnit float64, hint ScaleHint) UnitDefinition {
	return UnitDefinition{
		Label:          label,
		Variant:        VariantLinear,
		SecondsPerUnit: secondsPerUnit,
		Scale:          hint,
	}
}

// Custom builds a row evaluated by fn
func Custom(label string, fn EvaluateFunc, hint ScaleHint) UnitDefinition {
	return UnitDefinition{
		Label:    label,
		Variant:  VariantCustom,
		Evaluate: fn,
		Scale:    hint,
	}
}

// Value returns the raw count for the row at now.
func (u UnitDefinition) Value(birth, now time.Time) float64 {
	if u.Variant == VariantCustom {
		return u.Evaluate(birth, now)
	}
	elapsedMillis := now.UnixMilli() - birth.UnixMilli()
	return float64(elapsedMillis) / 1000 / u.SecondsPerUnit
}

// ScaledValue converts a raw count into the base unit of the row's scale kind.
func (u UnitDefinition) ScaledValue(raw float64) float64 {
	if u.Scale.Factor == 0 {
		return raw
	}
	return raw * u.Scale.Factor
}

// Table is a named, ordered list of rows
type Table struct {
	Name string
	Rows []UnitDefinition
}

// Row finds a row by label, ignoring case and surrounding spaces.
func (t Table) Row(label string) (UnitDefinition, bool) {
	want := strings.TrimSpace(label)
	for _, row := range t.Rows {
		if strings.EqualFold(strings.TrimSpace(row.Label), want) {
			return row, true
		}
	}
	return UnitDefinition{}, false
}

// Validate checks that labels are unique and linear rows have a positive length.
func (t Table) Validate() error {
	seen := make(map[string]bool, len(t.Rows))
	for _, row := range t.Rows {
		key := strings.ToLower(strings.TrimSpace(row.Label))
		if key == "" {
			return fmt.Errorf("table %s: empty label", t.Name)
		}
		if seen[key] {
			return fmt.Errorf("table %s: duplicate label %q", t.Name, row.Label)
		}
		seen[key] = true

		switch row.Variant {
		case VariantLinear:
			if !(row.SecondsPerUnit > 0) {
				return fmt.Errorf("table %s: row %q has non-positive seconds per unit", t.Name, row.Label)
			}
		case VariantCustom:
			if row.Evaluate == nil {
				return fmt.Errorf("table %s: custom row %q has no evaluation", t.Name, row.Label)
			}
		default:
			return fmt.Errorf("table %s: row %q has unknown variant", t.Name, row.Label)
		}
	}
	return nil
}

// Tables returns every table in display order.
func Tables() []Table {
	return builtinTables
}

// Names returns the table names in display order.
func Names() []string {
	names := make([]string, len(builtinTables))
	for i, t := range builtinTables {
		names[i] = t.Name
	}
	return names
}

// Lookup finds a table by case-insensitive name.
func Lookup(name string) (Table, error) {
	for _, t := range builtinTables {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return Table{}, fmt.Errorf("%w: %q (available: %s)", model.ErrUnknownTable, name, strings.Join(Names(), ", "))
}

// FindRow searches every table for a row label and returns the first match.
func FindRow(label string) (Table, UnitDefinition, error) {
	for _, t := range builtinTables {
		if row, ok := t.Row(label); ok {
			return t, row, nil
		}
	}
	return Table{}, UnitDefinition{}, fmt.Errorf("%w: %q", model.ErrUnknownLabel, label)
}

// ValidateAll validates every built-in table.
func ValidateAll() error {
	for _, t := range builtinTables {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
