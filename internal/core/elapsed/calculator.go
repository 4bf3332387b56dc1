// Package elapsed computes the per-row readings of a unit table and keeps them
// fresh once per second.
package elapsed

import (
	"sync"
	"time"

	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/units"
)

// customDecimals is the fixed precision of custom rows (dog years)
const customDecimals = 2

// Reading is one row of output
type Reading struct {
	Label    string        `json:"label"`
	RawCount float64       `json:"raw_count"`
	Display  string        `json:"display"`
	Changed  bool          `json:"changed"`
	Variant  units.Variant `json:"-"`
}

// ComputeReadings evaluates every row of table at now. It is pure.
func ComputeReadings(birth, now time.Time, table units.Table, formatter *format.Formatter) []Reading {
	if formatter == nil {
		formatter = format.Default()
	}

	readings := make([]Reading, 0, len(table.Rows))
	for _, row := range table.Rows {
		raw := row.Value(birth, now)

		var display string
		if row.Variant == units.VariantCustom {
			display = formatter.FormatFixed(raw, customDecimals)
		} else {
			display = formatter.DisplayCount(raw)
		}

		readings = append(readings, Reading{
			Label:    row.Label,
			RawCount: raw,
			Display:  display,
			Variant:  row.Variant,
		})
	}
	return readings
}

// Calculator computes readings and flags the rows whose display string differs
// from the previous computation.
type Calculator struct {
	mu        sync.Mutex
	table     units.Table
	formatter *format.Formatter
	previous  map[string]string
}

func NewCalculator(table units.Table, formatter *format.Formatter) *Calculator {
	if formatter == nil {
		formatter = format.Default()
	}
	return &Calculator{
		table:     table,
		formatter: formatter,
		previous:  make(map[string]string),
	}
}

// Compute returns the readings at now. Rows are marked Changed only when a
// previous computation exists and its display string differs.
func (c *Calculator) Compute(birth, now time.Time) []Reading {
	c.mu.Lock()
	defer c.mu.Unlock()

	readings := ComputeReadings(birth, now, c.table, c.formatter)
	for i := range readings {
		prev, seen := c.previous[readings[i].Label]
		readings[i].Changed = seen && prev != readings[i].Display
		c.previous[readings[i].Label] = readings[i].Display
	}
	return readings
}

// Table returns the table being computed
func (c *Calculator) Table() units.Table {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.table
}

// SetTable switches tables and forgets the previous displays
func (c *Calculator) SetTable(table units.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.table = table
	c.previous = make(map[string]string)
}

// Reset forgets the previous displays
func (c *Calculator) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.previous = make(map[string]string)
}
