package interaction

import (
	"sort"
	"strings"

	"github.com/penwyp/agelens/internal/core/elapsed"
)

// SortField represents the field to sort readings by
type SortField int

const (
	SortByTable SortField = iota // Row order of the table
	SortByLabel
	SortByValue
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// ReadingSorter handles sorting of readings
type ReadingSorter struct {
	field SortField
	order SortOrder
}

// NewReadingSorter creates a sorter keeping the table order
func NewReadingSorter() *ReadingSorter {
	return &ReadingSorter{
		field: SortByTable,
		order: SortAscending,
	}
}

// Cycle steps through table order, label A-Z, largest value first
func (s *ReadingSorter) Cycle() {
	switch s.field {
	case SortByTable:
		s.field, s.order = SortByLabel, SortAscending
	case SortByLabel:
		s.field, s.order = SortByValue, SortDescending
	default:
		s.field, s.order = SortByTable, SortAscending
	}
}

// Field returns the current sort field
func (s *ReadingSorter) Field() SortField {
	return s.field
}

// Label names the current order for the status line
func (s *ReadingSorter) Label() string {
	switch s.field {
	case SortByLabel:
		return "label"
	case SortByValue:
		return "value"
	default:
		return "table"
	}
}

// Sort returns a sorted copy of readings
func (s *ReadingSorter) Sort(readings []elapsed.Reading) []elapsed.Reading {
	sorted := make([]elapsed.Reading, len(readings))
	copy(sorted, readings)
	if s.field == SortByTable {
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if s.order == SortDescending {
			i, j = j, i
		}

		switch s.field {
		case SortByLabel:
			return strings.ToLower(sorted[i].Label) < strings.ToLower(sorted[j].Label)
		default:
			return sorted[i].RawCount < sorted[j].RawCount
		}
	})
	return sorted
}
