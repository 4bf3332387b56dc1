package units

import (
	"errors"
	"testing"
	"time"

	"github.com/penwyp/agelens/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTablesValid(t *testing.T) {
	require.NoError(t, ValidateAll())
	assert.Equal(t, []string{"Classic", "Biological", "Everyday", "Nerdy", "Cosmic", "Eons"}, Names())
}

func TestLookup(t *testing.T) {
	table, err := Lookup("biological")
	require.NoError(t, err)
	assert.Equal(t, "Biological", table.Name)

	_, err = Lookup("Astrological")
	assert.True(t, errors.Is(err, model.ErrUnknownTable))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{
			name:  "valid",
			table: Table{Name: "ok", Rows: []UnitDefinition{Linear("A", 1, count), Linear("B", 2, count)}},
		},
		{
			name:    "duplicate label ignoring case",
			table:   Table{Name: "dup", Rows: []UnitDefinition{Linear("Days", 1, count), Linear("days", 2, count)}},
			wantErr: true,
		},
		{
			name:    "zero seconds",
			table:   Table{Name: "zero", Rows: []UnitDefinition{Linear("A", 0, count)}},
			wantErr: true,
		},
		{
			name:    "custom without evaluation",
			table:   Table{Name: "custom", Rows: []UnitDefinition{Custom("A", nil, count)}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLinearValue(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	table, err := Lookup("Biological")
	require.NoError(t, err)

	heartbeats, ok := table.Row("Heartbeats")
	require.True(t, ok)
	assert.InDelta(t, 1.0, heartbeats.Value(birth, birth.Add(800*time.Millisecond)), 1e-9)

	classic, err := Lookup("Classic")
	require.NoError(t, err)
	days, ok := classic.Row("days")
	require.True(t, ok)
	assert.InDelta(t, 366.0, days.Value(birth, time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)), 1e-9)
}

func TestDogYears(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(years int) time.Time { return time.Date(2000+years, 1, 1, 0, 0, 0, 0, time.UTC) }

	assert.InDelta(t, 0.0, DogYears(birth, birth), 1e-9)
	assert.InDelta(t, 1.0, DogYears(birth, at(15)), 1e-9)
	assert.InDelta(t, 2.0, DogYears(birth, at(24)), 1e-9)
	assert.InDelta(t, 3.0, DogYears(birth, at(29)), 1e-9)
	assert.InDelta(t, 1.0+3.0/9.0, DogYears(birth, at(18)), 1e-9)
}

func TestDogYearsContinuousAtBreakpoints(t *testing.T) {
	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		years    int
		expected float64
	}{
		{"fifteen years", 15, 1},
		{"twenty-four years", 24, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := time.Date(2000+tt.years, 1, 1, 0, 0, 0, 0, time.UTC)
			before := DogYears(birth, at.Add(-time.Hour))
			after := DogYears(birth, at.Add(time.Hour))

			assert.Less(t, before, tt.expected)
			assert.Greater(t, after, tt.expected)
			assert.InDelta(t, tt.expected, before, 1e-3)
			assert.InDelta(t, tt.expected, after, 1e-3)
			// the slope steepens past each breakpoint
			assert.Greater(t, after-tt.expected, tt.expected-before)
		})
	}
}

func TestScaleHints(t *testing.T) {
	_, row, err := FindRow("hair grown (cm)")
	require.NoError(t, err)
	assert.Equal(t, KindDistance, row.Scale.Kind)
	assert.InDelta(t, 2.5, row.ScaledValue(250), 1e-9)

	_, dog, err := FindRow("Dog years")
	require.NoError(t, err)
	assert.Equal(t, VariantCustom, dog.Variant)
	assert.True(t, dog.Scale.DisableOverlay)

	_, _, err = FindRow("Unicorns")
	assert.True(t, errors.Is(err, model.ErrUnknownLabel))
}
