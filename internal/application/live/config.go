package live

import (
	"fmt"
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/units"
)

// LiveConfig contains configuration for the live command
type LiveConfig struct {
	// Display settings
	Timezone      string
	Table         string
	TimelineWidth int // Columns; 0 uses the terminal width
	LayoutStyle   int
	Format        format.Options

	// Refresh settings
	Refresh   time.Duration
	Highlight time.Duration
}

// Validate fills defaults and checks the initial table exists
func (c *LiveConfig) Validate() error {
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if c.Table == "" {
		c.Table = units.Tables()[0].Name
	}
	if c.Refresh == 0 {
		c.Refresh = constants.TickInterval
	}
	if c.Highlight == 0 {
		c.Highlight = constants.HighlightDuration
	}
	if c.TimelineWidth < 0 {
		return fmt.Errorf("timeline width must not be negative")
	}
	if _, err := units.Lookup(c.Table); err != nil {
		return err
	}
	return nil
}

// tableIndex returns the position of the configured table in units.Tables()
func (c *LiveConfig) tableIndex() int {
	table, err := units.Lookup(c.Table)
	if err != nil {
		return 0
	}
	for i, t := range units.Tables() {
		if t.Name == table.Name {
			return i
		}
	}
	return 0
}
