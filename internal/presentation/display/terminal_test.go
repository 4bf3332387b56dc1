package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/presentation/layout"
	"github.com/penwyp/agelens/internal/util"
	"github.com/stretchr/testify/assert"
)

func testView() layout.DashboardView {
	return layout.DashboardView{
		Now:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Birth:  "1990-05-17 08:30",
		Tables: []string{"Classic"},
		Width:  80,
		Snapshot: elapsed.Snapshot{
			Readings: []elapsed.Reading{{Label: "Seconds", Display: "1,061,177,400"}},
		},
	}
}

func TestTerminalDisplay_AlternateScreen(t *testing.T) {
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf)

	td.EnterAlternateScreen()
	td.EnterAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), util.EnterAltScreen))
	assert.Contains(t, buf.String(), util.HideCursor)

	td.ExitAlternateScreen()
	td.ExitAlternateScreen()
	assert.Equal(t, 1, strings.Count(buf.String(), util.ExitAltScreen))
	assert.Contains(t, buf.String(), util.ShowCursor)
}

func TestTerminalDisplay_RenderSkipsUnchangedLines(t *testing.T) {
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf)

	td.Render(testView(), 0)
	first := buf.String()
	assert.Contains(t, first, util.ClearScreen)
	assert.Contains(t, first, "1,061,177,400")

	buf.Reset()
	td.Render(testView(), 0)
	assert.Empty(t, buf.String())

	buf.Reset()
	view := testView()
	view.Snapshot.Readings[0].Display = "1,061,177,401"
	td.Render(view, 0)
	assert.Contains(t, buf.String(), "1,061,177,401")
	assert.NotContains(t, buf.String(), "AGELENS")
	assert.NotContains(t, buf.String(), util.ClearScreen)
}

func TestTerminalDisplay_ModeTransitionClears(t *testing.T) {
	var buf bytes.Buffer
	td := NewTerminalDisplay(&buf)
	td.Render(testView(), 0)

	buf.Reset()
	view := testView()
	view.ShowHelp = true
	td.Render(view, 0)
	assert.Contains(t, buf.String(), util.ClearScreen)
	assert.Equal(t, model.ModeHelp, td.currentMode)

	buf.Reset()
	td.Render(testView(), 1)
	assert.Contains(t, buf.String(), util.ClearScreen)
	assert.Contains(t, buf.String(), "agelens Classic")
}
