package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/presentation/layout"
	"github.com/penwyp/agelens/internal/util"
)

// TerminalDisplay draws dashboard frames on an ANSI terminal
type TerminalDisplay struct {
	out               io.Writer
	inAlternateScreen bool
	lastLayoutStyle   int
	previousScreen    []string // Previous frame, used to skip unchanged redraws
	isFirstRender     bool
	currentMode       model.DisplayMode
}

func NewTerminalDisplay(out io.Writer) *TerminalDisplay {
	return &TerminalDisplay{
		out:            out,
		previousScreen: make([]string, 0),
		isFirstRender:  true,
		currentMode:    model.ModeNormal,
	}
}

// EnterAlternateScreen switches to alternate screen buffer
func (td *TerminalDisplay) EnterAlternateScreen() {
	if !td.inAlternateScreen {
		fmt.Fprint(td.out, util.EnterAltScreen)
		fmt.Fprint(td.out, util.ClearScreen)
		fmt.Fprint(td.out, util.ClearScrollback)
		fmt.Fprint(td.out, util.HideCursor)
		fmt.Fprint(td.out, util.MoveCursorHome)
		td.inAlternateScreen = true
		td.isFirstRender = true
	}
}

// ExitAlternateScreen returns to normal screen buffer
func (td *TerminalDisplay) ExitAlternateScreen() {
	if td.inAlternateScreen {
		fmt.Fprint(td.out, util.ClearScreen)
		fmt.Fprint(td.out, util.MoveCursorHome)
		fmt.Fprint(td.out, util.ShowCursor)
		fmt.Fprint(td.out, util.ExitAltScreen)
		td.inAlternateScreen = false
	}
}

// ClearForTransition wipes the screen and forgets the previous frame
func (td *TerminalDisplay) ClearForTransition() {
	fmt.Fprint(td.out, util.ClearScreen)
	fmt.Fprint(td.out, util.MoveCursorHome)
	td.previousScreen = make([]string, 0)
}

// determineDisplayMode determines the current display mode based on the view
func (td *TerminalDisplay) determineDisplayMode(view layout.DashboardView) model.DisplayMode {
	if view.ShowHelp {
		return model.ModeHelp
	}
	if view.Snapshot.Idle {
		return model.ModeIdle
	}
	return model.ModeNormal
}

// Render draws one frame. Only lines that differ from the previous frame are
// rewritten; the screen is cleared on the first frame and on mode or layout changes.
func (td *TerminalDisplay) Render(view layout.DashboardView, layoutStyle int) {
	newMode := td.determineDisplayMode(view)

	if td.isFirstRender || newMode != td.currentMode || layoutStyle != td.lastLayoutStyle {
		td.ClearForTransition()
		td.isFirstRender = false
		td.currentMode = newMode
		td.lastLayoutStyle = layoutStyle
	}

	var frame bytes.Buffer
	layout.GetLayoutStrategy(layoutStyle).Render(&frame, view)
	td.smartRender(strings.Split(strings.TrimRight(frame.String(), "\n"), "\n"))
}

// smartRender rewrites changed lines in place and clears what is below the frame
func (td *TerminalDisplay) smartRender(lines []string) {
	var b strings.Builder
	for i, line := range lines {
		if i < len(td.previousScreen) && td.previousScreen[i] == line {
			continue
		}
		b.WriteString(util.MoveCursor(i+1, 1))
		b.WriteString(line)
		b.WriteString(util.ClearLineFromCursor)
	}
	if len(lines) < len(td.previousScreen) {
		b.WriteString(util.MoveCursor(len(lines)+1, 1))
		b.WriteString(util.ClearToEnd)
	}
	fmt.Fprint(td.out, b.String())
	td.previousScreen = lines
}
