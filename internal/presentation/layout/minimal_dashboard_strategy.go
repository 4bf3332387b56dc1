package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/penwyp/agelens/internal/core/model"
)

// MinimalLayoutStrategy implements the single-line dashboard layout
type MinimalLayoutStrategy struct {
	BaseStrategy
}

func (s *MinimalLayoutStrategy) GetName() string {
	return "Minimal Dashboard"
}

func (s *MinimalLayoutStrategy) Render(w io.Writer, view DashboardView) {
	if view.Birth == "" {
		fmt.Fprintln(w, model.UserMessage(model.ErrMissingInput))
		return
	}

	table := ""
	if view.ActiveTab >= 0 && view.ActiveTab < len(view.Tables) {
		table = view.Tables[view.ActiveTab]
	}

	parts := make([]string, 0, len(view.Snapshot.Readings))
	for _, r := range view.Snapshot.Readings {
		parts = append(parts, r.Label+" "+r.Display)
	}

	line := fmt.Sprintf("agelens %s: %s | %s", table, strings.Join(parts, " | "), view.Now.Format("15:04:05"))
	fmt.Fprintln(w, runewidth.Truncate(line, s.width(view), "…"))
}
