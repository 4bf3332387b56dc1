package layout

import (
	"io"
	"time"

	"github.com/penwyp/agelens/internal/core/elapsed"
)

// DashboardView is everything the live dashboard shows on one frame
type DashboardView struct {
	Now       time.Time
	Birth     string // Formatted birth instant, empty when unset
	Tables    []string
	ActiveTab int
	Snapshot  elapsed.Snapshot
	Timeline  *TimelineView
	ShowHelp  bool
	Status    string
	SortLabel string
	Width     int
}

// LayoutStrategy defines the interface for different layout rendering strategies
type LayoutStrategy interface {
	Render(w io.Writer, view DashboardView)
	GetName() string
}

// GetLayoutStrategy returns the appropriate layout strategy based on the style
func GetLayoutStrategy(layoutStyle int) LayoutStrategy {
	strategies := map[int]LayoutStrategy{
		0: &FullLayoutStrategy{},
		1: &MinimalLayoutStrategy{},
	}

	if strategy, exists := strategies[layoutStyle]; exists {
		return strategy
	}

	// Default to full dashboard if invalid style
	return &FullLayoutStrategy{}
}
