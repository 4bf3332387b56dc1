package live

import (
	"github.com/penwyp/agelens/internal/core/birth"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/presentation/interaction"
	"github.com/penwyp/agelens/internal/presentation/layout"
)

// BirthSource is the birth instant state cell
type BirthSource interface {
	// Get returns the current instant and whether one is set
	Get() (birth.Instant, bool)
	// Subscribe registers a change listener and returns its removal func
	Subscribe(fn birth.Listener) func()
	// Reload re-reads the persisted instant
	Reload() (bool, error)
}

// DisplayController handles terminal display operations
type DisplayController interface {
	// EnterAlternateScreen switches to alternate terminal screen
	EnterAlternateScreen()
	// ExitAlternateScreen returns to normal terminal screen
	ExitAlternateScreen()
	// Render draws one dashboard frame
	Render(view layout.DashboardView, layoutStyle int)
}

// InputHandler processes keyboard and other input events
type InputHandler interface {
	// Events returns a channel of keyboard events
	Events() <-chan interaction.KeyEvent
	// Close cleans up input handler resources
	Close() error
}

// FileMonitor watches for file changes
type FileMonitor interface {
	// Events returns a channel of file change events
	Events() <-chan model.FileEvent
	// Close stops monitoring and cleans up resources
	Close() error
}
