package model

// FileEvent represents a file system event
type FileEvent struct {
	Path      string
	Operation string
}

// DisplayMode is the screen the live dashboard is currently showing
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeHelp
	ModeIdle
)

// InteractionState represents the current UI interaction state
type InteractionState struct {
	IsPaused      bool
	ShowHelp      bool
	TableIndex    int    // Index into units.Tables()
	ActiveGroupID string // Expanded timeline group, empty when none
	FocusMillis   int64  // Timeline focus handle position
	FocusSet      bool
	SortMode      int
	StatusMessage string
}
