package live

import (
	"sync"
	"time"

	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/model"
)

// StateManager manages application state in a thread-safe manner
type StateManager struct {
	mu sync.RWMutex

	snapshot         elapsed.Snapshot
	interactionState model.InteractionState
	statusUntil      time.Time
	layoutStyle      int

	// Timestamp of the last published snapshot
	lastDataUpdate time.Time
}

// NewStateManager creates a new StateManager instance
func NewStateManager(tableIndex, layoutStyle int) *StateManager {
	return &StateManager{
		interactionState: model.InteractionState{TableIndex: tableIndex},
		layoutStyle:      layoutStyle,
	}
}

// GetSnapshot returns the latest readings
func (sm *StateManager) GetSnapshot() elapsed.Snapshot {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.snapshot
}

// SetSnapshot stores the latest readings
func (sm *StateManager) SetSnapshot(snapshot elapsed.Snapshot) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.snapshot = snapshot
	sm.lastDataUpdate = snapshot.At
}

// GetLastDataUpdate returns when the last snapshot was computed
func (sm *StateManager) GetLastDataUpdate() time.Time {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.lastDataUpdate
}

// GetInteractionState returns current interaction state
func (sm *StateManager) GetInteractionState() model.InteractionState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.interactionState
}

// UpdateInteractionState updates specific fields of interaction state
func (sm *StateManager) UpdateInteractionState(updateFunc func(*model.InteractionState)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	updateFunc(&sm.interactionState)
}

// SetStatus shows message until the given time
func (sm *StateManager) SetStatus(message string, until time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.interactionState.StatusMessage = message
	sm.statusUntil = until
}

// Status returns the status message, or "" once it expired at now
func (sm *StateManager) Status(now time.Time) string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if now.After(sm.statusUntil) {
		return ""
	}
	return sm.interactionState.StatusMessage
}

// LayoutStyle returns the current layout style
func (sm *StateManager) LayoutStyle() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.layoutStyle
}

// CycleLayoutStyle switches between the full and minimal layouts
func (sm *StateManager) CycleLayoutStyle() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.layoutStyle = (sm.layoutStyle + 1) % 2
}
