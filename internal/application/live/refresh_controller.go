package live

import (
	"sync"

	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
)

// RefreshController keeps the ticker in step with the birth instant, the
// selected table and the pause state
type RefreshController struct {
	mu     sync.Mutex
	birth  BirthSource
	ticker *elapsed.Ticker
	time   *util.TimeProvider
	paused bool
}

// NewRefreshController creates a new RefreshController instance
func NewRefreshController(birth BirthSource, ticker *elapsed.Ticker, tp *util.TimeProvider) *RefreshController {
	return &RefreshController{
		birth:  birth,
		ticker: ticker,
		time:   tp,
	}
}

// Restart restarts ticking from the current birth instant. Without one the
// ticker goes idle. It reports whether the ticker is running.
func (rc *RefreshController) Restart() bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()

	instant, ok := rc.birth.Get()
	if !ok {
		util.LogDebug("No birth date set, ticker idle")
		rc.ticker.Idle()
		return false
	}
	if rc.paused {
		return false
	}

	rc.ticker.Start(instant.In(rc.time.Location()))
	return true
}

// SetTable switches the computed table
func (rc *RefreshController) SetTable(table units.Table) {
	util.LogDebugf("Switching to table %s", table.Name)
	rc.ticker.SetTable(table)
}

// TogglePause stops or resumes ticking and reports whether it is now paused
func (rc *RefreshController) TogglePause() bool {
	rc.mu.Lock()
	rc.paused = !rc.paused
	paused := rc.paused
	rc.mu.Unlock()

	if paused {
		rc.ticker.Stop()
		return true
	}
	rc.Restart()
	return false
}

// Snapshot returns the ticker's latest snapshot
func (rc *RefreshController) Snapshot() elapsed.Snapshot {
	return rc.ticker.Snapshot()
}

// Stop cancels the ticker timers
func (rc *RefreshController) Stop() {
	rc.ticker.Stop()
}
