package live

import (
	"context"
	"fmt"
	"time"

	"github.com/penwyp/agelens/internal/core/birth"
	"github.com/penwyp/agelens/internal/core/elapsed"
	"github.com/penwyp/agelens/internal/core/format"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/core/schedule"
	"github.com/penwyp/agelens/internal/core/timeline"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/presentation/interaction"
	"github.com/penwyp/agelens/internal/presentation/layout"
	"github.com/penwyp/agelens/internal/util"
)

const (
	statusDuration = 3 * time.Second
	focusStep      = 0.02
	birthLayout    = "2006-01-02 15:04 MST"
)

// Dependencies are the collaborators of the live dashboard. Keyboard and
// Watcher may be nil.
type Dependencies struct {
	Birth     BirthSource
	Display   DisplayController
	Keyboard  InputHandler
	Watcher   FileMonitor
	Scheduler schedule.Scheduler
	Time      *util.TimeProvider
	// Width returns the axis width in terminal cells
	Width func() int
}

// Orchestrator coordinates the live dashboard components
type Orchestrator struct {
	config       *LiveConfig
	deps         Dependencies
	tables       []units.Table
	stateManager *StateManager
	refreshCtrl  *RefreshController
	sorter       *interaction.ReadingSorter
	expansion    timeline.Expansion

	updates      chan struct{}
	birthChanges chan struct{}
}

// NewOrchestrator wires the ticker, state and refresh controller together
func NewOrchestrator(config *LiveConfig, deps Dependencies) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid live config: %w", err)
	}
	if deps.Birth == nil || deps.Display == nil || deps.Scheduler == nil {
		return nil, fmt.Errorf("live dashboard needs a birth source, a display and a scheduler")
	}
	if deps.Time == nil {
		deps.Time = util.GetTimeProvider()
	}
	if deps.Width == nil {
		sizer := &layout.Sizer{Fixed: config.TimelineWidth}
		deps.Width = sizer.GetMaxWidth
	}

	o := &Orchestrator{
		config:       config,
		deps:         deps,
		tables:       units.Tables(),
		stateManager: NewStateManager(config.tableIndex(), config.LayoutStyle),
		sorter:       interaction.NewReadingSorter(),
		updates:      make(chan struct{}, 1),
		birthChanges: make(chan struct{}, 1),
	}

	calc := elapsed.NewCalculator(o.tables[config.tableIndex()], format.New(config.Format))
	ticker := elapsed.NewTicker(deps.Scheduler, deps.Time.Now, calc, o.onSnapshot, elapsed.TickerOptions{
		Interval:          config.Refresh,
		HighlightDuration: config.Highlight,
	})
	o.refreshCtrl = NewRefreshController(deps.Birth, ticker, deps.Time)

	return o, nil
}

// onSnapshot runs on the scheduler goroutine; updates are coalesced and the
// main loop reads the latest snapshot from the ticker.
func (o *Orchestrator) onSnapshot(elapsed.Snapshot) {
	notify(o.updates)
}

func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Run starts the dashboard and blocks until ctx is done or the user quits
func (o *Orchestrator) Run(ctx context.Context) error {
	defer o.Close()

	unsubscribe := o.deps.Birth.Subscribe(func(birth.Instant, bool) {
		notify(o.birthChanges)
	})
	defer unsubscribe()

	o.deps.Display.EnterAlternateScreen()
	defer o.deps.Display.ExitAlternateScreen()

	o.refreshCtrl.Restart()
	o.stateManager.SetSnapshot(o.refreshCtrl.Snapshot())
	o.updateDisplay()

	var keyEvents <-chan interaction.KeyEvent
	if o.deps.Keyboard != nil {
		keyEvents = o.deps.Keyboard.Events()
	}
	var fileEvents <-chan model.FileEvent
	if o.deps.Watcher != nil {
		fileEvents = o.deps.Watcher.Events()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-o.updates:
			o.stateManager.SetSnapshot(o.refreshCtrl.Snapshot())
			o.updateDisplay()

		case <-o.birthChanges:
			util.LogInfo("Birth date changed, restarting readings")
			o.expansion.Close()
			o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
				state.FocusSet = false
			})
			o.refreshCtrl.Restart()
			o.stateManager.SetSnapshot(o.refreshCtrl.Snapshot())
			o.updateDisplay()

		case event, ok := <-fileEvents:
			if !ok {
				fileEvents = nil
				continue
			}
			util.LogDebugf("State file event: %s %s", event.Operation, event.Path)
			o.reload()
			o.updateDisplay()

		case event, ok := <-keyEvents:
			if !ok {
				keyEvents = nil
				continue
			}
			if o.handleKeyboard(event) {
				return nil
			}
			o.updateDisplay()
		}
	}
}

// reload re-reads the persisted birth instant; a change arrives through the
// subscription.
func (o *Orchestrator) reload() bool {
	changed, err := o.deps.Birth.Reload()
	if err != nil {
		util.LogWarnf("Failed to reload birth date: %v", err)
		o.setStatus("Reload failed: " + err.Error())
		return false
	}
	if !changed {
		util.LogDebug("Birth date unchanged after reload")
	}
	return true
}

// handleKeyboard applies one key and reports whether the dashboard should exit
func (o *Orchestrator) handleKeyboard(event interaction.KeyEvent) bool {
	if event.IsQuit() {
		return true
	}

	switch event.Type {
	case interaction.KeyEscape:
		o.handleEscape()
		return false
	case interaction.KeyLeft, interaction.KeyDown:
		o.nudgeFocus(-focusStep)
		return false
	case interaction.KeyRight, interaction.KeyUp:
		o.nudgeFocus(focusStep)
		return false
	}

	if event.IsTab() {
		state := o.stateManager.GetInteractionState()
		o.selectTable((state.TableIndex + 1) % len(o.tables))
		return false
	}

	switch event.Key {
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		index := int(event.Key - '1')
		if index < len(o.tables) {
			o.selectTable(index)
		}
	case 's', 'S':
		o.sorter.Cycle()
		o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
			state.SortMode = int(o.sorter.Field())
		})
		o.setStatus("Sorted by " + o.sorter.Label())
	case 'g', 'G':
		o.cycleGroup()
	case '[':
		o.nudgeFocus(-focusStep)
	case ']':
		o.nudgeFocus(focusStep)
	case 'h', 'H', '?':
		o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
			state.ShowHelp = !state.ShowHelp
		})
	case 't', 'T':
		o.stateManager.CycleLayoutStyle()
	case 'p', 'P':
		paused := o.refreshCtrl.TogglePause()
		o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
			state.IsPaused = paused
		})
		o.stateManager.SetSnapshot(o.refreshCtrl.Snapshot())
		if paused {
			o.setStatus("Paused")
		} else {
			o.setStatus("Resumed")
		}
	case 'r', 'R':
		if o.reload() {
			o.setStatus("Birth date reloaded")
		}
	}
	return false
}

// handleEscape closes the help overlay first, then the expanded group
func (o *Orchestrator) handleEscape() {
	state := o.stateManager.GetInteractionState()
	if state.ShowHelp {
		o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
			state.ShowHelp = false
		})
		return
	}
	o.expansion.Close()
	o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
		state.ActiveGroupID = ""
	})
}

func (o *Orchestrator) selectTable(index int) {
	o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
		state.TableIndex = index
	})
	o.refreshCtrl.SetTable(o.tables[index])
	o.stateManager.SetSnapshot(o.refreshCtrl.Snapshot())
}

func (o *Orchestrator) cycleGroup() {
	view, ok := o.timelineView(o.deps.Time.Now())
	if !ok {
		return
	}
	active := o.expansion.Cycle(view.Items)
	o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
		state.ActiveGroupID = active
	})
	if active == "" {
		o.setStatus("Groups collapsed")
	}
}

func (o *Orchestrator) nudgeFocus(fraction float64) {
	now := o.deps.Time.Now()
	lt, ok := o.lifeTimeline(now)
	if !ok {
		return
	}
	o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
		focus := lt.Focus
		if state.FocusSet {
			focus = state.FocusMillis
		}
		state.FocusMillis = timeline.Nudge(focus, fraction, lt.Range)
		state.FocusSet = true
	})
}

func (o *Orchestrator) setStatus(message string) {
	o.stateManager.SetStatus(message, o.deps.Time.Now().Add(statusDuration))
}

func (o *Orchestrator) lifeTimeline(now time.Time) (timeline.LifeTimeline, bool) {
	instant, ok := o.deps.Birth.Get()
	if !ok {
		return timeline.LifeTimeline{}, false
	}
	lt := timeline.BuildLifeTimeline(instant.In(o.deps.Time.Location()), now)
	state := o.stateManager.GetInteractionState()
	if state.FocusSet {
		lt.Focus = lt.Range.Clamp(state.FocusMillis)
	}
	return lt, true
}

// timelineView lays out the life timeline, collapsing an expansion whose
// group vanished after a resize
func (o *Orchestrator) timelineView(now time.Time) (layout.TimelineView, bool) {
	lt, ok := o.lifeTimeline(now)
	if !ok {
		return layout.TimelineView{}, false
	}
	view := layout.NewTimelineView(lt, o.deps.Width(), o.expansion.Active(), now)
	if o.expansion.Sync(view.Items) {
		o.stateManager.UpdateInteractionState(func(state *model.InteractionState) {
			state.ActiveGroupID = ""
		})
	}
	return view, true
}

// buildView assembles the frame from the current state
func (o *Orchestrator) buildView() layout.DashboardView {
	now := o.deps.Time.Now()
	state := o.stateManager.GetInteractionState()
	snapshot := o.stateManager.GetSnapshot()
	snapshot.Readings = o.sorter.Sort(snapshot.Readings)

	view := layout.DashboardView{
		Now:       now,
		Tables:    units.Names(),
		ActiveTab: state.TableIndex,
		ShowHelp:  state.ShowHelp,
		Status:    o.stateManager.Status(now),
		Width:     o.deps.Width(),
	}
	if o.sorter.Field() != interaction.SortByTable {
		view.SortLabel = o.sorter.Label()
	}

	if instant, ok := o.deps.Birth.Get(); ok {
		view.Birth = instant.In(o.deps.Time.Location()).Format(birthLayout)
		snapshot.Idle = state.IsPaused
		if tv, ok := o.timelineView(now); ok {
			view.Timeline = &tv
		}
	}
	view.Snapshot = snapshot
	return view
}

func (o *Orchestrator) updateDisplay() {
	o.deps.Display.Render(o.buildView(), o.stateManager.LayoutStyle())
}

// Close stops the ticker and releases the input and watcher resources
func (o *Orchestrator) Close() {
	o.refreshCtrl.Stop()
	if o.deps.Keyboard != nil {
		if err := o.deps.Keyboard.Close(); err != nil {
			util.LogWarnf("Failed to close keyboard: %v", err)
		}
	}
	if o.deps.Watcher != nil {
		if err := o.deps.Watcher.Close(); err != nil {
			util.LogWarnf("Failed to close watcher: %v", err)
		}
	}
}

// State exposes the state manager for inspection
func (o *Orchestrator) State() *StateManager {
	return o.stateManager
}
