package live

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/agelens/internal/core/birth"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/core/schedule"
	"github.com/penwyp/agelens/internal/data/store"
	"github.com/penwyp/agelens/internal/presentation/interaction"
	"github.com/penwyp/agelens/internal/presentation/layout"
	"github.com/penwyp/agelens/internal/util"
)

type fakeDisplay struct {
	mu      sync.Mutex
	entered bool
	exited  bool
	views   []layout.DashboardView
	styles  []int
}

func (d *fakeDisplay) EnterAlternateScreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entered = true
}

func (d *fakeDisplay) ExitAlternateScreen() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.exited = true
}

func (d *fakeDisplay) Render(view layout.DashboardView, layoutStyle int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.views = append(d.views, view)
	d.styles = append(d.styles, layoutStyle)
}

func (d *fakeDisplay) last() (layout.DashboardView, int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.views) == 0 {
		return layout.DashboardView{}, 0, false
	}
	return d.views[len(d.views)-1], d.styles[len(d.styles)-1], true
}

type fakeKeyboard struct {
	events chan interaction.KeyEvent
	closed bool
}

func newFakeKeyboard() *fakeKeyboard {
	return &fakeKeyboard{events: make(chan interaction.KeyEvent)}
}

func (k *fakeKeyboard) Events() <-chan interaction.KeyEvent { return k.events }

func (k *fakeKeyboard) Close() error {
	k.closed = true
	return nil
}

func (k *fakeKeyboard) press(t *testing.T, key rune) {
	t.Helper()
	k.send(t, interaction.KeyEvent{Key: key, Type: interaction.KeyChar})
}

func (k *fakeKeyboard) send(t *testing.T, event interaction.KeyEvent) {
	t.Helper()
	select {
	case k.events <- event:
	case <-time.After(2 * time.Second):
		t.Fatal("key event not consumed")
	}
}

type fakeWatcher struct {
	events chan model.FileEvent
}

func (w *fakeWatcher) Events() <-chan model.FileEvent { return w.events }
func (w *fakeWatcher) Close() error                   { return nil }

type harness struct {
	orch     *Orchestrator
	display  *fakeDisplay
	keyboard *fakeKeyboard
	watcher  *fakeWatcher
	kv       *store.MemoryKV
	store    *birth.Store
	clock    *clockwork.FakeClock
	done     chan error
	cancel   context.CancelFunc
}

func newHarness(t *testing.T, withBirth bool) *harness {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	tp, err := util.NewTimeProvider("UTC", clock)
	require.NoError(t, err)

	kv := store.NewMemoryKV()
	if withBirth {
		require.NoError(t, kv.Set(model.KeyBirthDate, "1990-05-17"))
		require.NoError(t, kv.Set(model.KeyBirthTime, "08:30"))
	}
	births, err := birth.NewStore(kv, clock.Now)
	require.NoError(t, err)

	h := &harness{
		display:  &fakeDisplay{},
		keyboard: newFakeKeyboard(),
		watcher:  &fakeWatcher{events: make(chan model.FileEvent)},
		kv:       kv,
		store:    births,
		clock:    clock,
		done:     make(chan error, 1),
	}

	h.orch, err = NewOrchestrator(&LiveConfig{Timezone: "UTC"}, Dependencies{
		Birth:     births,
		Display:   h.display,
		Keyboard:  h.keyboard,
		Watcher:   h.watcher,
		Scheduler: schedule.NewScheduler(clock),
		Time:      tp,
		Width:     func() int { return 80 },
	})
	require.NoError(t, err)
	return h
}

func (h *harness) start() {
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- h.orch.Run(ctx) }()
}

func (h *harness) stop(t *testing.T) {
	t.Helper()
	h.cancel()
	select {
	case err := <-h.done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("orchestrator did not stop")
	}
}

func (h *harness) eventually(t *testing.T, cond func(view layout.DashboardView, style int) bool) {
	t.Helper()
	assert.Eventually(t, func() bool {
		view, style, ok := h.display.last()
		return ok && cond(view, style)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewOrchestrator_Validation(t *testing.T) {
	_, err := NewOrchestrator(&LiveConfig{Table: "Nope"}, Dependencies{})
	assert.ErrorIs(t, err, model.ErrUnknownTable)

	_, err = NewOrchestrator(&LiveConfig{}, Dependencies{})
	assert.Error(t, err)
}

func TestOrchestrator_RendersReadings(t *testing.T) {
	h := newHarness(t, true)
	h.start()
	defer h.stop(t)

	h.eventually(t, func(view layout.DashboardView, _ int) bool {
		return view.Birth == "1990-05-17 08:30 UTC" && view.Snapshot.Table == "Classic" && len(view.Snapshot.Readings) > 0
	})

	view, _, _ := h.display.last()
	require.NotNil(t, view.Timeline)
	assert.Equal(t, 80, view.Timeline.Cols)
	assert.Equal(t, 0, view.ActiveTab)
	assert.Len(t, view.Tables, 6)

	h.display.mu.Lock()
	assert.True(t, h.display.entered)
	h.display.mu.Unlock()
}

func TestOrchestrator_MissingBirth(t *testing.T) {
	h := newHarness(t, false)
	h.start()

	h.eventually(t, func(view layout.DashboardView, _ int) bool {
		return view.Birth == "" && view.Timeline == nil && view.Snapshot.Idle
	})

	h.keyboard.press(t, 'q')
	select {
	case err := <-h.done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("q did not quit")
	}

	h.display.mu.Lock()
	assert.True(t, h.display.exited)
	h.display.mu.Unlock()
	assert.True(t, h.keyboard.closed)
}

func TestOrchestrator_BirthChangeRestarts(t *testing.T) {
	h := newHarness(t, false)
	h.start()
	defer h.stop(t)

	h.eventually(t, func(view layout.DashboardView, _ int) bool { return view.Birth == "" })

	require.NoError(t, h.store.Set("2000-02-29", "06:15"))

	h.eventually(t, func(view layout.DashboardView, _ int) bool {
		return view.Birth == "2000-02-29 06:15 UTC" && len(view.Snapshot.Readings) > 0 && !view.Snapshot.Idle
	})
}

func TestOrchestrator_WatcherReloads(t *testing.T) {
	h := newHarness(t, true)
	h.start()
	defer h.stop(t)

	h.eventually(t, func(view layout.DashboardView, _ int) bool { return view.Birth != "" })

	// Another process rewrites the persisted state
	require.NoError(t, h.kv.Set(model.KeyBirthDate, "1985-10-26"))
	h.watcher.events <- model.FileEvent{Path: "state.db", Operation: "WRITE"}

	h.eventually(t, func(view layout.DashboardView, _ int) bool {
		return view.Birth == "1985-10-26 08:30 UTC"
	})
}

func TestOrchestrator_Keys(t *testing.T) {
	t.Run("number switches table", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, '2')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.ActiveTab == 1 && view.Snapshot.Table == "Biological"
		})
	})

	t.Run("tab wraps around", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, '6')
		h.keyboard.press(t, '\t')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.ActiveTab == 0 && view.Snapshot.Table == "Classic"
		})
	})

	t.Run("escape closes help before the group", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, 'g')
		h.keyboard.press(t, 'h')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.ShowHelp && view.Timeline != nil && view.Timeline.Zoom != nil
		})

		h.keyboard.send(t, interaction.KeyEvent{Type: interaction.KeyEscape})
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return !view.ShowHelp && view.Timeline != nil && view.Timeline.Zoom != nil
		})

		h.keyboard.send(t, interaction.KeyEvent{Type: interaction.KeyEscape})
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.Timeline != nil && view.Timeline.Zoom == nil
		})
		assert.Empty(t, h.orch.State().GetInteractionState().ActiveGroupID)
	})

	t.Run("g cycles back to none", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, 'g')
		h.keyboard.press(t, 'g')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.Timeline != nil && view.Timeline.Zoom == nil && view.Status == "Groups collapsed"
		})
	})

	t.Run("sort cycles", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, 's')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.SortLabel == "label" && view.Status == "Sorted by label"
		})
	})

	t.Run("pause and resume", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, 'p')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.Snapshot.Idle && len(view.Snapshot.Readings) > 0
		})
		assert.True(t, h.orch.State().GetInteractionState().IsPaused)

		h.keyboard.press(t, 'p')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return !view.Snapshot.Idle && view.Status == "Resumed"
		})
	})

	t.Run("focus nudges stay in range", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, ']')
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.Timeline != nil && view.Timeline.Timeline.Focus > h.clock.Now().UnixMilli()
		})

		for i := 0; i < 80; i++ {
			h.keyboard.press(t, '[')
		}
		h.eventually(t, func(view layout.DashboardView, _ int) bool {
			return view.Timeline != nil && view.Timeline.Timeline.Focus == view.Timeline.Timeline.Range.Start
		})
	})

	t.Run("t toggles layout", func(t *testing.T) {
		h := newHarness(t, true)
		h.start()
		defer h.stop(t)

		h.keyboard.press(t, 't')
		h.eventually(t, func(_ layout.DashboardView, style int) bool { return style == 1 })
	})
}

func TestOrchestrator_TickAdvancesReadings(t *testing.T) {
	h := newHarness(t, true)
	h.start()
	defer h.stop(t)

	h.eventually(t, func(view layout.DashboardView, _ int) bool { return len(view.Snapshot.Readings) > 0 })
	first, _, _ := h.display.last()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, h.clock.BlockUntilContext(ctx, 2))
	h.clock.Advance(time.Second)

	h.eventually(t, func(view layout.DashboardView, _ int) bool {
		return view.Snapshot.At.After(first.Snapshot.At)
	})
}

func TestStateManager_Status(t *testing.T) {
	sm := NewStateManager(2, 0)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2, sm.GetInteractionState().TableIndex)
	sm.SetStatus("hello", now.Add(time.Second))
	assert.Equal(t, "hello", sm.Status(now))
	assert.Empty(t, sm.Status(now.Add(2*time.Second)))

	sm.CycleLayoutStyle()
	assert.Equal(t, 1, sm.LayoutStyle())
	sm.CycleLayoutStyle()
	assert.Equal(t, 0, sm.LayoutStyle())
}
