package elapsed

import (
	"sync"
	"time"

	"github.com/penwyp/agelens/internal/core/constants"
	"github.com/penwyp/agelens/internal/core/schedule"
	"github.com/penwyp/agelens/internal/core/units"
	"github.com/penwyp/agelens/internal/util"
)

// Snapshot is what the ticker last published
type Snapshot struct {
	Table    string
	Readings []Reading
	At       time.Time
	Idle     bool
}

// TickerOptions tunes the cadence; zero values use the package defaults.
type TickerOptions struct {
	Interval          time.Duration
	HighlightDuration time.Duration
}

// Ticker recomputes readings every interval and clears the changed flags a
// short while after each tick. A pending clear is replaced, never stacked.
type Ticker struct {
	mu        sync.Mutex
	scheduler schedule.Scheduler
	now       func() time.Time
	calc      *Calculator
	onUpdate  func(Snapshot)
	interval  time.Duration
	highlight time.Duration

	birth       time.Time
	running     bool
	generation  uint64
	cancelTick  schedule.CancelFunc
	cancelClear schedule.CancelFunc
	latest      Snapshot
}

// NewTicker creates an idle ticker. onUpdate may be nil.
func NewTicker(scheduler schedule.Scheduler, now func() time.Time, calc *Calculator, onUpdate func(Snapshot), opts TickerOptions) *Ticker {
	if opts.Interval <= 0 {
		opts.Interval = constants.TickInterval
	}
	if opts.HighlightDuration <= 0 {
		opts.HighlightDuration = constants.HighlightDuration
	}
	return &Ticker{
		scheduler: scheduler,
		now:       now,
		calc:      calc,
		onUpdate:  onUpdate,
		interval:  opts.Interval,
		highlight: opts.HighlightDuration,
		latest:    Snapshot{Table: calc.Table().Name, Idle: true},
	}
}

// Start begins ticking against birth, cancelling any previous timers first.
// The first tick runs before Start returns.
func (t *Ticker) Start(birth time.Time) {
	t.mu.Lock()
	t.stopLocked()
	t.generation++
	gen := t.generation
	t.birth = birth
	t.running = true
	t.calc.Reset()
	t.mu.Unlock()

	t.tick(gen)

	t.mu.Lock()
	if t.generation == gen {
		t.cancelTick = t.scheduler.Every(t.interval, func() { t.tick(gen) })
	}
	t.mu.Unlock()
}

// SetTable switches the table; a running ticker restarts on the new table.
func (t *Ticker) SetTable(table units.Table) {
	t.mu.Lock()
	running, birth := t.running, t.birth
	t.calc.SetTable(table)
	if !running {
		t.latest = Snapshot{Table: table.Name, Idle: true}
	}
	t.mu.Unlock()

	if running {
		t.Start(birth)
	}
}

// Stop cancels every timer and leaves the last snapshot in place.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
	t.generation++
	t.running = false
}

// Idle stops the ticker and publishes an empty snapshot (birth date unset).
func (t *Ticker) Idle() {
	t.Stop()

	t.mu.Lock()
	t.latest = Snapshot{Table: t.calc.Table().Name, Idle: true, At: t.now()}
	snapshot := t.latest
	t.mu.Unlock()

	t.publish(snapshot)
}

// Running reports whether timers are active
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// Snapshot returns a copy of the last published snapshot
func (t *Ticker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return copySnapshot(t.latest)
}

func (t *Ticker) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.generation || !t.running {
		t.mu.Unlock()
		return
	}

	now := t.now()
	readings := t.calc.Compute(t.birth, now)
	t.latest = Snapshot{
		Table:    t.calc.Table().Name,
		Readings: readings,
		At:       now,
	}

	if t.cancelClear != nil {
		t.cancelClear()
	}
	t.cancelClear = t.scheduler.After(t.highlight, func() { t.clearChanged(gen) })

	snapshot := copySnapshot(t.latest)
	t.mu.Unlock()

	util.LogDebugf("Tick %s: %d readings", snapshot.Table, len(snapshot.Readings))
	t.publish(snapshot)
}

func (t *Ticker) clearChanged(gen uint64) {
	t.mu.Lock()
	if gen != t.generation {
		t.mu.Unlock()
		return
	}
	cleared := false
	for i := range t.latest.Readings {
		if t.latest.Readings[i].Changed {
			t.latest.Readings[i].Changed = false
			cleared = true
		}
	}
	t.cancelClear = nil
	snapshot := copySnapshot(t.latest)
	t.mu.Unlock()

	if cleared {
		t.publish(snapshot)
	}
}

func (t *Ticker) publish(snapshot Snapshot) {
	if t.onUpdate != nil {
		t.onUpdate(snapshot)
	}
}

func (t *Ticker) stopLocked() {
	if t.cancelTick != nil {
		t.cancelTick()
		t.cancelTick = nil
	}
	if t.cancelClear != nil {
		t.cancelClear()
		t.cancelClear = nil
	}
}

func copySnapshot(s Snapshot) Snapshot {
	out := s
	if s.Readings != nil {
		out.Readings = make([]Reading, len(s.Readings))
		copy(out.Readings, s.Readings)
	}
	return out
}
