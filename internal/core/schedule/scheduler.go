// Package schedule runs periodic and one-shot callbacks on an injectable clock.
package schedule

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// CancelFunc stops a scheduled callback. Calling it more than once is a no-op.
type CancelFunc func()

// Scheduler schedules callbacks. Callbacks run on their own goroutine.
type Scheduler interface {
	Every(interval time.Duration, fn func()) CancelFunc
	After(delay time.Duration, fn func()) CancelFunc
}

// ClockScheduler implements Scheduler on a clockwork.Clock
type ClockScheduler struct {
	clock clockwork.Clock
}

// NewScheduler creates a scheduler on clock; nil means the real clock.
func NewScheduler(clock clockwork.Clock) *ClockScheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockScheduler{clock: clock}
}

// Clock returns the underlying clock.
func (s *ClockScheduler) Clock() clockwork.Clock {
	return s.clock
}

// Every calls fn once per interval until cancelled.
func (s *ClockScheduler) Every(interval time.Duration, fn func()) CancelFunc {
	ticker := s.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.Chan():
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// After calls fn once after delay unless cancelled first.
func (s *ClockScheduler) After(delay time.Duration, fn func()) CancelFunc {
	timer := s.clock.AfterFunc(delay, fn)
	return func() {
		timer.Stop()
	}
}
