package util

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TimeProvider is the process-wide source of "now" in the configured timezone
type TimeProvider struct {
	location *time.Location
	clock    clockwork.Clock
	mu       sync.RWMutex
}

var (
	globalTimeProvider *TimeProvider
	mu                 sync.Mutex
)

// NewTimeProvider creates a provider for timezone on clock (nil = real clock)
func NewTimeProvider(timezone string, clock clockwork.Clock) (*TimeProvider, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	provider := &TimeProvider{clock: clock}
	if err := provider.SetTimezone(timezone); err != nil {
		return nil, err
	}
	return provider, nil
}

// InitializeTimeProvider initializes the global time provider with the specified timezone
func InitializeTimeProvider(timezone string) error {
	provider, err := NewTimeProvider(timezone, nil)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	globalTimeProvider = provider
	return nil
}

// GetTimeProvider returns the global time provider, defaulting to Local
func GetTimeProvider() *TimeProvider {
	mu.Lock()
	defer mu.Unlock()
	if globalTimeProvider == nil {
		globalTimeProvider = &TimeProvider{location: time.Local, clock: clockwork.NewRealClock()}
	}
	return globalTimeProvider
}

// SetTimezone updates the timezone for the time provider
func (tp *TimeProvider) SetTimezone(timezone string) error {
	loc := time.Local
	if timezone != "" && timezone != "Local" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return fmt.Errorf("invalid timezone '%s': %w\nValid examples: Local, UTC, Europe/Rome, America/New_York, Asia/Tokyo", timezone, err)
		}
		loc = l
	}

	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.location = loc
	return nil
}

// SetClock swaps the underlying clock, e.g. for a fake clock in tests
func (tp *TimeProvider) SetClock(clock clockwork.Clock) {
	tp.mu.Lock()
	defer tp.mu.Unlock()
	tp.clock = clock
}

// Clock returns the underlying clock
func (tp *TimeProvider) Clock() clockwork.Clock {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.clock
}

// Location returns the configured timezone
func (tp *TimeProvider) Location() *time.Location {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.location
}

// Now returns the current time in the configured timezone
func (tp *TimeProvider) Now() time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return tp.clock.Now().In(tp.location)
}

// In converts a time to the configured timezone
func (tp *TimeProvider) In(t time.Time) time.Time {
	tp.mu.RLock()
	defer tp.mu.RUnlock()
	return t.In(tp.location)
}

// OffsetMinutes returns the configured zone's UTC offset at t, in minutes
func (tp *TimeProvider) OffsetMinutes(t time.Time) int {
	_, offset := tp.In(t).Zone()
	return offset / 60
}

// Format formats a time according to the layout in the configured timezone
func (tp *TimeProvider) Format(t time.Time, layout string) string {
	return tp.In(t).Format(layout)
}
