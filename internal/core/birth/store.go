package birth

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/util"
)

// KV is the persistence adapter the store reads and writes through.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// batchKV is implemented by adapters that can write several keys atomically.
type batchKV interface {
	SetAll(pairs map[string]string) error
}

// Listener receives the new instant; set is false while no birth date is stored.
type Listener func(instant Instant, set bool)

// Store is the single source of truth for the birth instant.
type Store struct {
	mu      sync.RWMutex
	kv      KV
	now     func() time.Time
	current Instant
	set     bool

	listeners map[int]Listener
	nextID    int
}

// NewStore rehydrates the birth instant from kv. now bounds the accepted birth
// year; nil means time.Now.
func NewStore(kv KV, now func() time.Time) (*Store, error) {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		kv:        kv,
		now:       now,
		listeners: make(map[int]Listener),
	}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns the current instant and whether one is set.
func (s *Store) Get() (Instant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.set
}

// Require returns the current instant or model.ErrMissingInput.
func (s *Store) Require() (Instant, error) {
	instant, ok := s.Get()
	if !ok {
		return Instant{}, model.ErrMissingInput
	}
	return instant, nil
}

// Set validates and stores both the date and the time.
func (s *Store) Set(date, hhmm string) error {
	instant, err := NewInstant(date, hhmm, s.now())
	if err != nil {
		return err
	}
	if err := s.write(map[string]string{
		model.KeyBirthDate: instant.DateString(),
		model.KeyBirthTime: instant.TimeString(),
	}); err != nil {
		return err
	}
	s.update(instant, true)
	return nil
}

// SetDate stores a new date, keeping the stored time (or the default time when
// none is stored yet).
func (s *Store) SetDate(date string) error {
	hhmm, found, err := s.kv.Get(model.KeyBirthTime)
	if err != nil {
		return fmt.Errorf("failed to read birth time: %w", err)
	}
	if !found {
		hhmm = model.DefaultBirthTime
	}
	return s.Set(date, hhmm)
}

// SetTime stores a new time. With no date stored the instant stays unset.
func (s *Store) SetTime(hhmm string) error {
	h, m, err := ParseTime(hhmm)
	if err != nil {
		return err
	}
	normalized := fmt.Sprintf("%02d:%02d", h, m)
	if err := s.write(map[string]string{model.KeyBirthTime: normalized}); err != nil {
		return err
	}

	s.mu.RLock()
	current, set := s.current, s.set
	s.mu.RUnlock()
	if !set {
		return nil
	}
	current.Hour, current.Minute = h, m
	s.update(current, true)
	return nil
}

// Subscribe registers fn for change notifications and returns its removal func.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Reload re-reads the persisted keys and notifies listeners when the value
// changed. Stored values that no longer validate read as unset.
func (s *Store) Reload() (bool, error) {
	date, dateFound, err := s.kv.Get(model.KeyBirthDate)
	if err != nil {
		return false, fmt.Errorf("failed to read birth date: %w", err)
	}
	hhmm, timeFound, err := s.kv.Get(model.KeyBirthTime)
	if err != nil {
		return false, fmt.Errorf("failed to read birth time: %w", err)
	}

	var (
		instant Instant
		set     bool
	)
	if dateFound && timeFound {
		instant, err = NewInstant(date, hhmm, s.now())
		if err != nil {
			util.LogWarnf("Ignoring stored birth instant: %v", err)
		} else {
			set = true
		}
	}

	s.mu.RLock()
	changed := set != s.set || instant != s.current
	s.mu.RUnlock()
	if changed {
		s.update(instant, set)
	}
	return changed, nil
}

func (s *Store) write(pairs map[string]string) error {
	if b, ok := s.kv.(batchKV); ok {
		if err := b.SetAll(pairs); err != nil {
			return fmt.Errorf("failed to persist birth instant: %w", err)
		}
		return nil
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := s.kv.Set(k, pairs[k]); err != nil {
			return fmt.Errorf("failed to persist %s: %w", k, err)
		}
	}
	return nil
}

func (s *Store) update(instant Instant, set bool) {
	s.mu.Lock()
	s.current, s.set = instant, set
	listeners := make([]Listener, 0, len(s.listeners))
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(instant, set)
	}
}
