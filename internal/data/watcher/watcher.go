// Package watcher reports changes to the persisted state file.
package watcher

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/penwyp/agelens/internal/core/model"
	"github.com/penwyp/agelens/internal/util"
)

// StateWatcher watches the directory holding the state file and emits an event
// whenever that file is written, created or replaced. The directory is watched
// rather than the file so atomic replacements are not missed.
type StateWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan model.FileEvent
	done    chan struct{}
	once    sync.Once
	err     error
}

// NewStateWatcher starts watching path's parent directory.
func NewStateWatcher(path string) (*StateWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	sw := &StateWatcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan model.FileEvent, 16),
		done:    make(chan struct{}),
	}

	go sw.processEvents()

	return sw, nil
}

func (sw *StateWatcher) processEvents() {
	defer close(sw.events)

	for {
		select {
		case <-sw.done:
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !sw.relevant(event) {
				continue
			}

			fileEvent := model.FileEvent{
				Path:      event.Name,
				Operation: event.Op.String(),
			}
			select {
			case sw.events <- fileEvent:
			default:
				// A reload is already pending
				util.LogDebugf("Dropping state file event %s: reload pending", fileEvent.Operation)
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			util.LogError("State file monitoring error: " + err.Error())
		}
	}
}

func (sw *StateWatcher) relevant(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != sw.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// Events returns the change notifications. The channel closes after Close.
func (sw *StateWatcher) Events() <-chan model.FileEvent {
	return sw.events
}

// Path returns the watched file's absolute path.
func (sw *StateWatcher) Path() string {
	return sw.path
}

// Close stops watching. Later calls return the first call's result.
func (sw *StateWatcher) Close() error {
	sw.once.Do(func() {
		close(sw.done)
		sw.err = sw.watcher.Close()
	})
	return sw.err
}
