// Package watch follows the directory currently being browsed and reports
// content changes, driving the browser's auto-refresh.
package watch

import (
	"sync"

	"burrow/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher wraps an fsnotify watcher that follows exactly one directory at a
// time. Change notifications are coalesced: the consumer only ever needs to
// know "the listing is stale", not which events made it so.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	stop      chan struct{}

	mu      sync.Mutex
	current string
	running bool
}

// New creates a watcher. The caller must Start it and eventually Stop it.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher: fsw,
		changes:   make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}, nil
}

// Changes delivers one signal per batch of directory events.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Follow switches the watched directory. The previous directory is dropped
// first; failing to watch the new one (it may already be deleted) is logged
// and leaves the watcher idle until the next Follow.
func (w *Watcher) Follow(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.current == dir {
		return nil
	}
	if w.current != "" {
		// Removal can fail if the directory vanished; that's fine
		_ = w.fsWatcher.Remove(w.current)
		w.current = ""
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		log.WithFields(log.F("directory", dir)).Warnf("cannot watch: %v", err)
		return err
	}
	w.current = dir
	log.WithFields(log.F("directory", dir)).Debug("watching directory")
	return nil
}

// Start launches the event loop. Safe to call once.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.loop()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Chmod|fsnotify.Write) == 0 {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
				// A refresh is already pending
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("watcher error: %v", err)
		}
	}
}

// Stop shuts the watcher down and releases the inotify resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stop)
	if err := w.fsWatcher.Close(); err != nil {
		log.Warn("closing watcher: %v", err)
	}
}
