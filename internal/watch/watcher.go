// Package watch tells the explorer when the directory it shows has changed
// on disk, so the grid can be refreshed without user action.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"wofiles/internal/errors"
	"wofiles/internal/log"
)

// Change reports that the watched directory changed. Bursts of events are
// folded into one Change carrying the last event seen.
type Change struct {
	Dir       string
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

const relevantOps = fsnotify.Create | fsnotify.Remove | fsnotify.Rename | fsnotify.Write

// Watcher follows a single directory at a time using fsnotify.
type Watcher struct {
	debounce time.Duration

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Debounced changes, buffered by one: a pending refresh covers any
	// change that arrives before it is consumed.
	changeChan chan Change

	stopChan chan struct{}
	done     chan struct{}

	// Lock for the watched directory and running state
	mutex   sync.RWMutex
	dir     string
	running bool
}

// New creates a watcher that waits for debounce of quiet before reporting a
// change. It watches nothing until Watch is called.
func New(debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	return &Watcher{
		debounce:   debounce,
		fsWatcher:  fsWatcher,
		changeChan: make(chan Change, 1),
	}, nil
}

// Watch replaces the watched directory with dir.
func (w *Watcher) Watch(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "error accessing directory")
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	clean := filepath.Clean(dir)

	w.mutex.Lock()
	defer w.mutex.Unlock()

	if clean == w.dir {
		return nil
	}
	if w.dir != "" {
		if err := w.fsWatcher.Remove(w.dir); err != nil {
			log.LogWithFields(log.F("directory", w.dir)).Debugf("removing watch: %v", err)
		}
	}
	if err := w.fsWatcher.Add(clean); err != nil {
		w.dir = ""
		return errors.Wrapf(err, "failed to add directory %s to watcher", clean)
	}
	w.dir = clean

	log.LogWithFields(log.F("directory", clean)).Debug("Watching directory")
	return nil
}

// Dir returns the directory currently watched.
func (w *Watcher) Dir() string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.dir
}

// Changes returns the channel that delivers debounced changes. It is
// closed by Stop.
func (w *Watcher) Changes() <-chan Change {
	return w.changeChan
}

// Start begins processing events in a separate goroutine.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.running {
		return fmt.Errorf("watcher already running")
	}
	if w.done != nil {
		return fmt.Errorf("watcher cannot be restarted")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.stopChan, w.done)
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer close(w.changeChan)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending Change
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			dir := w.Dir()
			if filepath.Dir(event.Name) != dir {
				continue
			}
			pending = Change{Dir: dir, Path: event.Name, Op: event.Op, Timestamp: time.Now()}

			if w.debounce <= 0 {
				w.emit(pending)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.emit(pending)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

func (w *Watcher) emit(c Change) {
	// A directory left since the event was queued is no longer interesting.
	if c.Dir != w.Dir() {
		return
	}
	select {
	case w.changeChan <- c:
	default:
		log.LogWithFields(log.F("directory", c.Dir)).Debug("Refresh already pending, folding change")
	}
}

// Stop halts the watcher and closes the change channel.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		if w.done == nil {
			// Never started: release the fsnotify handle and retire the watcher.
			w.done = make(chan struct{})
			close(w.done)
			close(w.changeChan)
			if err := w.fsWatcher.Close(); err != nil {
				log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
			}
		}
		w.mutex.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	done := w.done
	w.mutex.Unlock()

	<-done
	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
}
