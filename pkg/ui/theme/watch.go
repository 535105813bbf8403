package theme

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/odvcencio/marquee/pkg/errors"
)

// DefaultWatchDebounce is the quiet period after the last write before a
// change is reported.
const DefaultWatchDebounce = 100 * time.Millisecond

// WatchOptions configures a Watcher.
type WatchOptions struct {
	// Debounce coalesces bursts of writes. Zero means DefaultWatchDebounce.
	Debounce time.Duration

	// OnError receives watcher failures, at most once per second.
	OnError func(error)
}

// Watcher reports changes to a single theme file.
//
// The parent directory is watched rather than the file itself so that
// editors replacing the file through a rename are still noticed.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onChange func(path string)
	onError  func(error)
	debounce time.Duration
	errLimit rate.Sometimes

	mu    sync.Mutex
	timer *time.Timer

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Watch starts watching path. onChange runs on the watcher goroutine; callers
// that touch UI state should hand the work to the application's sink.
func Watch(path string, onChange func(path string), opts WatchOptions) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeThemeWatch, "invalid theme path").
			WithContext("path", path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeThemeWatch, "failed to create watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, errors.Wrap(err, errors.ErrCodeThemeWatch, "failed to watch theme directory").
			WithContext("path", path)
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		watcher:  fw,
		onChange: onChange,
		onError:  opts.OnError,
		debounce: debounce,
		errLimit: rate.Sometimes{Interval: time.Second},
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	go w.processEvents()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending notifications are dropped.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		w.cancel()
		err = w.watcher.Close()
		<-w.done

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
	})
	return err
}

func (w *Watcher) processEvents() {
	defer close(w.done)
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.errLimit.Do(func() {
					w.onError(errors.Wrap(err, errors.ErrCodeThemeWatch, "watch error").
						WithContext("path", w.path))
				})
			}
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	if w.ctx.Err() != nil {
		return
	}
	if w.onChange != nil {
		w.onChange(w.path)
	}
}
