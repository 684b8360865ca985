package assets

import (
	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/animacore/engine/core"
)

// Watcher watches a directory of shader sources and invokes a callback
// whenever one changes, driving shader hot-reload. The teacher carried
// fsnotify as a dependency but never wired it into engine.go/
// application.go; this is the first place in the rebuild it is actually
// exercised.
type Watcher struct {
	inner   *fsnotify.Watcher
	done    chan struct{}
	onWrite func(path string)
}

// NewWatcher starts watching dir (non-recursively) and calls onWrite
// with the changed file's path for every write or create event.
func NewWatcher(dir string, onWrite func(path string)) (*Watcher, error) {
	inner, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, core.NewError(core.KindAPIInitFailed, "assets: fsnotify.NewWatcher: %v", err)
	}
	if err := inner.Add(dir); err != nil {
		inner.Close()
		return nil, core.NewError(core.KindFileNotFound, "assets: watch %q: %v", dir, err)
	}

	w := &Watcher{inner: inner, done: make(chan struct{}), onWrite: onWrite}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.inner.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.onWrite(event.Name)
			}
		case err, ok := <-w.inner.Errors:
			if !ok {
				return
			}
			core.LogError("assets: watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher's background goroutine and releases the
// underlying OS watch handles.
func (w *Watcher) Close() error {
	close(w.done)
	return w.inner.Close()
}
