// Package watch implements the file-watching collaborator spec.md §1
// names as out of the core's scope: a simple mtime-polling loop that
// re-invokes a callback whenever a watched file's modification time
// advances. No example repo in the retrieval pack imports an OS-level
// notification library (inotify/kqueue wrappers, fsnotify, etc.), so this
// stays on the standard library rather than inventing a dependency the
// corpus never reaches for (see DESIGN.md).
package watch

import (
	"os"
	"time"
)

// Watcher polls a fixed set of files for modification-time changes.
type Watcher struct {
	paths    []string
	interval time.Duration
	mtimes   map[string]time.Time
}

// New creates a Watcher over paths, polling every interval.
func New(paths []string, interval time.Duration) *Watcher {
	return &Watcher{paths: paths, interval: interval, mtimes: make(map[string]time.Time)}
}

// Run blocks, calling onChange with the subset of paths whose mtime
// advanced since the last poll, until stop is closed. The first poll
// primes mtimes without calling onChange — only genuine changes after
// startup are reported.
func (w *Watcher) Run(stop <-chan struct{}, onChange func(changed []string)) {
	w.poll(nil)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			w.poll(onChange)
		}
	}
}

func (w *Watcher) poll(onChange func(changed []string)) {
	var changed []string
	for _, p := range w.paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		mtime := info.ModTime()
		if prev, ok := w.mtimes[p]; !ok || mtime.After(prev) {
			w.mtimes[p] = mtime
			if ok {
				changed = append(changed, p)
			}
		}
	}
	if onChange != nil && len(changed) > 0 {
		onChange(changed)
	}
}
