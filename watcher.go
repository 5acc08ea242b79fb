package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"

	"gallery/internal/gallery"
	"gallery/internal/source"
)

// watchDebounce coalesces bursts of events (e.g. a copy of many files) into one rescan
const watchDebounce = 500 * time.Millisecond

// dirWatcher sends a Reload whenever the watched directory changes.
type dirWatcher struct {
	w    *fsnotify.Watcher
	send func(gallery.Message) bool

	mu      sync.Mutex
	current string
	done    chan struct{}
}

func newDirWatcher(send func(gallery.Message) bool) (*dirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("new watcher: %w", err)
	}
	dw := &dirWatcher{w: w, send: send, done: make(chan struct{})}
	go dw.run()
	return dw, nil
}

// Watch replaces the watched path. An archive is watched through its
// parent directory.
func (dw *dirWatcher) Watch(path string) {
	target := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		target = filepath.Dir(path)
	}

	dw.mu.Lock()
	defer dw.mu.Unlock()
	if target == dw.current {
		return
	}
	if dw.current != "" {
		if err := dw.w.Remove(dw.current); err != nil {
			klog.V(1).Infof("unwatch %s: %v", dw.current, err)
		}
	}
	dw.current = ""
	if err := dw.w.Add(target); err != nil {
		klog.Warningf("watch %s: %v", target, err)
		return
	}
	dw.current = target
	klog.V(1).Infof("watching %s", target)
}

func (dw *dirWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	return source.IsSupportedExt(event.Name) || source.IsArchive(event.Name)
}

func (dw *dirWatcher) run() {
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-dw.w.Events:
			if !ok {
				return
			}
			klog.V(2).Infof("watch event: %s", event)
			if dw.relevant(event) {
				pending = time.After(watchDebounce)
			}
		case err, ok := <-dw.w.Errors:
			if !ok {
				return
			}
			klog.Warningf("watch error: %v", err)
		case <-pending:
			pending = nil
			if !dw.send(gallery.Reload{}) {
				return
			}
		case <-dw.done:
			return
		}
	}
}

func (dw *dirWatcher) Close() error {
	close(dw.done)
	return dw.w.Close()
}
