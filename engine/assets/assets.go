package assets

import (
	"errors"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/geodesic/engine/core"
)

// ConfigWatcher reports writes to a single file. The parent directory is
// watched so editors that save by rename are still seen.
type ConfigWatcher struct {
	path string

	mutex    sync.Mutex
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	events   chan string
	errors   chan error
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	cw := &ConfigWatcher{
		path:     abs,
		fsnotify: fsWatch,
		events:   make(chan string),
		errors:   make(chan error),
		done:     make(chan struct{}),
	}
	go cw.start()
	return cw, nil
}

// Events delivers the watched path each time it is created or written.
func (cw *ConfigWatcher) Events() <-chan string {
	return cw.events
}

func (cw *ConfigWatcher) Errors() <-chan error {
	return cw.errors
}

// Close stops the watcher. Events and Errors are closed afterwards.
func (cw *ConfigWatcher) Close() error {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	if cw.isClosed {
		return errors.New("config watcher already closed")
	}
	cw.isClosed = true
	close(cw.done)
	return nil
}

func (cw *ConfigWatcher) start() {
	defer func() {
		cw.fsnotify.Close()
		close(cw.events)
		close(cw.errors)
	}()

	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			// Handle create or modify events
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			select {
			case cw.events <- cw.path:
			case <-cw.done:
				return
			}

		case err, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())
			select {
			case cw.errors <- err:
			case <-cw.done:
				return
			}

		case <-cw.done:
			return
		}
	}
}
