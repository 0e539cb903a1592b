package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"tabswitch/internal/domain"
	"tabswitch/internal/eventbus"
)

// DebounceDelay coalesces bursts of writes into one reload
const DebounceDelay = 50 * time.Millisecond

// Watcher reloads a manifest whenever it changes and publishes the result
// as ContentReloaded, or Error when the new manifest does not load.
type Watcher struct {
	path    string
	bus     eventbus.EventBus
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the manifest's directory. Watching the
// directory catches editors that save by renaming a temp file over the
// original.
func NewWatcher(path string, bus eventbus.EventBus) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{path: abs, bus: bus, watcher: fw}, nil
}

// Path returns the absolute manifest path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers reloads until ctx is cancelled, then releases the watcher
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(DebounceDelay)
			} else {
				debounce.Reset(DebounceDelay)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("manifest watcher error", "path", w.path, "error", err)
			w.bus.Publish(domain.ErrorEvent{Message: "manifest watcher failed", Err: err})
		}
	}
}

func (w *Watcher) reload() {
	tabs, err := LoadManifest(w.path)
	if err != nil {
		// Possibly mid-write; the completing write triggers another reload
		log.Warn("manifest reload failed", "path", w.path, "error", err)
		w.bus.Publish(domain.ErrorEvent{Message: "manifest reload failed", Err: err})
		return
	}
	log.Info("manifest reloaded", "path", w.path, "tabs", len(tabs))
	w.bus.Publish(domain.ContentReloadedEvent{Source: w.path, Tabs: tabs})
}
