package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reloader watches the config file for changes and triggers hot-reload.
type Reloader struct {
	watcher *fsnotify.Watcher
	store   *Store
}

// NewReloader creates a file watcher over the store's backing file.
func NewReloader(store *Store) (*Reloader, error) {
	if store.path == "" {
		return nil, fmt.Errorf("no config file to watch")
	}
	if _, err := os.Stat(store.path); err != nil {
		return nil, fmt.Errorf("cannot watch config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(store.path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %q: %w", store.path, err)
	}

	return &Reloader{watcher: watcher, store: store}, nil
}

// Run watches for file changes and reloads configuration. Blocks until ctx
// is cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()

	// Debounce: wait 500ms after last write before reloading
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return nil

		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(500*time.Millisecond, func() {
					if err := r.store.Reload(); err != nil {
						fmt.Fprintf(os.Stderr, "hot-reload failed: %v\n", err)
					} else {
						fmt.Fprintf(os.Stderr, "hot-reload: config reloaded\n")
					}
				})
			}

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "file watcher error: %v\n", err)
		}
	}
}
