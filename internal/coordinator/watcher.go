package coordinator

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sshtint/internal/logging"
)

// debounceDelay batches rapid editor save events into one pipeline run.
const debounceDelay = 500 * time.Millisecond

// watch sets up automatic SSH config file watching. Change events feed the
// trigger queue; the run loop does the actual work, so detection stays
// decoupled from pipeline execution.
func (c *Coordinator) watch(ctx context.Context) error {
	configPath := c.settings.SSHConfig
	log := logging.Component("watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := watcher.Add(configPath); err != nil {
		// The config may not exist yet; watch its directory so creation is
		// picked up.
		log.Debug("watching config directory instead", "path", configPath, "error", err)
		if dirErr := watcher.Add(filepath.Dir(configPath)); dirErr != nil {
			watcher.Close()
			return dirErr
		}
	}

	var debounce *time.Timer
	var debounceMu sync.Mutex

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if event.Name != configPath {
					continue
				}
				log.Debug("filesystem event on config file", "event", event.Op.String(), "file", event.Name)

				// Editors using atomic writes replace the file, which drops
				// it from the watch list; re-add with backoff. The rewatch
				// enqueues the rerun itself, since a plain Remove never
				// reaches the debounce below.
				if event.Op&(fsnotify.Rename|fsnotify.Remove|fsnotify.Create) != 0 {
					go c.rewatch(watcher, configPath)
				}

				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				debounceMu.Lock()
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					log.Debug("config file changed", "file", event.Name)
					c.enqueue(TriggerFileChange)
				})
				debounceMu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("config watch error", "error", err)
			}
		}
	}()

	log.Info("watching ssh config for changes", "path", configPath)
	return nil
}

// rewatch re-adds the config file to the watcher, retrying with exponential
// backoff while an atomic replace is in flight, then enqueues a run against
// the replacement content.
func (c *Coordinator) rewatch(watcher *fsnotify.Watcher, configPath string) {
	log := logging.Component("watch")

	for attempt := 0; attempt < 5; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(10<<uint(attempt-1)) * time.Millisecond)
		}

		watcher.Remove(configPath)
		if err := watcher.Add(configPath); err == nil {
			log.Debug("re-added config watch", "path", configPath, "attempt", attempt+1)
			c.enqueue(TriggerFileChange)
			return
		} else if attempt == 4 {
			log.Warn("could not re-add config watch", "path", configPath, "error", err)
		}
	}
}
