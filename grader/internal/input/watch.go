package input

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cutgrade/cutgrade/pkg/types"
)

// Watch monitors path and calls onChange with freshly loaded measurements
// each time the file is written. It runs until ctx is cancelled.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temp file over path keep triggering reloads.
//
// If a reload fails (e.g. the file is mid-write or invalid YAML) the error
// is logged and onChange is not called.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(types.Measurements)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	slog.Info("input: watching for changes", "path", path)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil

			m, err := Load(path)
			if err != nil {
				slog.Error("input: reload failed", "path", path, "err", err)
				continue
			}

			slog.Debug("input: reloaded", "path", path)
			onChange(m)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("input: watcher error", "err", err)
		}
	}
}
