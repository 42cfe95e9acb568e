package config

import (
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/relaycore/httpcall/internal/obslog"
)

// Watch reloads ClientDefaults from path whenever the file changes and
// delivers each successfully reloaded value to onChange. Rapid successive
// writes (editors that write-then-rename) are debounced into one reload.
// It runs until stop is closed.
func Watch(path string, onChange func(*ClientDefaults), stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		const debounce = 200 * time.Millisecond
		var timer *time.Timer
		reload := func() {
			d, err := Load(path)
			if err != nil {
				obslog.Logger().WithError(err).Warn("config: reload failed")
				return
			}
			onChange(d)
		}
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				obslog.Logger().WithError(err).Warn("config: watcher error")
			}
		}
	}()

	return nil
}
