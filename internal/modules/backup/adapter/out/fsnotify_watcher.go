package out

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	backupout "switchsprint/internal/modules/backup/port/out"
)

// FSNotifyWatcher watches the parent of a granted folder and reports when
// the folder itself is removed or renamed away.
type FSNotifyWatcher struct {
	logger *slog.Logger
}

func NewFSNotifyWatcher(logger *slog.Logger) backupout.FolderWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSNotifyWatcher{logger: logger}
}

func (w *FSNotifyWatcher) Watch(dir string, onGone func(reason string)) (func(), error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir = filepath.Clean(dir)
	if err := fsw.Add(filepath.Dir(dir)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != dir {
					continue
				}
				switch {
				case event.Has(fsnotify.Remove):
					onGone("backup folder removed")
				case event.Has(fsnotify.Rename):
					onGone("backup folder moved")
				}
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				w.logger.Warn("backup folder watch error", "dir", dir, "error", err)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			_ = fsw.Close()
			<-done
		})
	}, nil
}
