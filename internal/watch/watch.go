// Package watch rebuilds the site when one of the input workbooks changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce absorbs the burst of events a single spreadsheet save
// produces (temp file, rename, chmod).
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports changes to a fixed set of files. It watches their parent
// directories, since spreadsheet editors replace files by rename.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	log      *zap.Logger
}

// New watches paths. Empty paths are ignored.
func New(paths []string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	files := map[string]struct{}{}
	dirs := map[string]struct{}{}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("watch: %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	if len(files) == 0 {
		return nil, errors.New("watch: no files to watch")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch: add %s: %w", dir, err)
		}
		log.Debug("Watching directory", zap.String("dir", dir))
	}
	return &Watcher{fsw: fsw, files: files, debounce: debounce, log: log}, nil
}

// Run calls onChange once per burst of changes until ctx is done. Errors
// from onChange are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func() error) error {
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("Input changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			if err := onChange(); err != nil {
				w.log.Error("Rebuild failed", zap.Error(err))
			}
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}
