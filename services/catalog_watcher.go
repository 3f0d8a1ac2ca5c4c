package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const watchDebounce = 50 * time.Millisecond

// CatalogWatcher calls onChange when a catalog file is written, created,
// renamed or removed. The parent directory is watched so editors that
// replace the file atomically are still noticed.
type CatalogWatcher struct {
	fw      *fsnotify.Watcher
	path    string
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
	logger  zerolog.Logger
}

// NewCatalogWatcher starts watching path.
func NewCatalogWatcher(path string, onChange func(), logger zerolog.Logger) (*CatalogWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &CatalogWatcher{
		fw:     fw,
		path:   absPath,
		done:   make(chan struct{}),
		logger: logger.With().Str("component", "catalog-watcher").Logger(),
	}
	go w.loop(onChange)
	return w, nil
}

// loop fires onChange once per burst of events, watchDebounce after the last one.
func (w *CatalogWatcher) loop(onChange func()) {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				continue
			}
			w.logger.Debug().Str("path", w.path).Str("op", event.Op.String()).Msg("catalog file event")

			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.logger.Info().Str("path", w.path).Msg("catalog file changed")
			onChange()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watch error")

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop ends monitoring. Safe to call multiple times.
func (w *CatalogWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
