package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Source hands out the current content. Pages keep the content they were
// built with; a reload only affects pages created afterwards.
type Source struct {
	cur atomic.Pointer[Content]
}

func NewSource(c *Content) *Source {
	s := &Source{}
	s.cur.Store(c)
	return s
}

func (s *Source) Load() *Content { return s.cur.Load() }

func (s *Source) Store(c *Content) { s.cur.Store(c) }

// watchDebounce collapses the burst of events editors emit on save.
const watchDebounce = 500 * time.Millisecond

// Watch reloads path into src whenever it changes, until ctx is done. A file
// that fails to parse is logged and the previous content kept.
func Watch(ctx context.Context, path string, src *Source, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	// Watch the directory so atomic saves (write + rename) are seen.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	log.Info("Watching content", zap.String("path", path))

	reload := time.NewTimer(watchDebounce)
	reload.Stop()
	defer reload.Stop()

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
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Debug("Content changed", zap.String("op", event.Op.String()))
				reload.Reset(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error", zap.Error(err))
		case <-reload.C:
			c, err := LoadFile(path)
			if err != nil {
				log.Warn("Content reload failed", zap.Error(err))
				continue
			}
			src.Store(c)
			log.Info("Content reloaded",
				zap.Int("projects", len(c.Projects)),
				zap.Int("testimonials", len(c.Testimonials)))
		}
	}
}
