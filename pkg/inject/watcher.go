package inject

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/domkit/internal/logging"
	"github.com/bnema/domkit/pkg/webview"
)

// DefaultWatchQuiet is the debounce period between a file write and the
// re-injection it triggers.
const DefaultWatchQuiet = 100 * time.Millisecond

// Watcher re-applies stylesheet files to the document when they change on
// disk. Re-injection deliberately bypasses the manifest duplicate guard:
// replacing already-applied styles is the point. Rapid successive writes to
// the same file coalesce into a single re-injection.
type Watcher struct {
	view     webview.StyleInserter
	minifier *Minifier
	fs       *fsnotify.Watcher
	log      zerolog.Logger
	quiet    time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
	done   chan struct{}
}

// NewWatcher starts a watcher applying file changes to view.
func NewWatcher(ctx context.Context, view webview.StyleInserter, opts ...WatchOption) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		view:     view,
		minifier: NewMinifier(),
		fs:       fs,
		log:      logging.FromContext(ctx).With().Str("component", "inject-watcher").Logger(),
		quiet:    DefaultWatchQuiet,
		timers:   make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.loop(ctx)
	return w, nil
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithQuietPeriod overrides the re-injection debounce period.
func WithQuietPeriod(d time.Duration) WatchOption {
	return func(w *Watcher) { w.quiet = d }
}

// WithWatchMinifier overrides the CSS minifier.
func WithWatchMinifier(m *Minifier) WatchOption {
	return func(w *Watcher) { w.minifier = m }
}

// Add starts watching the stylesheet at path.
func (w *Watcher) Add(path string) error {
	return w.fs.Add(path)
}

// Close stops the watcher and its pending timers.
func (w *Watcher) Close() error {
	close(w.done)

	w.mu.Lock()
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.fs.Close()
}

func (w *Watcher) loop(ctx context.Context) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			w.log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("stylesheet change detected")
			w.schedule(ctx, event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("stylesheet watch error")
		}
	}
}

// schedule coalesces change events per path into one re-injection after the
// quiet period.
func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[path]; ok {
		t.Reset(w.quiet)
		return
	}
	w.timers[path] = time.AfterFunc(w.quiet, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		select {
		case <-w.done:
			return
		default:
		}
		w.reinject(ctx, path)
	})
}

func (w *Watcher) reinject(ctx context.Context, path string) {
	cssText, err := readStylesheet(path)
	if err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("failed to re-read stylesheet")
		return
	}

	result, err := w.minifier.Minify(cssText)
	if err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("failed to minify stylesheet")
		return
	}

	if err := w.view.InsertCSS(ctx, result.Styles); err != nil {
		w.log.Warn().Err(err).Str("path", path).Msg("failed to re-insert stylesheet")
		return
	}
	w.log.Debug().Str("path", path).Float64("efficiency", result.Efficiency).Msg("stylesheet re-injected")
}
