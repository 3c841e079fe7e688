package present

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/domkit/internal/logging"
)

// DefaultQuietPeriod is the debounce window for size mirroring.
const DefaultQuietPeriod = 50 * time.Millisecond

// Measurable reports an element's rendered size.
type Measurable interface {
	Size(ctx context.Context) (width, height float64, err error)
}

// Resizable applies an inline size to an element.
type Resizable interface {
	SetSize(ctx context.Context, width, height float64) error
}

// SizeMirror copies a target element's rendered size onto a source
// element's inline style, coalescing rapid Mirror calls into one update per
// quiet period. This is the long-lived, actually-coalescing form; the
// one-shot MirrorSize preserves the historical per-call behavior.
type SizeMirror struct {
	source Resizable
	target Measurable
	quiet  time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewSizeMirror creates a mirror from target to source. A non-positive
// quiet period falls back to DefaultQuietPeriod.
func NewSizeMirror(source Resizable, target Measurable, quiet time.Duration) *SizeMirror {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &SizeMirror{source: source, target: target, quiet: quiet}
}

// Mirror schedules a size copy after the quiet period; calls landing inside
// the window reset it.
func (m *SizeMirror) Mirror(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Reset(m.quiet)
		return
	}
	m.timer = time.AfterFunc(m.quiet, func() {
		m.mu.Lock()
		m.timer = nil
		m.mu.Unlock()
		m.apply(ctx)
	})
}

// Stop cancels a pending update, if any.
func (m *SizeMirror) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *SizeMirror) apply(ctx context.Context) {
	log := logging.FromContext(ctx).With().Str("component", "present").Logger()

	width, height, err := m.target.Size(ctx)
	if err != nil {
		log.Error().Err(err).Msg("size mirror: failed to measure target")
		return
	}
	if err := m.source.SetSize(ctx, width, height); err != nil {
		log.Error().Err(err).Msg("size mirror: failed to resize source")
		return
	}
	log.Debug().Float64("width", width).Float64("height", height).Msg("size mirrored")
}

// MirrorSize performs a single debounced size copy with a fresh timer per
// call. Successive calls therefore do not coalesce with each other — the
// historical behavior some call sites rely on; prefer SizeMirror for real
// coalescing.
func MirrorSize(ctx context.Context, source Resizable, target Measurable, quiet time.Duration) {
	NewSizeMirror(source, target, quiet).Mirror(ctx)
}
