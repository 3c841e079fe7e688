// Package present holds small presentation helpers: show/hide toggling,
// deferred text updates, duration formatting, debounced size mirroring, and
// a toast passthrough.
package present

import (
	"context"
	"time"

	"github.com/bnema/domkit/internal/logging"
)

// Class names toggled by Show and Hide; mutually exclusive on any element.
const (
	ClassShow = "show"
	ClassHide = "hide"
)

// ClassToggler mutates the class list of one element.
type ClassToggler interface {
	AddClass(ctx context.Context, class string) error
	RemoveClass(ctx context.Context, class string) error
}

// Show removes "hide" and adds "show" on el, after an optional delay.
// With zero delay the toggle runs synchronously and its error is returned;
// a delayed toggle is one-shot and fire-and-forget, errors are only logged.
func Show(ctx context.Context, el ClassToggler, delay time.Duration) error {
	return toggle(ctx, el, delay, ClassHide, ClassShow)
}

// Hide removes "show" and adds "hide" on el, after an optional delay.
func Hide(ctx context.Context, el ClassToggler, delay time.Duration) error {
	return toggle(ctx, el, delay, ClassShow, ClassHide)
}

func toggle(ctx context.Context, el ClassToggler, delay time.Duration, remove, add string) error {
	apply := func() error {
		if err := el.RemoveClass(ctx, remove); err != nil {
			return err
		}
		return el.AddClass(ctx, add)
	}

	if delay <= 0 {
		return apply()
	}

	log := logging.FromContext(ctx).With().Str("component", "present").Logger()
	time.AfterFunc(delay, func() {
		if err := apply(); err != nil {
			log.Error().Err(err).Str("class", add).Msg("deferred class toggle failed")
		}
	})
	return nil
}
