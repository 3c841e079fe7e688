package present

import (
	"context"
	"time"

	"github.com/bnema/domkit/internal/logging"
)

// TextSetter assigns the text content of one element.
type TextSetter interface {
	SetText(ctx context.Context, text string) error
}

// SetText assigns text on el after an optional delay. With zero delay it
// runs synchronously; a delayed assignment is one-shot and errors are only
// logged.
func SetText(ctx context.Context, el TextSetter, text string, delay time.Duration) error {
	if delay <= 0 {
		return el.SetText(ctx, text)
	}

	log := logging.FromContext(ctx).With().Str("component", "present").Logger()
	time.AfterFunc(delay, func() {
		if err := el.SetText(ctx, text); err != nil {
			log.Error().Err(err).Msg("deferred text set failed")
		}
	})
	return nil
}
