// Package webkit adapts a WebKitGTK webview to the domkit capability
// interfaces (script execution and style insertion).
package webkit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/puregotk-webkit/webkit"
	"github.com/jwijenbergh/puregotk/v4/gio"

	"github.com/bnema/domkit/internal/logging"
)

// WebView wraps a WebKitGTK WebView and implements webview.Webview.
type WebView struct {
	inner     *webkit.WebView
	destroyed atomic.Bool

	mu sync.Mutex
	// prevent async callbacks from being GC'd before they fire
	asyncCallbacks []gio.AsyncReadyCallback
}

// Wrap adapts an existing WebKit WebView.
func Wrap(inner *webkit.WebView) (*WebView, error) {
	if inner == nil {
		return nil, ErrWebViewNotInitialized
	}
	return &WebView{inner: inner}, nil
}

// Destroy marks the webview unusable. Further calls fail with
// ErrWebViewDestroyed.
func (wv *WebView) Destroy() {
	wv.destroyed.Store(true)
}

type evalResult struct {
	json string
	err  error
}

// ExecuteJavaScript evaluates code in the page's main world and returns the
// completion value serialized as JSON ("null" for null or undefined). JS
// exceptions surface as errors.
func (wv *WebView) ExecuteJavaScript(ctx context.Context, code string) (string, error) {
	if wv.inner == nil {
		return "", ErrWebViewNotInitialized
	}
	if wv.destroyed.Load() {
		return "", ErrWebViewDestroyed
	}

	log := logging.FromContext(ctx)
	ch := make(chan evalResult, 1)

	cb := gio.AsyncReadyCallback(func(_ uintptr, resPtr uintptr, _ uintptr) {
		if resPtr == 0 {
			ch <- evalResult{err: fmt.Errorf("webkit: nil async result")}
			return
		}

		res := &gio.AsyncResultBase{Ptr: resPtr}
		value, err := wv.inner.EvaluateJavascriptFinish(res)
		if err != nil {
			ch <- evalResult{err: fmt.Errorf("webkit: evaluate failed: %w", err)}
			return
		}
		if value == nil {
			ch <- evalResult{json: "null"}
			return
		}

		if jscCtx := value.GetContext(); jscCtx != nil {
			if exc := jscCtx.GetException(); exc != nil {
				ch <- evalResult{err: fmt.Errorf("webkit: JS exception: %s", exc.GetMessage())}
				return
			}
		}

		encoded := value.ToJson(0)
		if encoded == "" {
			encoded = "null"
		}
		ch <- evalResult{json: encoded}
	})

	wv.mu.Lock()
	wv.asyncCallbacks = append(wv.asyncCallbacks, cb)
	wv.mu.Unlock()

	// worldName and sourceUri are nil: main world, no source annotation.
	wv.inner.EvaluateJavascript(code, -1, nil, nil, nil, &cb, 0)

	select {
	case r := <-ch:
		if r.err != nil {
			log.Debug().Err(r.err).Msg("javascript evaluation failed")
		}
		return r.json, r.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// InsertCSS applies css to the page as a user-level stylesheet on all
// frames.
func (wv *WebView) InsertCSS(ctx context.Context, css string) error {
	if wv.inner == nil {
		return ErrWebViewNotInitialized
	}
	if wv.destroyed.Load() {
		return ErrWebViewDestroyed
	}

	ucm := wv.inner.GetUserContentManager()
	if ucm == nil {
		return fmt.Errorf("webkit: user content manager unavailable")
	}

	stylesheet := webkit.NewUserStyleSheet(
		css,
		webkit.UserContentInjectAllFramesValue,
		webkit.UserStyleLevelUserValue,
		nil,
		nil,
	)
	if stylesheet == nil {
		return fmt.Errorf("webkit: failed to create user stylesheet")
	}
	ucm.AddStyleSheet(stylesheet)

	logging.FromContext(ctx).Debug().Int("css_len", len(css)).Msg("stylesheet inserted")
	return nil
}
