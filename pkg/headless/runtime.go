// Package headless implements the webview capabilities on an in-process
// sobek JavaScript runtime with a minimal document bridge. It serves as a
// test double for real webviews and as a server-side harness for checking
// injected snippets without a GTK stack.
package headless

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/grafana/sobek"
	"github.com/rs/zerolog"

	"github.com/bnema/domkit/internal/logging"
)

// bootstrapScript installs window/document globals backed by plain JS
// objects. Elements are registered from Go under explicit selectors;
// querySelectorAll matches those selectors literally.
const bootstrapScript = `(function() {
  'use strict';
  var elements = [];

  function makeElement(tag) {
    var classes = [];
    var listeners = {};
    return {
      tagName: (tag || 'div').toUpperCase(),
      textContent: '',
      dataset: {},
      style: {},
      classList: {
        add: function(c) { if (classes.indexOf(c) === -1) classes.push(c); },
        remove: function(c) { var i = classes.indexOf(c); if (i !== -1) classes.splice(i, 1); },
        contains: function(c) { return classes.indexOf(c) !== -1; },
        toString: function() { return classes.join(' '); }
      },
      addEventListener: function(type, fn, capture) {
        (listeners[type] = listeners[type] || []).push({ type: type, listener: fn, useCapture: !!capture });
      },
      removeEventListener: function(type, fn, capture) {
        var bucket = listeners[type] || [];
        for (var i = 0; i < bucket.length; i++) {
          if (bucket[i].listener === fn && bucket[i].useCapture === !!capture) {
            bucket.splice(i, 1);
            return;
          }
        }
      },
      __listeners: listeners,
      __selectors: []
    };
  }

  var document = {
    documentElement: makeElement('html'),
    head: {
      __children: [],
      appendChild: function(n) { this.__children.push(n); return n; }
    },
    createElement: makeElement,
    querySelectorAll: function(sel) {
      return elements.filter(function(e) { return e.__selectors.indexOf(sel) !== -1; });
    },
    querySelector: function(sel) {
      var m = document.querySelectorAll(sel);
      return m.length ? m[0] : null;
    }
  };

  globalThis.document = document;
  globalThis.window = globalThis;
  globalThis.getEventListeners = function(el) { return (el && el.__listeners) || {}; };
  globalThis.console = {
    debug: function() { __domkit_native_log('debug', Array.prototype.join.call(arguments, ' ')); },
    log: function() { __domkit_native_log('info', Array.prototype.join.call(arguments, ' ')); },
    error: function() { __domkit_native_log('error', Array.prototype.join.call(arguments, ' ')); }
  };
  globalThis.__domkit_register = function() {
    var el = makeElement('div');
    for (var i = 0; i < arguments.length; i++) el.__selectors.push(arguments[i]);
    elements.push(el);
    return el;
  };
})();`

// Runtime is a headless document context. It is safe for concurrent use;
// the underlying VM is single-threaded and guarded by a mutex.
type Runtime struct {
	vm  *sobek.Runtime
	log zerolog.Logger

	mu  sync.Mutex
	css []string
}

// New creates a runtime with an empty document.
func New(ctx context.Context) (*Runtime, error) {
	r := &Runtime{
		vm:  sobek.New(),
		log: logging.FromContext(ctx).With().Str("component", "headless").Logger(),
	}
	if err := r.vm.Set("__domkit_native_log", r.nativeLog); err != nil {
		return nil, fmt.Errorf("headless: failed to bind native log: %w", err)
	}
	if _, err := r.vm.RunString(bootstrapScript); err != nil {
		return nil, fmt.Errorf("headless: bootstrap failed: %w", err)
	}
	return r, nil
}

func (r *Runtime) nativeLog(level, msg string) {
	switch level {
	case "error":
		r.log.Error().Msg(msg)
	case "debug":
		r.log.Debug().Msg(msg)
	default:
		r.log.Info().Msg(msg)
	}
}

// ExecuteJavaScript evaluates code and returns its completion value
// serialized as JSON ("null" for null or undefined).
func (r *Runtime) ExecuteJavaScript(ctx context.Context, code string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	val, err := r.vm.RunString(code)
	if err != nil {
		return "", fmt.Errorf("headless: eval failed: %w", err)
	}
	if val == nil || sobek.IsUndefined(val) || sobek.IsNull(val) {
		return "null", nil
	}

	data, err := json.Marshal(val.Export())
	if err != nil {
		return "", fmt.Errorf("headless: result not serializable: %w", err)
	}
	return string(data), nil
}

// InsertCSS records css as applied to the document.
func (r *Runtime) InsertCSS(ctx context.Context, css string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	r.css = append(r.css, css)
	r.mu.Unlock()

	r.log.Debug().Int("css_len", len(css)).Msg("stylesheet inserted")
	return nil
}

// InsertedCSS returns the stylesheets applied so far, in order.
func (r *Runtime) InsertedCSS() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.css))
	copy(out, r.css)
	return out
}

// RegisterElement adds one element to the document, reachable through each
// of the given selectors.
func (r *Runtime) RegisterElement(selectors ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	register, ok := sobek.AssertFunction(r.vm.Get("__domkit_register"))
	if !ok {
		return fmt.Errorf("headless: element registry missing")
	}
	args := make([]sobek.Value, len(selectors))
	for i, sel := range selectors {
		args[i] = r.vm.ToValue(sel)
	}
	if _, err := register(sobek.Undefined(), args...); err != nil {
		return fmt.Errorf("headless: failed to register element: %w", err)
	}
	return nil
}
