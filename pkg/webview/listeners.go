package webview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/domkit/internal/logging"
)

// EventListeners enumerates the listeners attached to the first element
// matching selector, keyed by event type. The underlying getEventListeners
// primitive only exists in debug-enabled hosts; when it is absent, or no
// element matches, an empty map is returned.
func EventListeners(ctx context.Context, exec ScriptExecutor, selector string) (map[string][]ListenerInfo, error) {
	code := fmt.Sprintf(eventListenersScript, escapeJS(selector))
	raw, err := exec.ExecuteJavaScript(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("remote listener enumeration failed: %w", err)
	}

	listeners := make(map[string][]ListenerInfo)
	if raw == "" || raw == "null" {
		return listeners, nil
	}
	if err := json.Unmarshal([]byte(raw), &listeners); err != nil {
		return nil, fmt.Errorf("unexpected listener enumeration result %q: %w", raw, err)
	}
	return listeners, nil
}

// RemoveAllListeners detaches every listener found on the first element
// matching selector. A no-op when none exist or introspection is
// unavailable.
func RemoveAllListeners(ctx context.Context, exec ScriptExecutor, selector string) error {
	code := fmt.Sprintf(removeListenersScript, escapeJS(selector))
	removed, err := exec.ExecuteJavaScript(ctx, code)
	if err != nil {
		return fmt.Errorf("remote listener removal failed: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "webview").
		Str("selector", selector).
		Str("removed", removed).
		Msg("event listeners detached")
	return nil
}
