// Package webview provides DOM operations executed inside a remote webview
// context. Every operation serializes a JavaScript snippet and runs it
// through a ScriptExecutor; results come back JSON-encoded.
package webview

import "context"

// ScriptExecutor evaluates JavaScript in a remote document context.
// The returned string is the completion value of the script serialized as
// JSON ("null" for null or undefined).
type ScriptExecutor interface {
	ExecuteJavaScript(ctx context.Context, code string) (string, error)
}

// StyleInserter applies a stylesheet to a remote document.
type StyleInserter interface {
	InsertCSS(ctx context.Context, css string) error
}

// Webview combines script execution and style insertion, the two
// capabilities a hosted document exposes to the native side.
type Webview interface {
	ScriptExecutor
	StyleInserter
}

// ListenerInfo describes one event listener attached to an element, as
// reported by the host's debug-only introspection primitive.
type ListenerInfo struct {
	Type       string `json:"type"`
	UseCapture bool   `json:"useCapture"`
}
