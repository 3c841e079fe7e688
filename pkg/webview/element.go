package webview

import (
	"context"
	"encoding/json"
	"fmt"
)

const rectScript = `(function() {
  var el = document.querySelector('%s');
  if (!el || typeof el.getBoundingClientRect !== 'function') return null;
  var r = el.getBoundingClientRect();
  return { width: r.width, height: r.height };
})();`

const setSizeScript = `(function() {
  var el = document.querySelector('%s');
  if (!el) return false;
  el.style.width = '%spx';
  el.style.height = '%spx';
  return true;
})();`

// Element addresses a single remote element by selector and adapts it to
// the presentation-helper interfaces (class toggling, text, sizing, toast).
type Element struct {
	exec     ScriptExecutor
	selector string
}

// NewElement binds selector to exec.
func NewElement(exec ScriptExecutor, selector string) *Element {
	return &Element{exec: exec, selector: selector}
}

// AddClass adds one class on every match.
func (e *Element) AddClass(ctx context.Context, class string) error {
	return AddClasses(ctx, e.exec, e.selector, class)
}

// RemoveClass removes one class from every match.
func (e *Element) RemoveClass(ctx context.Context, class string) error {
	return RemoveClasses(ctx, e.exec, e.selector, class)
}

// SetText assigns the element's text content.
func (e *Element) SetText(ctx context.Context, text string) error {
	return SetText(ctx, e.exec, e.selector, text)
}

// Size returns the element's rendered width and height.
func (e *Element) Size(ctx context.Context) (width, height float64, err error) {
	code := fmt.Sprintf(rectScript, escapeJS(e.selector))
	raw, err := e.exec.ExecuteJavaScript(ctx, code)
	if err != nil {
		return 0, 0, fmt.Errorf("remote rect read failed: %w", err)
	}
	if raw == "" || raw == "null" {
		return 0, 0, fmt.Errorf("no element matches %q", e.selector)
	}

	var rect struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	if err := json.Unmarshal([]byte(raw), &rect); err != nil {
		return 0, 0, fmt.Errorf("unexpected rect result %q: %w", raw, err)
	}
	return rect.Width, rect.Height, nil
}

// SetSize applies an inline width and height in pixels.
func (e *Element) SetSize(ctx context.Context, width, height float64) error {
	code := fmt.Sprintf(setSizeScript, escapeJS(e.selector),
		formatPx(width), formatPx(height))
	if _, err := e.exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("remote resize failed: %w", err)
	}
	return nil
}

// Notify shows a toast through the hosting page.
func (e *Element) Notify(ctx context.Context, message string) error {
	return Toast(ctx, e.exec, message)
}

func formatPx(v float64) string {
	return fmt.Sprintf("%g", v)
}
