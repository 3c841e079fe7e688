package webview

import (
	"context"
	"fmt"
)

// Class names toggled by ShowElement and HideElement. The two are mutually
// exclusive on any given element.
const (
	ClassShow = "show"
	ClassHide = "hide"
)

// ShowElement removes the "hide" class and adds "show" on every element
// matching selector.
func ShowElement(ctx context.Context, exec ScriptExecutor, selector string) error {
	return toggleShowHide(ctx, exec, selector, ClassHide, ClassShow)
}

// HideElement removes the "show" class and adds "hide" on every element
// matching selector.
func HideElement(ctx context.Context, exec ScriptExecutor, selector string) error {
	return toggleShowHide(ctx, exec, selector, ClassShow, ClassHide)
}

func toggleShowHide(ctx context.Context, exec ScriptExecutor, selector, remove, add string) error {
	code := fmt.Sprintf(showHideScript, escapeJS(selector), remove, add)
	if _, err := exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("remote %s failed: %w", add, err)
	}
	return nil
}

// SetText assigns text content on every element matching selector.
func SetText(ctx context.Context, exec ScriptExecutor, selector, text string) error {
	code := fmt.Sprintf(setTextScript, escapeJS(selector), escapeJS(text))
	if _, err := exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("remote text set failed: %w", err)
	}
	return nil
}

// Toast shows message through the page's toast primitive
// (window.__domkit_toast). Silently does nothing in-page when the primitive
// is absent.
func Toast(ctx context.Context, exec ScriptExecutor, message string) error {
	code := fmt.Sprintf(toastScript, escapeJS(message))
	if _, err := exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("remote toast failed: %w", err)
	}
	return nil
}
