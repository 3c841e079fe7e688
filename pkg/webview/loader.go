package webview

import (
	"context"
	"fmt"
)

// AttachStylesheet appends a <link rel="stylesheet"> pointing at href to the
// remote document head. Fire-and-forget: the load outcome is only logged
// in-page, and no de-duplication is performed.
func AttachStylesheet(ctx context.Context, exec ScriptExecutor, href string) error {
	code := fmt.Sprintf(attachStylesheetScript, escapeJS(href))
	if _, err := exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("failed to attach stylesheet %s: %w", href, err)
	}
	return nil
}

// AttachScript appends a <script> pointing at src to the remote document
// head. Fire-and-forget, no de-duplication.
func AttachScript(ctx context.Context, exec ScriptExecutor, src string) error {
	code := fmt.Sprintf(attachScriptScript, escapeJS(src))
	if _, err := exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("failed to attach script %s: %w", src, err)
	}
	return nil
}
