package webview

import (
	"context"
	"encoding/json"
	"fmt"
)

// DatasetGet reads a dataset attribute from the remote document root.
// The key uses dataset (camelCase) naming. The second return value is false
// when the attribute is absent.
func DatasetGet(ctx context.Context, exec ScriptExecutor, key string) (string, bool, error) {
	code := fmt.Sprintf(datasetGetScript, escapeJS(key))
	raw, err := exec.ExecuteJavaScript(ctx, code)
	if err != nil {
		return "", false, fmt.Errorf("remote dataset read failed: %w", err)
	}
	if raw == "" || raw == "null" {
		return "", false, nil
	}

	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return "", false, fmt.Errorf("unexpected dataset read result %q: %w", raw, err)
	}
	return value, true, nil
}

// DatasetSet writes a dataset attribute on the remote document root.
func DatasetSet(ctx context.Context, exec ScriptExecutor, key, value string) error {
	code := fmt.Sprintf(datasetSetScript, escapeJS(key), escapeJS(value))
	if _, err := exec.ExecuteJavaScript(ctx, code); err != nil {
		return fmt.Errorf("remote dataset write failed: %w", err)
	}
	return nil
}
