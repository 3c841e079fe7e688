package webview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/domkit/internal/logging"
)

// AddClasses adds the given class names to every element matching selector
// inside the remote document. An empty class list returns nil without
// executing anything remotely.
func AddClasses(ctx context.Context, exec ScriptExecutor, selector string, classes ...string) error {
	return classListOp(ctx, exec, "add", selector, classes)
}

// RemoveClasses removes the given class names from every element matching
// selector inside the remote document. An empty class list is a no-op.
func RemoveClasses(ctx context.Context, exec ScriptExecutor, selector string, classes ...string) error {
	return classListOp(ctx, exec, "remove", selector, classes)
}

func classListOp(ctx context.Context, exec ScriptExecutor, op, selector string, classes []string) error {
	if len(classes) == 0 {
		return nil
	}

	encoded, err := json.Marshal(classes)
	if err != nil {
		return fmt.Errorf("failed to encode class list: %w", err)
	}

	code := fmt.Sprintf(classListScript, escapeJS(selector), encoded, op)
	result, err := exec.ExecuteJavaScript(ctx, code)
	if err != nil {
		return fmt.Errorf("remote classList.%s failed: %w", op, err)
	}

	logging.FromContext(ctx).Debug().
		Str("component", "webview").
		Str("op", op).
		Str("selector", selector).
		Str("matched", result).
		Msg("class list updated")
	return nil
}
