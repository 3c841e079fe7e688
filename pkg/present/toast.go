package present

import "context"

// Notifier displays a transient notification to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Toast passes message to n. A nil notifier silently does nothing, matching
// hosts where no toast primitive is installed.
func Toast(ctx context.Context, n Notifier, message string) error {
	if n == nil {
		return nil
	}
	return n.Notify(ctx, message)
}
