package present

import (
	"fmt"
	"time"
)

// Infinity is rendered for zero-length durations.
const Infinity = "∞"

// FormatDuration renders d as H:MM:SS. A zero duration renders as the
// infinity symbol rather than "0:00:00".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return Infinity
	}

	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
