// Package util holds small display helpers shared by the delivery layer.
package util

import (
	"fmt"
	"time"
)

// FormatDuration renders a practice duration the way the journey screen shows it,
// e.g. "45s", "12min", "1h30min", "20h".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)
	if duration < 0 {
		duration = 0
	}

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dmin", int(duration.Minutes()))
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	return fmt.Sprintf("%dh%dmin", h, m)
}
