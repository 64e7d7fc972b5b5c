package attendance

import (
	"fmt"
)

// FormatWorkDuration renders a whole-minute duration as the human-readable
// string stored alongside a completed day, e.g. "8 hours 30 minutes".
// Seconds were already truncated by the caller.
func FormatWorkDuration(minutes int) string {
	return fmt.Sprintf("%d hours %d minutes", minutes/60, minutes%60)
}

// ParseWorkDuration recovers the whole-minute count from a string produced
// by FormatWorkDuration.
func ParseWorkDuration(s string) (int, error) {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d hours %d minutes", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("malformed working duration %q: %w", s, err)
	}
	return hours*60 + minutes, nil
}
