// Package analytics is the pure insight/rollup core. Every function here is
// deterministic, total over its documented input shapes and free of I/O;
// callers supply match history already sorted newest-first.
package analytics

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSurvivalMinutes converts an "M:SS"/"MM:SS" survival time to minutes.
// Each missing or non-numeric component degrades to 0 instead of failing;
// garbage in means 0, never an error.
func ParseSurvivalMinutes(s string) float64 {
	parts := strings.Split(s, ":")
	var minutes, seconds int
	if len(parts) > 0 {
		minutes, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	}
	if len(parts) > 1 {
		seconds, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	}
	if minutes < 0 {
		minutes = 0
	}
	if seconds < 0 {
		seconds = 0
	}
	return float64(minutes) + float64(seconds)/60
}

// FormatSurvivalMinutes renders a minutes value back to "M:SS" for display.
func FormatSurvivalMinutes(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	mm := int(minutes)
	ss := int(minutes*60) % 60
	return fmt.Sprintf("%d:%02d", mm, ss)
}
