package export

import (
	"fmt"
	"math"
)

// formatTimestamp renders seconds as an SRT timestamp (HH:MM:SS,mmm).
// Rounding happens on the total millisecond count so that values like
// 59.9996 carry into the next second instead of printing 60 in the
// seconds field.
func formatTimestamp(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	msTotal := int64(math.Round(seconds * 1000))
	hours := msTotal / 3_600_000
	msTotal %= 3_600_000
	minutes := msTotal / 60_000
	msTotal %= 60_000
	secs := msTotal / 1000
	millis := msTotal % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
