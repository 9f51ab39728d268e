package cadence

import "fmt"

// FormatDuration renders a millisecond duration as "Ns" under a minute, or
// "NmMMs" (seconds zero-padded to two digits) at a minute or over.
func FormatDuration(ms float64) string {
	totalSeconds := int(ms/1000 + 0.5)
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	if ms < 60_000 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%dm%02ds", minutes, seconds)
}
