package model

import "fmt"

// Time formatting constants
const (
	SecondsPerHour   = 3600
	SecondsPerMinute = 60
)

// Binary size units, largest last
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatDuration renders seconds as MM:SS, or HH:MM:SS once there are hours.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / SecondsPerHour
	minutes := (seconds % SecondsPerHour) / SecondsPerMinute
	secs := seconds % SecondsPerMinute

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatFileSize renders a byte count with 1024 scaling and two decimals,
// e.g. "1023.00 B", "1.00 KB". GB is the largest unit.
func FormatFileSize(bytes int64) string {
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
