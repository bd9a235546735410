package game

import (
	"fmt"
	"time"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// snapshotName is the default file name offered by the save dialog.
func snapshotName(now time.Time) string {
	return "neural-sphere-" + now.Format("20060102-150405") + ".png"
}
