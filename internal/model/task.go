package model

import (
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask represents one stream being saved to disk
type DownloadTask struct {
	ID         string
	VideoID    string
	URL        string // watch URL of the video
	Title      string // video title
	Stream     Stream
	OutputPath string // path chosen in the save dialog
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	BytesDone  int64
	BytesTotal int64
	Speed      string // human readable speed (e.g., "1.2 MB/s")
	ETASec     int    // ETA in seconds, -1 if unknown
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}
	return FormatDuration(dt.ETASec)
}

// GetDisplayTitle returns title, file name, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		filename := filepath.Base(dt.OutputPath)
		return strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	return dt.URL
}

// Snapshot returns a copy that can be handed to another goroutine
func (dt *DownloadTask) Snapshot() DownloadTask {
	return *dt
}
