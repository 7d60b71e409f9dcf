package model

import "time"

// HistoryEntry is a completed download kept across runs
type HistoryEntry struct {
	ID          int64
	VideoID     string
	VideoURL    string
	Title       string
	Kind        StreamKind
	StreamLabel string
	OutputPath  string
	FileSize    int64
	CompletedAt time.Time
}

// NewHistoryEntry builds an entry from a completed task
func NewHistoryEntry(task *DownloadTask) *HistoryEntry {
	return &HistoryEntry{
		VideoID:     task.VideoID,
		VideoURL:    task.URL,
		Title:       task.Title,
		Kind:        task.Stream.Kind,
		StreamLabel: task.Stream.Label(),
		OutputPath:  task.OutputPath,
		FileSize:    task.BytesDone,
		CompletedAt: task.FinishedAt,
	}
}
