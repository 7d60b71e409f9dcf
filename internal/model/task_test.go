package model

import (
	"path/filepath"
	"testing"
)

func TestDownloadTask_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		task := &DownloadTask{ETASec: test.etaSec}
		result := task.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestDownloadTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", filepath.Join("music", "Song_audio_128kbps.mp3"), "https://youtube.com/watch?v=123", "Song_audio_128kbps"},
		{"https://youtube.com/watch?v=456", "", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
		{"", "", "https://youtube.com/watch?v=789", "https://youtube.com/watch?v=789"},
	}

	for _, test := range tests {
		task := &DownloadTask{
			Title:      test.title,
			OutputPath: test.output,
			URL:        test.url,
		}
		result := task.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', output='%s' = '%s', expected '%s'",
				test.title, test.output, result, test.expected)
		}
	}
}

func TestDownloadTask_Snapshot(t *testing.T) {
	task := &DownloadTask{ID: "task-1", Percent: 40}
	snap := task.Snapshot()

	task.Percent = 90
	if snap.Percent != 40 {
		t.Errorf("Snapshot should not follow later changes, got %d", snap.Percent)
	}
}
