package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-streams/internal/model"
)

func TestStreamList_Selection(t *testing.T) {
	test.NewApp()

	sl := NewStreamList("Video Only")
	if sl.Title() != "Video Only" {
		t.Errorf("Expected title 'Video Only', got %q", sl.Title())
	}
	if sl.Selected() != model.NoSelection {
		t.Errorf("Expected no selection, got %d", sl.Selected())
	}

	var changes []int
	sl.OnChanged = func(selected int) {
		changes = append(changes, selected)
	}

	sl.SetStreams(testStreamSet().VideoOnly)
	if sl.Len() != 2 {
		t.Fatalf("Expected 2 rows, got %d", sl.Len())
	}
	if got := sl.Label(1); got != "720p - 30fps - N/A" {
		t.Errorf("Expected label '720p - 30fps - N/A', got %q", got)
	}
	if got := sl.Label(5); got != "" {
		t.Errorf("Expected empty label out of range, got %q", got)
	}

	sl.Select(1)
	if sl.Selected() != 1 {
		t.Errorf("Expected selection 1, got %d", sl.Selected())
	}

	sl.Select(0)
	if sl.Selected() != 0 {
		t.Errorf("Expected selection 0, got %d", sl.Selected())
	}

	sl.UnselectAll()
	if sl.Selected() != model.NoSelection {
		t.Errorf("Expected no selection after UnselectAll, got %d", sl.Selected())
	}

	if len(changes) == 0 || changes[0] != 1 {
		t.Errorf("Expected first change to report row 1, got %v", changes)
	}
}

func TestStreamList_SetStreamsClearsSelection(t *testing.T) {
	test.NewApp()

	sl := NewStreamList("Audio Only")
	sl.SetStreams(testStreamSet().Audio)
	sl.Select(0)

	sl.SetStreams(testStreamSet().Audio)
	if sl.Selected() != model.NoSelection {
		t.Errorf("Expected new rows to clear the selection, got %d", sl.Selected())
	}

	sl.Clear()
	if sl.Len() != 0 {
		t.Errorf("Expected 0 rows after Clear, got %d", sl.Len())
	}

	sl.SetTitle("Só áudio")
	if sl.Title() != "Só áudio" {
		t.Errorf("Expected retitled list, got %q", sl.Title())
	}
}
