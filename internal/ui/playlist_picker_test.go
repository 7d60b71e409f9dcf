package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-streams/internal/model"
)

func TestPlaylistPicker(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	var picked []model.PlaylistVideo
	pp := newPlaylistPicker(w, NewLocalization(), func(video model.PlaylistVideo) {
		picked = append(picked, video)
	})

	if pp.Len() != 0 {
		t.Errorf("Expected empty picker before resolve, got %d", pp.Len())
	}
	if pp.header.Text != "Loading playlist..." {
		t.Errorf("Expected loading text, got %q", pp.header.Text)
	}

	// Picking before the playlist arrives does nothing
	pp.Pick(0)
	if len(picked) != 0 {
		t.Fatalf("Expected no pick, got %d", len(picked))
	}

	pp.SetPlaylist(&model.Playlist{
		ID:    "PL123",
		Title: "First Playlist",
		Videos: []model.PlaylistVideo{
			{ID: "a", Title: "First", URL: "https://www.youtube.com/watch?v=a", Index: 1},
			{ID: "b", Title: "Second", URL: "https://www.youtube.com/watch?v=b", Index: 2},
		},
	})
	if pp.Len() != 2 {
		t.Errorf("Expected 2 videos, got %d", pp.Len())
	}

	pp.Pick(1)
	if len(picked) != 1 || picked[0].ID != "b" {
		t.Errorf("Expected video b to be picked, got %+v", picked)
	}

	pp.Pick(7)
	if len(picked) != 1 {
		t.Errorf("Expected out-of-range pick to be ignored, got %d picks", len(picked))
	}
}
