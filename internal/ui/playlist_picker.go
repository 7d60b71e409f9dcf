package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-streams/internal/model"
)

// PlaylistPicker offers the videos of a playlist URL so one can be searched
type PlaylistPicker struct {
	window       fyne.Window
	localization *Localization
	onPick       func(model.PlaylistVideo)

	playlist *model.Playlist
	header   *widget.Label
	list     *widget.List
	dialog   dialog.Dialog
}

// ShowPlaylistPicker resolves rawURL in the background and lists its videos
func ShowPlaylistPicker(window fyne.Window, localization *Localization, services *Services, rawURL string, onPick func(model.PlaylistVideo)) *PlaylistPicker {
	pp := newPlaylistPicker(window, localization, onPick)
	pp.dialog.Show()

	logger := services.logger().With("component", "playlist_picker")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), PlaylistTimeout)
		defer cancel()

		playlist, err := services.Playlists.Resolve(ctx, rawURL)
		if err != nil {
			logger.Error("failed to resolve playlist", "url", rawURL, "error", err)
			fyne.Do(func() {
				pp.dialog.Hide()
				dialog.ShowError(fmt.Errorf("%s:\n%w", localization.GetText(KeyFailedToLoad), err), window)
			})
			return
		}

		logger.Info("playlist resolved", "playlist", playlist.ID, "videos", len(playlist.Videos))
		fyne.Do(func() {
			pp.SetPlaylist(playlist)
		})
	}()
	return pp
}

func newPlaylistPicker(window fyne.Window, localization *Localization, onPick func(model.PlaylistVideo)) *PlaylistPicker {
	pp := &PlaylistPicker{
		window:       window,
		localization: localization,
		onPick:       onPick,
	}

	pp.header = widget.NewLabel(localization.GetText(KeyLoadingPlaylist))
	pp.header.Wrapping = fyne.TextWrapWord

	pp.list = widget.NewList(
		func() int {
			if pp.playlist == nil {
				return 0
			}
			return len(pp.playlist.Videos)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if pp.playlist == nil || id < 0 || id >= len(pp.playlist.Videos) {
				return
			}
			video := pp.playlist.Videos[id]
			obj.(*widget.Label).SetText(fmt.Sprintf("%d. %s", video.Index, video.Title))
		},
	)
	pp.list.OnSelected = func(id widget.ListItemID) {
		pp.Pick(id)
	}

	content := container.NewBorder(pp.header, nil, nil, nil, pp.list)
	pp.dialog = dialog.NewCustom(localization.GetText(KeyPlaylistTitle), localization.GetText(KeyCancel), content, window)
	pp.dialog.Resize(fyne.NewSize(PlaylistDialogWidth, PlaylistDialogHeight))
	return pp
}

// SetPlaylist fills the list. UI goroutine only.
func (pp *PlaylistPicker) SetPlaylist(playlist *model.Playlist) {
	pp.playlist = playlist
	pp.header.SetText(playlist.Title + "\n" + pp.localization.GetText(KeyPlaylistPick))
	pp.list.Refresh()
}

// Len returns the number of listed videos
func (pp *PlaylistPicker) Len() int {
	if pp.playlist == nil {
		return 0
	}
	return len(pp.playlist.Videos)
}

// Pick closes the picker and hands video id to the callback
func (pp *PlaylistPicker) Pick(id int) {
	if pp.playlist == nil || id < 0 || id >= len(pp.playlist.Videos) {
		return
	}
	video := pp.playlist.Videos[id]
	pp.dialog.Hide()
	if pp.onPick != nil {
		pp.onPick(video)
	}
}
