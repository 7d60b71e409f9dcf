package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-streams/internal/download"
	"github.com/ytget/yt-streams/internal/model"
	"github.com/ytget/yt-streams/internal/platform"
)

// RootUI is the stream picker window: URL row, thumbnail and info, the
// three stream lists, the Download button and the progress bar
type RootUI struct {
	window       fyne.Window
	services     *Services
	localization *Localization
	logger       *slog.Logger

	urlLabel        *widget.Label
	urlEntry        *widget.Entry
	searchBtn       *widget.Button
	videoPanel      *VideoPanel
	videoOnlyList   *StreamList
	audioList       *StreamList
	progressiveList *StreamList
	downloadBtn     *widget.Button
	downloadPanel   *DownloadPanel

	// Result of the last successful search
	video   *model.Video
	streams *model.StreamSet

	searching bool
	searchSeq int
}

// NewRootUI creates and initializes the downloader window content
func NewRootUI(window fyne.Window, services *Services) *RootUI {
	localization := NewLocalization()
	if services.Settings != nil {
		localization.SetLanguage(services.Settings.GetLanguage())
	}

	ui := &RootUI{
		window:       window,
		services:     services,
		localization: localization,
		logger:       services.logger().With("component", "ui", "window", "downloader"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyEnterURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearch)
	ui.searchBtn.Importance = widget.HighImportance

	entryWidth := canvas.NewRectangle(color.Transparent)
	entryWidth.SetMinSize(fyne.NewSize(URLEntryMinWidth, 0))
	urlRow := container.NewBorder(nil, nil, ui.urlLabel, ui.searchBtn, container.NewStack(entryWidth, ui.urlEntry))

	ui.videoPanel = NewVideoPanel(ui.localization)

	ui.videoOnlyList = NewStreamList(ui.localization.GetText(KeyVideoOnly))
	ui.audioList = NewStreamList(ui.localization.GetText(KeyAudioOnly))
	ui.progressiveList = NewStreamList(ui.localization.GetText(KeyVideoAudio))
	ui.linkStreamLists(ui.videoOnlyList, ui.audioList, ui.progressiveList)
	lists := container.NewGridWithColumns(3,
		ui.videoOnlyList.Container(),
		ui.audioList.Container(),
		ui.progressiveList.Container(),
	)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownload)
	ui.downloadBtn.Disable()

	ui.downloadPanel = NewDownloadPanel(ui.window, ui.localization, ui.services)
	ui.downloadPanel.OnFinished = func(*model.DownloadTask) {
		ui.updateControls()
	}

	content := container.NewVBox(
		urlRow,
		ui.videoPanel.Container(),
		lists,
		container.NewCenter(ui.downloadBtn),
		ui.downloadPanel.Container(),
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Canvas().Focus(ui.urlEntry)
}

// linkStreamLists makes a selection in one list clear the others, so at
// most one stream is selected across the window
func (ui *RootUI) linkStreamLists(lists ...*StreamList) {
	for _, list := range lists {
		current := list
		current.OnChanged = func(selected int) {
			if selected == model.NoSelection {
				return
			}
			for _, other := range lists {
				if other != current {
					other.UnselectAll()
				}
			}
		}
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	ui.window.SetMainMenu(buildMainMenu(ui.localization, ui.services, ui.window, ui.onLanguageChange))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	if ui.services.Settings != nil {
		ui.services.Settings.SetLanguage(langCode)
	}

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlLabel.SetText(ui.localization.GetText(KeyEnterURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.videoOnlyList.SetTitle(ui.localization.GetText(KeyVideoOnly))
	ui.audioList.SetTitle(ui.localization.GetText(KeyAudioOnly))
	ui.progressiveList.SetTitle(ui.localization.GetText(KeyVideoAudio))
	ui.downloadPanel.SetStopText(ui.localization.GetText(KeyStop))
}

// onSearch handles the Search button and Enter in the URL field
func (ui *RootUI) onSearch() {
	if ui.searching {
		return
	}

	rawURL := strings.TrimSpace(ui.urlEntry.Text)
	if rawURL == "" {
		ui.showError(errors.New(ui.localization.GetText(KeyPleaseEnterURL)))
		return
	}

	if ui.services.Playlists != nil && platform.IsPlaylistURL(rawURL) {
		ShowPlaylistPicker(ui.window, ui.localization, ui.services, rawURL, func(video model.PlaylistVideo) {
			ui.urlEntry.SetText(video.URL)
			ui.search(video.URL)
		})
		return
	}

	ui.search(rawURL)
}

// search clears the previous result and looks the URL up in the background
func (ui *RootUI) search(rawURL string) {
	ui.searchSeq++
	seq := ui.searchSeq

	ui.clearResults()
	ui.setSearching(true)
	ui.logger.Info("search started", "url", rawURL)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), SearchTimeout)
		defer cancel()

		video, streams, err := ui.services.Catalog.Lookup(ctx, rawURL)
		if err != nil {
			ui.logger.Error("failed to load video", "url", rawURL, "error", err)
			fyne.Do(func() {
				if seq != ui.searchSeq {
					return
				}
				ui.setSearching(false)
				ui.videoPanel.SetInfo("")
				ui.showError(fmt.Errorf("%s:\n%w", ui.localization.GetText(KeyFailedToLoad), err))
			})
			return
		}

		fyne.Do(func() {
			if seq != ui.searchSeq {
				return
			}
			ui.showResult(video, streams)
			ui.setSearching(false)
		})

		img, err := ui.services.Thumbnails.Fetch(ctx, video.ThumbnailURL)
		if err != nil {
			ui.logger.Warn("error loading thumbnail", "url", video.ThumbnailURL, "error", err)
		}
		fyne.Do(func() {
			if seq != ui.searchSeq {
				return
			}
			if err != nil {
				ui.videoPanel.ShowThumbnailUnavailable()
				return
			}
			ui.videoPanel.SetThumbnail(img)
		})
	}()
}

// clearResults empties the lists, info and progress before a new search
func (ui *RootUI) clearResults() {
	ui.video = nil
	ui.streams = nil
	ui.videoPanel.Clear()
	ui.videoOnlyList.Clear()
	ui.audioList.Clear()
	ui.progressiveList.Clear()
	if !ui.downloadPanel.Busy() {
		ui.downloadPanel.Reset()
	}
}

// showResult fills the info text and the three lists
func (ui *RootUI) showResult(video *model.Video, streams *model.StreamSet) {
	ui.video = video
	ui.streams = streams

	ui.videoPanel.SetInfo(video.InfoText())
	ui.videoOnlyList.SetStreams(streams.VideoOnly)
	ui.audioList.SetStreams(streams.Audio)
	ui.progressiveList.SetStreams(streams.Progressive)
	ui.logger.Info("search finished", "video", video.ID,
		"progressive", len(streams.Progressive), "video_only", len(streams.VideoOnly), "audio", len(streams.Audio))
}

// Selection returns the selected row of each list
func (ui *RootUI) Selection() model.Selection {
	return model.Selection{
		VideoOnly:   ui.videoOnlyList.Selected(),
		Audio:       ui.audioList.Selected(),
		Progressive: ui.progressiveList.Selected(),
	}
}

// onDownload validates the selection, asks for a file and starts the download
func (ui *RootUI) onDownload() {
	if ui.video == nil || ui.downloadPanel.Busy() {
		return
	}

	stream, err := ui.Selection().Resolve(ui.streams)
	if err != nil {
		if errors.Is(err, model.ErrStaleSelection) {
			ui.showError(err)
		} else {
			ui.showError(errors.New(ui.localization.GetText(KeySelectOneStream)))
		}
		return
	}

	video := ui.video
	ShowSaveDialog(ui.window, ui.saveRequest(video, stream), ui.logger, func(path string) {
		ui.startDownload(video, stream, path)
	})
}

// saveRequest builds the save dialog defaults for stream
func (ui *RootUI) saveRequest(video *model.Video, stream model.Stream) SaveRequest {
	req := SaveRequest{
		ConfirmText:      ui.localization.GetText(KeySave),
		DefaultName:      stream.DefaultFileName(video.Title),
		DefaultExtension: stream.DefaultExtension(),
		Allowed:          stream.AllowedExtensions(),
	}
	if ui.services.Settings != nil {
		req.StartDir = ui.services.Settings.GetSaveDirectory()
	}
	return req
}

func (ui *RootUI) startDownload(video *model.Video, stream model.Stream, path string) {
	if ui.services.Settings != nil {
		ui.services.Settings.RememberSaveLocation(path)
	}

	err := ui.downloadPanel.Start(download.Request{
		VideoID:    video.ID,
		URL:        video.URL,
		Title:      video.Title,
		Stream:     stream,
		OutputPath: path,
	})
	if err != nil {
		if errors.Is(err, download.ErrDuplicateOutput) {
			err = errors.New(ui.localization.GetText(KeyAlreadyDownloading))
		}
		ui.downloadPanel.ShowFailure(err)
		return
	}
	ui.updateControls()
}

func (ui *RootUI) setSearching(searching bool) {
	ui.searching = searching
	if searching {
		ui.videoPanel.SetInfo(ui.localization.GetText(KeySearching))
	}
	ui.updateControls()
}

// updateControls disables actions that would conflict with work in flight
func (ui *RootUI) updateControls() {
	busy := ui.searching || ui.downloadPanel.Busy()

	if ui.searching {
		ui.searchBtn.Disable()
		ui.urlEntry.Disable()
	} else {
		ui.searchBtn.Enable()
		ui.urlEntry.Enable()
	}

	if busy || ui.video == nil {
		ui.downloadBtn.Disable()
	} else {
		ui.downloadBtn.Enable()
	}

	for _, list := range []*StreamList{ui.videoOnlyList, ui.audioList, ui.progressiveList} {
		list.SetEnabled(!busy)
	}
}

func (ui *RootUI) showError(err error) {
	dialog.ShowError(err, ui.window)
}
