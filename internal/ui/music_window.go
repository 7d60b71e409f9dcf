package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-streams/internal/download"
	"github.com/ytget/yt-streams/internal/model"
	"github.com/ytget/yt-streams/internal/platform"
)

// MusicUI is the audio-only window: paste a URL, press Enter, pick a file
type MusicUI struct {
	window       fyne.Window
	services     *Services
	localization *Localization
	logger       *slog.Logger

	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	downloadBtn   *widget.Button
	videoPanel    *VideoPanel
	downloadPanel *DownloadPanel

	searching bool
	searchSeq int
}

// NewMusicUI creates and initializes the music window content
func NewMusicUI(window fyne.Window, services *Services) *MusicUI {
	localization := NewLocalization()
	if services.Settings != nil {
		localization.SetLanguage(services.Settings.GetLanguage())
	}

	ui := &MusicUI{
		window:       window,
		services:     services,
		localization: localization,
		logger:       services.logger().With("component", "ui", "window", "music"),
	}

	window.SetTitle(localization.GetText(KeyMusicTitle))
	ui.setupUI()
	return ui
}

func (ui *MusicUI) setupUI() {
	ui.window.SetMainMenu(buildMainMenu(ui.localization, ui.services, ui.window, ui.onLanguageChange))

	ui.urlLabel = widget.NewLabel(ui.localization.GetText(KeyEnterURLLabel))
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownload()
	}

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.videoPanel = NewVideoPanel(ui.localization)

	ui.downloadPanel = NewDownloadPanel(ui.window, ui.localization, ui.services)
	ui.downloadPanel.OnFinished = func(*model.DownloadTask) {
		ui.updateControls()
	}

	content := container.NewVBox(
		container.NewBorder(nil, nil, ui.urlLabel, ui.downloadBtn, ui.urlEntry),
		ui.videoPanel.Container(),
		ui.downloadPanel.Container(),
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Canvas().Focus(ui.urlEntry)
}

func (ui *MusicUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	if ui.services.Settings != nil {
		ui.services.Settings.SetLanguage(langCode)
	}

	ui.window.SetTitle(ui.localization.GetText(KeyMusicTitle))
	ui.urlLabel.SetText(ui.localization.GetText(KeyEnterURLLabel))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.downloadPanel.SetStopText(ui.localization.GetText(KeyStop))
	ui.window.SetMainMenu(buildMainMenu(ui.localization, ui.services, ui.window, ui.onLanguageChange))
}

// onDownload searches the URL, then asks where to save its best audio stream
func (ui *MusicUI) onDownload() {
	if ui.searching || ui.downloadPanel.Busy() {
		return
	}

	rawURL := strings.TrimSpace(ui.urlEntry.Text)
	if rawURL == "" {
		dialog.ShowError(errors.New(ui.localization.GetText(KeyPleaseEnterURL)), ui.window)
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

func (ui *MusicUI) search(rawURL string) {
	ui.searchSeq++
	seq := ui.searchSeq

	ui.videoPanel.Clear()
	ui.downloadPanel.Reset()
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
				ui.videoPanel.Clear()
				dialog.ShowError(fmt.Errorf("%s:\n%w", ui.localization.GetText(KeyFailedToLoad), err), ui.window)
			})
			return
		}

		audio, ok := streams.BestAudio()
		fyne.Do(func() {
			if seq != ui.searchSeq {
				return
			}
			ui.setSearching(false)
			if !ok {
				ui.videoPanel.Clear()
				dialog.ShowError(errors.New(ui.localization.GetText(KeyNoAudioStreams)), ui.window)
				return
			}
			ui.videoPanel.SetInfo(video.MusicInfoText(audio))
			ShowSaveDialog(ui.window, ui.saveRequest(video, audio), ui.logger, func(path string) {
				ui.startDownload(video, audio, path)
			})
		})
		if !ok {
			return
		}

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

// saveRequest proposes <title>_<abr>.mp3 in the last used directory
func (ui *MusicUI) saveRequest(video *model.Video, audio model.Stream) SaveRequest {
	req := SaveRequest{
		ConfirmText:      ui.localization.GetText(KeySave),
		DefaultName:      audio.DefaultAudioFileName(video.Title),
		DefaultExtension: model.ExtensionMP3,
		Allowed:          []string{"." + model.ExtensionMP3},
	}
	if ui.services.Settings != nil {
		req.StartDir = ui.services.Settings.GetSaveDirectory()
	}
	return req
}

func (ui *MusicUI) startDownload(video *model.Video, audio model.Stream, path string) {
	if ui.services.Settings != nil {
		ui.services.Settings.RememberSaveLocation(path)
	}

	err := ui.downloadPanel.Start(download.Request{
		VideoID:    video.ID,
		URL:        video.URL,
		Title:      video.Title,
		Stream:     audio,
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

func (ui *MusicUI) setSearching(searching bool) {
	ui.searching = searching
	if searching {
		ui.videoPanel.SetInfo(ui.localization.GetText(KeySearching))
	}
	ui.updateControls()
}

func (ui *MusicUI) updateControls() {
	if ui.searching || ui.downloadPanel.Busy() {
		ui.downloadBtn.Disable()
		ui.urlEntry.Disable()
		return
	}
	ui.downloadBtn.Enable()
	ui.urlEntry.Enable()
}
