package ui

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/yt-streams/internal/platform"
)

// SaveRequest describes the file dialog shown before a download
type SaveRequest struct {
	ConfirmText      string
	DefaultName      string // without extension
	DefaultExtension string // without dot
	Allowed          []string
	StartDir         string
}

// ShowSaveDialog asks for a target path. onChosen gets the path with the
// default extension applied, or is not called when the user cancels.
func ShowSaveDialog(window fyne.Window, req SaveRequest, logger *slog.Logger, onChosen func(path string)) {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		writer.Close()
		discardPlaceholder(path, logger)

		onChosen(platform.EnsureExtension(path, req.DefaultExtension, req.Allowed))
	}, window)

	if req.ConfirmText != "" {
		save.SetConfirmText(req.ConfirmText)
	}
	save.SetFileName(req.DefaultName + "." + req.DefaultExtension)
	if len(req.Allowed) > 0 {
		save.SetFilter(storage.NewExtensionFileFilter(req.Allowed))
	}
	if req.StartDir != "" {
		if location, err := storage.ListerForURI(storage.NewFileURI(req.StartDir)); err == nil {
			save.SetLocation(location)
		} else {
			logger.Debug("save directory not listable", "dir", req.StartDir, "error", err)
		}
	}
	save.Resize(window.Canvas().Size())
	save.Show()
}

// discardPlaceholder removes the empty file the save dialog creates, so a
// failed download leaves nothing behind
func discardPlaceholder(path string, logger *slog.Logger) {
	info, err := os.Stat(path)
	if err != nil || info.Size() > 0 {
		return
	}
	if err := os.Remove(path); err != nil {
		logger.Debug("failed to remove placeholder file", "path", path, "error", err)
	}
}
