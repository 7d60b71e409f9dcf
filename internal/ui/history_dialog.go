package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/yt-streams/internal/model"
	"github.com/ytget/yt-streams/internal/platform"
)

// HistoryDialog lists completed downloads. Tapping a row reveals the file.
type HistoryDialog struct {
	store        HistoryStore
	window       fyne.Window
	localization *Localization
	logger       *slog.Logger

	entries []*model.HistoryEntry
	list    *widget.List
	empty   *widget.Label
	dialog  dialog.Dialog
}

// NewHistoryDialog creates the dialog; entries are loaded on Show
func NewHistoryDialog(store HistoryStore, window fyne.Window, localization *Localization, logger *slog.Logger) *HistoryDialog {
	hd := &HistoryDialog{
		store:        store,
		window:       window,
		localization: localization,
		logger:       logger.With("component", "history_dialog"),
	}
	hd.createUI()
	return hd
}

func (hd *HistoryDialog) createUI() {
	hd.list = widget.NewList(
		func() int { return len(hd.entries) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.Truncation = fyne.TextTruncateEllipsis
			detail := widget.NewLabel("")
			detail.Importance = widget.LowImportance
			return container.NewVBox(title, detail)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(hd.entries) {
				return
			}
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(hd.entries[id].Title)
			row.Objects[1].(*widget.Label).SetText(HistoryDetail(hd.entries[id]))
		},
	)
	hd.list.OnSelected = func(id widget.ListItemID) {
		hd.list.UnselectAll()
		if id < 0 || id >= len(hd.entries) {
			return
		}
		hd.reveal(hd.entries[id])
	}

	hd.empty = widget.NewLabel(hd.localization.GetText(KeyHistoryEmpty))
	hd.empty.Hide()

	clearBtn := widget.NewButton(hd.localization.GetText(KeyClear), hd.onClear)
	content := container.NewBorder(nil, container.NewHBox(clearBtn), nil, nil, container.NewStack(hd.list, hd.empty))

	hd.dialog = dialog.NewCustom(hd.localization.GetText(KeyHistory), hd.localization.GetText(KeyClose), content, hd.window)
	hd.dialog.Resize(fyne.NewSize(HistoryDialogWidth, HistoryDialogHeight))
}

// Show loads the latest entries and displays the dialog
func (hd *HistoryDialog) Show() {
	hd.dialog.Show()
	hd.reload()
}

// Len returns the number of loaded entries
func (hd *HistoryDialog) Len() int {
	return len(hd.entries)
}

func (hd *HistoryDialog) reload() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), HistoryTimeout)
		defer cancel()

		entries, err := hd.store.Recent(ctx, HistoryDialogLimit)
		if err != nil {
			hd.logger.Error("failed to load history", "error", err)
		}
		fyne.Do(func() {
			hd.setEntries(entries)
		})
	}()
}

func (hd *HistoryDialog) setEntries(entries []*model.HistoryEntry) {
	hd.entries = entries
	if len(entries) == 0 {
		hd.empty.Show()
	} else {
		hd.empty.Hide()
	}
	hd.list.Refresh()
}

func (hd *HistoryDialog) onClear() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), HistoryTimeout)
		defer cancel()

		if err := hd.store.Clear(ctx); err != nil {
			hd.logger.Error("failed to clear history", "error", err)
			fyne.Do(func() {
				dialog.ShowError(err, hd.window)
			})
			return
		}
		fyne.Do(func() {
			hd.setEntries(nil)
		})
	}()
}

func (hd *HistoryDialog) reveal(entry *model.HistoryEntry) {
	if err := platform.OpenFileInManager(entry.OutputPath); err != nil {
		hd.logger.Warn("failed to reveal file", "path", entry.OutputPath, "error", err)
		dialog.ShowError(err, hd.window)
	}
}

// HistoryDetail renders the second line of a history row
func HistoryDetail(entry *model.HistoryEntry) string {
	parts := entry.StreamLabel
	if entry.FileSize > 0 {
		parts += MiddleDotSeparator + model.FormatFileSize(entry.FileSize)
	}
	if !entry.CompletedAt.IsZero() {
		parts += MiddleDotSeparator + humanize.Time(entry.CompletedAt)
	}
	return parts
}
