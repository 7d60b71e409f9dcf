package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-streams/internal/config"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	settings.SetSaveDirectory("/music")
	settings.SetMaxParallelDownloads(3)
	settings.SetLanguage("ru")

	saved := 0
	services := &Services{Settings: settings, OnSettingsSaved: func() { saved++ }}
	sd := NewSettingsDialog(services, w, NewLocalization())
	sd.loadCurrentSettings()

	if sd.saveDirEntry.Text != "/music" {
		t.Errorf("Expected save directory /music, got %q", sd.saveDirEntry.Text)
	}
	if sd.maxParallelEntry.Text != "3" {
		t.Errorf("Expected max parallel 3, got %q", sd.maxParallelEntry.Text)
	}
	if sd.languageSelect.Selected != "Русский" {
		t.Errorf("Expected language Русский, got %q", sd.languageSelect.Selected)
	}
	if !sd.convertCheck.Checked || !sd.historyCheck.Checked || sd.autoRevealCheck.Checked {
		t.Error("Expected default toggles: convert on, history on, reveal off")
	}

	sd.saveDirEntry.SetText("/videos")
	sd.maxParallelEntry.SetText("25")
	sd.languageSelect.SetSelected("Português")
	sd.convertCheck.SetChecked(false)
	sd.autoRevealCheck.SetChecked(true)

	sd.onSave(true)

	if saved != 1 {
		t.Errorf("Expected saved callback once, got %d", saved)
	}
	if settings.GetSaveDirectory() != "/videos" {
		t.Errorf("Expected save directory /videos, got %q", settings.GetSaveDirectory())
	}
	if settings.GetMaxParallelDownloads() != config.MaxParallelLimit {
		t.Errorf("Expected max parallel clamped to %d, got %d", config.MaxParallelLimit, settings.GetMaxParallelDownloads())
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected language pt, got %q", settings.GetLanguage())
	}
	if settings.GetConvertToMP3() {
		t.Error("Expected conversion to be disabled")
	}
	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(&Services{Settings: settings}, w, NewLocalization())
	sd.loadCurrentSettings()

	sd.maxParallelEntry.SetText("7")
	sd.onSave(false)

	if settings.GetMaxParallelDownloads() != config.DefaultMaxParallel {
		t.Errorf("Expected unchanged max parallel %d, got %d", config.DefaultMaxParallel, settings.GetMaxParallelDownloads())
	}
}
