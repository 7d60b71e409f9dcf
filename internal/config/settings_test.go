package config

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestSaveDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is the user's Downloads folder
	dir := settings.GetSaveDirectory()
	if dir != "" && filepath.Base(dir) != "Downloads" {
		t.Errorf("Expected default save directory to be Downloads, got %s", dir)
	}

	// Test setting custom value
	customDir := "/custom/music"
	settings.SetSaveDirectory(customDir)

	retrievedDir := settings.GetSaveDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected save directory %s, got %s", customDir, retrievedDir)
	}

	// Choosing a file remembers its folder
	chosen := filepath.Join("/videos", "clip_video_720p.mp4")
	settings.RememberSaveLocation(chosen)
	if got := settings.GetSaveDirectory(); got != "/videos" {
		t.Errorf("Expected save directory /videos, got %s", got)
	}

	// Cancelled dialogs leave it alone
	settings.RememberSaveLocation("")
	if got := settings.GetSaveDirectory(); got != "/videos" {
		t.Errorf("Expected save directory to stay /videos, got %s", got)
	}
}

func TestMaxParallelDownloads(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	maxParallel := settings.GetMaxParallelDownloads()
	if maxParallel != DefaultMaxParallel {
		t.Errorf("Expected default max parallel %d, got %d", DefaultMaxParallel, maxParallel)
	}

	// Test setting custom value
	settings.SetMaxParallelDownloads(5)

	retrievedMax := settings.GetMaxParallelDownloads()
	if retrievedMax != 5 {
		t.Errorf("Expected max parallel 5, got %d", retrievedMax)
	}

	// Test boundary values
	settings.SetMaxParallelDownloads(0) // Should be clamped to 1
	if settings.GetMaxParallelDownloads() != 1 {
		t.Error("Max parallel should be clamped to minimum 1")
	}

	settings.SetMaxParallelDownloads(15) // Should be clamped to 10
	if settings.GetMaxParallelDownloads() != 10 {
		t.Error("Max parallel should be clamped to maximum 10")
	}
}

func TestToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected auto reveal default %v", DefaultAutoRevealComplete)
	}
	if settings.GetConvertToMP3() != DefaultConvertToMP3 {
		t.Errorf("Expected convert default %v", DefaultConvertToMP3)
	}
	if settings.GetHistoryEnabled() != DefaultHistoryEnabled {
		t.Errorf("Expected history default %v", DefaultHistoryEnabled)
	}

	settings.SetAutoRevealOnComplete(true)
	settings.SetConvertToMP3(false)
	settings.SetHistoryEnabled(false)

	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
	if settings.GetConvertToMP3() {
		t.Error("Expected convert to be disabled")
	}
	if settings.GetHistoryEnabled() {
		t.Error("Expected history to be disabled")
	}
}

func TestHistoryDBPath(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	path := settings.HistoryDBPath()
	if filepath.Base(path) != HistoryFileName {
		t.Errorf("Expected history file %s, got %s", HistoryFileName, path)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
