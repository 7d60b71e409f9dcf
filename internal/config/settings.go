package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-streams/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySaveDir            = "last_save_directory"
	KeyMaxParallel        = "max_parallel_downloads"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyConvertToMP3       = "convert_audio_to_mp3"
	KeyHistoryEnabled     = "history_enabled"
)

// Default values
const (
	DefaultMaxParallel        = 2
	MaxParallelLimit          = 10
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = false
	DefaultConvertToMP3       = true
	DefaultHistoryEnabled     = true
	HistoryFileName           = "history.db"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSaveDirectory returns the directory the save dialog opens in
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets the directory the save dialog opens in
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDir, dir)
}

// RememberSaveLocation stores the directory of a chosen file
func (s *Settings) RememberSaveLocation(filePath string) {
	if filePath == "" {
		return
	}
	s.SetSaveDirectory(filepath.Dir(filePath))
}

// GetMaxParallelDownloads returns the maximum number of parallel downloads
func (s *Settings) GetMaxParallelDownloads() int {
	value := s.app.Preferences().Int(KeyMaxParallel)
	if value <= 0 {
		s.SetMaxParallelDownloads(DefaultMaxParallel)
		return DefaultMaxParallel
	}
	return value
}

// SetMaxParallelDownloads sets the maximum number of parallel downloads
func (s *Settings) SetMaxParallelDownloads(count int) {
	if count < 1 {
		count = 1
	}
	if count > MaxParallelLimit {
		count = MaxParallelLimit
	}
	s.app.Preferences().SetInt(KeyMaxParallel, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads in the file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetConvertToMP3 returns whether audio saved as .mp3 is re-encoded with ffmpeg
func (s *Settings) GetConvertToMP3() bool {
	return s.app.Preferences().BoolWithFallback(KeyConvertToMP3, DefaultConvertToMP3)
}

// SetConvertToMP3 sets whether audio saved as .mp3 is re-encoded
func (s *Settings) SetConvertToMP3(convert bool) {
	s.app.Preferences().SetBool(KeyConvertToMP3, convert)
}

// GetHistoryEnabled returns whether completed downloads are recorded
func (s *Settings) GetHistoryEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyHistoryEnabled, DefaultHistoryEnabled)
}

// SetHistoryEnabled sets whether completed downloads are recorded
func (s *Settings) SetHistoryEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyHistoryEnabled, enabled)
}

// HistoryDBPath returns the sqlite file inside the app storage root
func (s *Settings) HistoryDBPath() string {
	return filepath.Join(s.app.Storage().RootURI().Path(), HistoryFileName)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
