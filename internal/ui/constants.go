package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	WindowWidth       float32 = 760
	WindowHeight      float32 = 820
	MusicWindowHeight float32 = 560

	ThumbnailWidth  float32 = 600
	ThumbnailHeight float32 = 336

	URLEntryMinWidth float32 = 460 // roughly 65 characters

	StreamListMinWidth  float32 = 230
	StreamListMinHeight float32 = 190 // ten rows

	PlaylistDialogWidth  float32 = 520
	PlaylistDialogHeight float32 = 420
	HistoryDialogWidth   float32 = 640
	HistoryDialogHeight  float32 = 420
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 400
)

// Timeouts for background work started from the UI
const (
	SearchTimeout   = 45 * time.Second
	PlaylistTimeout = 60 * time.Second
	HistoryTimeout  = 5 * time.Second
)

// Limits
const (
	HistoryDialogLimit = 100
)
