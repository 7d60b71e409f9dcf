package ui

import (
	"log/slog"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "app.png"
)

// LoadLogoResource loads the window icon from the working directory, then
// from the directory of the executable
func LoadLogoResource() (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err == nil {
		return res, nil
	}

	exe, exeErr := os.Executable()
	if exeErr != nil {
		return nil, err
	}
	return fyne.LoadResourceFromPath(filepath.Join(filepath.Dir(exe), AppIcon))
}

// SetWindowIcon applies the logo to the window. Failure only logs.
func SetWindowIcon(window fyne.Window, logger *slog.Logger) {
	icon, err := LoadLogoResource()
	if err != nil {
		logger.Warn("error setting icon", "file", AppIcon, "error", err)
		return
	}
	window.SetIcon(icon)
}
