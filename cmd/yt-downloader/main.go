package main

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-streams/internal/bootstrap"
	"github.com/ytget/yt-streams/internal/logger"
	"github.com/ytget/yt-streams/internal/thumbnail"
	"github.com/ytget/yt-streams/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppID = "com.ytget.yt-streams"

func main() {
	log := logger.New("yt-downloader", slog.LevelInfo)
	log.Info("YouTube Downloader starting", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	ui.SetWindowIcon(myWindow, log)

	services := bootstrap.New(myApp, log, bootstrap.Options{ThumbnailAnchor: thumbnail.AnchorCenter})
	defer services.Close()

	ui.NewRootUI(myWindow, services.Services)

	myWindow.ShowAndRun()
}
