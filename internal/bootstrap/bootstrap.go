// Package bootstrap wires the back ends both desktop apps share.
package bootstrap

import (
	"context"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-streams/internal/catalog"
	"github.com/ytget/yt-streams/internal/config"
	"github.com/ytget/yt-streams/internal/convert"
	"github.com/ytget/yt-streams/internal/download"
	"github.com/ytget/yt-streams/internal/history"
	"github.com/ytget/yt-streams/internal/model"
	"github.com/ytget/yt-streams/internal/platform"
	"github.com/ytget/yt-streams/internal/thumbnail"
	"github.com/ytget/yt-streams/internal/ui"
)

// Options selects the per-app differences
type Options struct {
	ThumbnailAnchor thumbnail.Anchor
}

// App holds the wired services and what must be released on exit
type App struct {
	Services *ui.Services
	history  *history.DB
	logger   *slog.Logger
}

// New builds the services for app. A history database that fails to open
// only disables the history menu.
func New(app fyne.App, logger *slog.Logger, opts Options) *App {
	settings := config.NewSettings(app)

	catalogSvc := catalog.NewService(nil, logger)

	thumbnails := thumbnail.NewFetcher(nil)
	thumbnails.SetAnchor(opts.ThumbnailAnchor)

	downloadSvc := download.NewService(catalogSvc, settings.GetMaxParallelDownloads(), logger)
	downloadSvc.SetTranscoder(&settingsTranscoder{
		Transcoder: convert.NewService(logger),
		settings:   settings,
	})

	a := &App{logger: logger}
	a.Services = &ui.Services{
		Catalog:    catalogSvc,
		Thumbnails: thumbnails,
		Downloads:  downloadSvc,
		Playlists:  newPlaylistResolver(),
		Settings:   settings,
		Logger:     logger,
		OnSettingsSaved: func() {
			downloadSvc.SetMaxParallelDownloads(settings.GetMaxParallelDownloads())
		},
	}

	dbPath := settings.HistoryDBPath()
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(dbPath)); err != nil {
		logger.Warn("history disabled", "path", dbPath, "error", err)
		return a
	}
	db, err := history.Open(dbPath)
	if err != nil {
		logger.Warn("history disabled", "path", dbPath, "error", err)
		return a
	}
	a.history = db
	repo := history.NewRepository(db)
	downloadSvc.SetRecorder(&settingsRecorder{Recorder: repo, settings: settings})
	a.Services.History = repo

	return a
}

// newPlaylistResolver bounds playlist expansion by the same timeout the
// picker dialog waits for
func newPlaylistResolver() *platform.PlaylistResolver {
	resolver := platform.NewPlaylistResolver()
	resolver.SetTimeout(ui.PlaylistTimeout)
	return resolver
}

// Close releases the history database
func (a *App) Close() {
	if a.history == nil {
		return
	}
	if err := a.history.Close(); err != nil {
		a.logger.Warn("failed to close history", "error", err)
	}
}

// settingsTranscoder skips conversion while it is switched off in settings
type settingsTranscoder struct {
	download.Transcoder
	settings *config.Settings
}

func (t *settingsTranscoder) NeedsTranscode(stream model.Stream, path string) bool {
	return t.settings.GetConvertToMP3() && t.Transcoder.NeedsTranscode(stream, path)
}

// settingsRecorder drops completed downloads while history is switched off
type settingsRecorder struct {
	download.Recorder
	settings *config.Settings
}

func (r *settingsRecorder) RecordDownload(ctx context.Context, task *model.DownloadTask) error {
	if !r.settings.GetHistoryEnabled() {
		return nil
	}
	return r.Recorder.RecordDownload(ctx, task)
}
